package middleware

import "time"

const (
	RequestIDHeader = "X-Request-ID"
	apiKeyHeader    = "X-Api-Key"

	DefaultRequestsPerMin = 60
	DefaultMaxClients     = 1000
	limiterTTL            = 5 * time.Minute
	corsMaxAge            = 12 * time.Hour
)
