package middleware

import (
	"todo-assistant/pkg/log"
)

// Config tunes the rate limiter and CORS. Zero values use the defaults.
type Config struct {
	RequestsPerMin int
	Burst          int
	MaxClients     int
	// AllowOrigins lists the browser origins allowed by CORS; empty allows any origin.
	AllowOrigins []string
}

type Middleware struct {
	l            log.Logger
	limiter      *rateLimiter
	allowOrigins []string
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:            l,
		limiter:      newRateLimiter(cfg),
		allowOrigins: cfg.AllowOrigins,
	}
}
