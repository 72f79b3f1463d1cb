package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// RequestIDKey is the context key carrying the request id added to every log line.
type RequestIDKey struct{}
