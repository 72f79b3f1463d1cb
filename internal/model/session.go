package model

// Session carries the caller's model credentials and generation settings for one run.
// The caller owns its lifecycle; nothing in the core caches it.
type Session struct {
	APIKey          string
	Model           string
	Temperature     *float64
	MaxOutputTokens *int
}
