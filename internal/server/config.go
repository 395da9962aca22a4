package server

import "time"

// Config holds server configuration.
type Config struct {
	Addr           string
	MaxBodyBytes   int64         // request body limit for POST endpoints
	MaxMessageSize int64         // websocket read limit per message
	ReadTimeout    time.Duration // http.Server ReadHeaderTimeout
	IdleTimeout    time.Duration
	AllowedOrigins []string // websocket origins (empty = allow all)
}

// DefaultConfig returns the configuration used by `katakana serve`.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		MaxBodyBytes:   64 << 10,
		MaxMessageSize: 16 << 10,
		ReadTimeout:    10 * time.Second,
		IdleTimeout:    60 * time.Second,
	}
}
