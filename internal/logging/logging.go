// Package logging provides structured logging using Go's slog package.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request IDs.
	RequestIDKey ContextKey = "request_id"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger *slog.Logger
)

func init() {
	// Text on stderr keeps stdout free for converted output.
	Init(LevelInfo, FormatText, os.Stderr)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// ParseLevel parses "debug", "info", "warn" or "error".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Format represents a log output format.
type Format int

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format.
	FormatText
)

// ParseFormat parses "json" or "text".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text", "":
		return FormatText, nil
	}
	return FormatText, fmt.Errorf("unknown log format %q", s)
}

// Init initializes the global logger with the specified level and format,
// writing to w.
func Init(level Level, format Format, w io.Writer) {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Customize timestamp format
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// GetLogger returns the global logger instance.
func GetLogger() *slog.Logger {
	return defaultLogger
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// LoggerFromContext returns a logger with context values attached.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := defaultLogger
	if requestID := GetRequestID(ctx); requestID != "" {
		logger = logger.With("request_id", requestID)
	}
	return logger
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// DictionaryLoaded logs a completed dictionary load.
func DictionaryLoaded(path string, words, skipped int, fingerprint string) {
	defaultLogger.Info("dictionary_loaded",
		"path", path,
		"words", words,
		"skipped_lines", skipped,
		"fingerprint", fingerprint,
	)
}

// LineSkipped logs a dictionary line that was dropped without failing the load.
func LineSkipped(line int, reason string) {
	defaultLogger.Warn("dictionary_line_skipped", "line", line, "reason", reason)
}

// HTTPRequestContext logs an HTTP request with context and common fields.
func HTTPRequestContext(ctx context.Context, method, path string, statusCode int, duration time.Duration, args ...any) {
	allArgs := []any{
		"method", method,
		"path", path,
		"status_code", statusCode,
		"duration_ms", duration.Milliseconds(),
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Info("http_request", allArgs...)
}
