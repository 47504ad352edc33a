// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContextKey represents keys for context values
type ContextKey string

const (
	ContextKeyRequestID  ContextKey = "request_id"
	ContextKeyUserID     ContextKey = "user_id"
	ContextKeyTraceID    ContextKey = "trace_id"
	ContextKeyClientIP   ContextKey = "client_ip"
	ContextKeyUserAgent  ContextKey = "user_agent"
	ContextKeyMethod     ContextKey = "method"
	ContextKeyPath       ContextKey = "path"
	ContextKeyStatusCode ContextKey = "status_code"
	ContextKeyDuration   ContextKey = "duration_ms"
)

var defaultHandler slog.Handler

// SetupLogger builds the handler pipeline, installs it as the slog default
// and returns the logger. Request-scoped values placed in the context by the
// middleware are attached to every record automatically.
func SetupLogger(level string, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(level),
		AddSource:   true,
		ReplaceAttr: replaceAttr(format),
	}

	var base slog.Handler
	writer := getWriter(os.Getenv("LOG_OUTPUT"))
	switch format {
	case "text":
		base = NewPrettyTextHandler(writer, opts)
	default:
		base = slog.NewJSONHandler(writer, opts)
	}

	var handler slog.Handler = NewContextHandler(base)
	handler = NewRedactionHandler(handler)

	attrs := []slog.Attr{}
	if name := os.Getenv("SERVICE_NAME"); name != "" {
		attrs = append(attrs, slog.String("service", name))
	}
	if version := os.Getenv("SERVICE_VERSION"); version != "" {
		attrs = append(attrs, slog.String("version", version))
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		attrs = append(attrs, slog.String("env", env))
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	defaultHandler = handler
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// Handler returns the handler installed by SetupLogger, falling back to a
// plain JSON handler when SetupLogger has not run yet.
func Handler() slog.Handler {
	if defaultHandler == nil {
		return slog.NewJSONHandler(os.Stdout, nil)
	}
	return defaultHandler
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getWriter(output string) io.Writer {
	switch {
	case output == "stderr":
		return os.Stderr
	case strings.HasPrefix(output, "file:"):
		filename := strings.TrimPrefix(output, "file:")
		file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return os.Stdout
		}
		return file
	default:
		return os.Stdout
	}
}

func contextKeys() []ContextKey {
	return []ContextKey{
		ContextKeyRequestID,
		ContextKeyUserID,
		ContextKeyTraceID,
		ContextKeyClientIP,
		ContextKeyUserAgent,
		ContextKeyMethod,
		ContextKeyPath,
		ContextKeyStatusCode,
		ContextKeyDuration,
	}
}

func extractContextAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr

	for _, key := range contextKeys() {
		val := ctx.Value(key)
		if val == nil {
			continue
		}
		keyStr := string(key)
		switch v := val.(type) {
		case string:
			if v != "" {
				attrs = append(attrs, slog.String(keyStr, v))
			}
		case int:
			attrs = append(attrs, slog.Int(keyStr, v))
		case int64:
			attrs = append(attrs, slog.Int64(keyStr, v))
		case time.Duration:
			attrs = append(attrs, slog.Duration(keyStr, v))
		case uuid.UUID:
			attrs = append(attrs, slog.String(keyStr, v.String()))
		default:
			attrs = append(attrs, slog.Any(keyStr, v))
		}
	}

	return attrs
}

func replaceAttr(format string) func([]string, slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
		}

		// Log aggregators expect "severity" rather than slog's "level"
		if a.Key == slog.LevelKey && format == "json" {
			a.Key = "severity"
		}

		if strings.HasSuffix(a.Key, "_ms") {
			if d, ok := a.Value.Any().(time.Duration); ok {
				a.Value = slog.Float64Value(float64(d.Milliseconds()))
			}
		}

		return a
	}
}
