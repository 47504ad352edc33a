// internal/pkg/logger/handlers.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync"
)

// ContextHandler copies request-scoped context values onto each record so
// individual call sites never have to thread request IDs by hand.
type ContextHandler struct {
	handler slog.Handler
}

func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{handler: handler}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	attrs := extractContextAttrs(ctx)
	if len(attrs) == 0 {
		return h.handler.Handle(ctx, record)
	}

	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(a slog.Attr) bool {
		newRecord.AddAttrs(a)
		return true
	})
	newRecord.AddAttrs(attrs...)

	return h.handler.Handle(ctx, newRecord)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

// RedactionHandler masks credentials and student contact details. Consignor
// records carry emails and phone numbers, so nothing resembling either may
// reach the log pipeline in clear text.
type RedactionHandler struct {
	handler   slog.Handler
	patterns  []*regexp.Regexp
	blocklist []string
}

func NewRedactionHandler(handler slog.Handler) *RedactionHandler {
	return &RedactionHandler{
		handler: handler,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(password|pwd|secret|token|auth|api[-_]?key)\s*[:=]\s*["']?([^"'\s]+)`),
			regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`),
			regexp.MustCompile(`\b\+?\d{3}[-\s]?\d{3}[-\s]?\d{4}\b`),
		},
		blocklist: []string{
			"password", "pwd", "secret", "token", "auth", "api_key",
			"email", "phone_number",
		},
	}
}

func (h *RedactionHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *RedactionHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, h.redactString(record.Message), record.PC)
	record.Attrs(func(a slog.Attr) bool {
		newRecord.AddAttrs(h.redactAttr(a))
		return true
	})
	return h.handler.Handle(ctx, newRecord)
}

func (h *RedactionHandler) redactAttr(attr slog.Attr) slog.Attr {
	lowerKey := strings.ToLower(attr.Key)
	for _, blocked := range h.blocklist {
		if strings.Contains(lowerKey, blocked) {
			attr.Value = slog.StringValue("***REDACTED***")
			return attr
		}
	}

	if s, ok := attr.Value.Any().(string); ok {
		attr.Value = slog.StringValue(h.redactString(s))
	}

	return attr
}

func (h *RedactionHandler) redactString(s string) string {
	for _, pattern := range h.patterns {
		s = pattern.ReplaceAllString(s, "***REDACTED***")
	}
	return s
}

func (h *RedactionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &RedactionHandler{
		handler:   h.handler.WithAttrs(attrs),
		patterns:  h.patterns,
		blocklist: h.blocklist,
	}
}

func (h *RedactionHandler) WithGroup(name string) slog.Handler {
	return &RedactionHandler{
		handler:   h.handler.WithGroup(name),
		patterns:  h.patterns,
		blocklist: h.blocklist,
	}
}

// PrettyTextHandler provides human-readable colored output for development
type PrettyTextHandler struct {
	*slog.TextHandler
	mu sync.Mutex
	w  io.Writer
}

func NewPrettyTextHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyTextHandler {
	return &PrettyTextHandler{
		TextHandler: slog.NewTextHandler(w, opts),
		w:           w,
	}
}

func (h *PrettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	const reset = "\033[0m"
	level := r.Level.String()

	fmt.Fprintf(h.w, "%s%s %s%s%s %s",
		levelColor(r.Level),
		r.Time.Format("2006-01-02 15:04:05.000"),
		strings.ToUpper(level),
		reset,
		strings.Repeat(" ", 7-len(level)),
		r.Message,
	)

	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.w, " \033[36m%s=%v%s", a.Key, a.Value, reset)
		return true
	})

	fmt.Fprintln(h.w)

	return nil
}

func levelColor(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "\033[37m"
	case slog.LevelInfo:
		return "\033[34m"
	case slog.LevelWarn:
		return "\033[33m"
	case slog.LevelError:
		return "\033[31m"
	default:
		return "\033[0m"
	}
}
