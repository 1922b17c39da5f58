package logger

import (
	"context"
	"log/slog"
	"strings"
)

// CaptureHandler passes records through to another handler and also sends
// a one-line rendering of each to a channel
type CaptureHandler struct {
	handler slog.Handler
	ch      chan<- string
}

// NewCaptureHandler creates a handler that copies records to ch
func NewCaptureHandler(handler slog.Handler, ch chan<- string) *CaptureHandler {
	return &CaptureHandler{
		handler: handler,
		ch:      ch,
	}
}

// Enabled reports whether the handler handles records at the given level
func (c *CaptureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return c.handler.Enabled(ctx, level)
}

// Handle handles the record
func (c *CaptureHandler) Handle(ctx context.Context, r slog.Record) error {
	parts := []string{r.Level.String(), r.Message}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, a.String())
		return true
	})

	// non-blocking; a full channel drops the message
	select {
	case c.ch <- strings.Join(parts, " "):
	default:
	}

	return c.handler.Handle(ctx, r)
}

// WithAttrs returns a new handler with the given attributes
func (c *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CaptureHandler{handler: c.handler.WithAttrs(attrs), ch: c.ch}
}

// WithGroup returns a new handler with the given group
func (c *CaptureHandler) WithGroup(name string) slog.Handler {
	return &CaptureHandler{handler: c.handler.WithGroup(name), ch: c.ch}
}

// Capture makes the global logger also send its records to ch
func Capture(ch chan<- string) {
	if Logger == nil {
		return
	}
	Logger = slog.New(NewCaptureHandler(Logger.Handler(), ch))
}
