package logx

import (
	"context"
	"log/slog"
)

type contextKey string

const attrsKey contextKey = "logx.attrs"

// WithAttrs returns a copy of ctx carrying the given attributes in addition
// to the ones already attached to it.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing := Attrs(ctx)

	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)

	return context.WithValue(ctx, attrsKey, merged)
}

func Attrs(ctx context.Context) []slog.Attr {
	attrs, ok := ctx.Value(attrsKey).([]slog.Attr)
	if !ok {
		return nil
	}

	return attrs
}

// ContextHandler adds the attributes attached to the record context
// with WithAttrs.
type ContextHandler struct {
	slog.Handler
}

// Handle implements slog.Handler.
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := Attrs(ctx); len(attrs) > 0 {
		r.AddAttrs(attrs...)
	}

	return h.Handler.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

var _ slog.Handler = ContextHandler{}
