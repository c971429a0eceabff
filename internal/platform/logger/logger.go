// Package logger builds the process slog.Logger.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"charity/pkg/requestcontext"
)

// New returns a JSON logger on stdout. Records logged through the *Context
// methods carry the request id and caller of the request that produced them.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(contextHandler{Handler: h}).With("service", "charity")
}

type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	var hasID bool
	r.Attrs(func(a slog.Attr) bool {
		hasID = a.Key == "request_id"
		return !hasID
	})
	if id := requestcontext.RequestID(ctx); id != "" && !hasID {
		r.AddAttrs(slog.String("request_id", id))
	}
	if p, ok := requestcontext.PrincipalFrom(ctx); ok {
		r.AddAttrs(slog.Int64("user_id", p.UserID), slog.String("role", string(p.Role)))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name)}
}
