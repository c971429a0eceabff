package consumer

import (
	"context"
	"log/slog"
)

// Router dispatches messages to handlers keyed by a header value.
type Router struct {
	header   string
	handlers map[string]Handler
	fallback Handler
	logger   *slog.Logger
}

// NewRouter routes on the named header with an optional fallback handler.
func NewRouter(header string, logger *slog.Logger, fallback Handler) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		header:   header,
		handlers: make(map[string]Handler),
		fallback: fallback,
		logger:   logger,
	}
}

func (r *Router) Register(value string, handler Handler) {
	r.handlers[value] = handler
}

func (r *Router) Handle(ctx context.Context, msg *Message) error {
	handler, ok := r.handlers[msg.Headers[r.header]]
	if !ok {
		if r.fallback != nil {
			return r.fallback.Handle(ctx, msg)
		}
		r.logger.WarnContext(ctx, "no handler for message, skipping",
			"topic", msg.Topic,
			r.header, msg.Headers[r.header],
			"key", string(msg.Key),
		)
		return nil // commit to avoid redelivery
	}
	return handler.Handle(ctx, msg)
}
