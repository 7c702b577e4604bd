package logs

import (
	"context"
	"log/slog"
)

type documentKey struct{}

// WithDocument marks the context as belonging to the processing of one
// document, so every log record carries the document path.
func WithDocument(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, documentKey{}, path)
}

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(documentKey{}); v != nil {
		record.Add("logs.document", v.(string))
	}
	return h.Handler.Handle(ctx, record)
}
