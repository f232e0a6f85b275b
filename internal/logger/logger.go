// Package logger configures structured logging for the game.
package logger

import (
	"context"
	"io"
	"log/slog"
)

type ctxKey string

const encounterIDKey ctxKey = "encounterID"

// Init installs a default slog logger writing to w. The terminal belongs to
// the game UI, so w is normally a log file.
func Init(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

// WithEncounterID returns a new context carrying the encounter ID.
func WithEncounterID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, encounterIDKey, id)
}

// EncounterIDFromContext extracts the encounter ID from the context, if present.
func EncounterIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(encounterIDKey).(string)
	return id, ok
}

// FromContext returns the default logger, with the encounter_id attribute
// when the context carries one.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := EncounterIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyEncounterID, id)
	}
	return slog.Default()
}
