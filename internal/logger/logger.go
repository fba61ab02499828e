package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const instrumentationName = "ctchen222/Tic-Tac-Toe-AI"

// MultiHandler is a slog.Handler that dispatches records to multiple handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a new MultiHandler.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether any underlying handler handles records at level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes the record to every handler enabled for its level.
// All handlers see the record even if an earlier one fails.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs returns a new MultiHandler whose handlers have the given attributes.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return NewMultiHandler(newHandlers...)
}

// WithGroup returns a new MultiHandler whose handlers have the given group.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return NewMultiHandler(newHandlers...)
}

// Options controls Init.
type Options struct {
	Writer io.Writer
	Level  slog.Level
	// Otel also sends records through the OpenTelemetry log bridge.
	Otel bool
}

// Init builds a text logger on opts.Writer, optionally bridged to
// OpenTelemetry, and installs it as the slog default.
func Init(opts Options) *slog.Logger {
	consoleHandler := slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{
		AddSource: true, // Include source file and line number
		Level:     opts.Level,
	})

	var handler slog.Handler = consoleHandler
	if opts.Otel {
		handler = NewMultiHandler(consoleHandler, otelslog.NewHandler(instrumentationName))
	}

	slogLogger := slog.New(handler)
	slog.SetDefault(slogLogger)
	return slogLogger
}
