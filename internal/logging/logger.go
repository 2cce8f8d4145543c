// Package logging defines the context-aware structured logger used by the
// registry service. The only implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "record added", "id", rec.ID, "backend", "local")
type Logger interface {
	// Debug logs low-level diagnostics such as per-request traces.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs recovered failures, e.g. an enrichment falling back.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures, including swallowed store reads.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
