// Package logging assembles the structured slog loggers used across
// mediascan. It owns the console and JSON handlers and exposes a no-op
// logger for tests. Prefer these constructors over hand-rolled slog setup so
// every component emits lines with the same shape.
package logging
