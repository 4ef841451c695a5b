// Package logging assembles the structured slog loggers used by trackgen.
//
// It owns the console and JSON handlers and the level and output plumbing.
// Human-facing progress lines ("Processed ...", "Skipped ...") are not log
// records; they are written straight to the command's stdout by the
// generator. The logger carries the structured detail behind them and
// defaults to stderr so the two streams never mix.
package logging
