// Package logging provides structured logging for Areawatch Core.
//
// It wraps log/slog with configuration-driven level filtering, output
// format selection (JSON or text), and default service fields. Components
// derive child loggers with With("component", name) so every log line can
// be attributed.
package logging
