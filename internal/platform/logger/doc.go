// Package logger sets up the process-wide JSON slog logger and carries
// request-scoped loggers through context.Context, so handlers, services and
// stores log with the same trace_id.
package logger
