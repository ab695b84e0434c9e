// Package logger provides structured logging for the application.
//
// It uses the standard library log/slog package with a JSON handler and a
// configurable level. Request-scoped loggers travel in the context via
// WithLogger and FromContext.
package logger
