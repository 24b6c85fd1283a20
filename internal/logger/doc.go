// Package logger wraps a zap sugared logger with a process-wide atomic level.
// Loggers travel through context.Context so that key-value fields such as the album
// being resolved follow every log line below them.
package logger
