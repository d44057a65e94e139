// Package logging provides structured logging configuration for the mock
// server.
//
// This package wraps log/slog to keep logging consistent across the server,
// pool, and connection-handling packages. It supports configurable log
// levels and output formats.
//
// # Usage
//
// Create a logger with the desired configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("server started", "addr", srv.HostWithPort())
//	logger.Warn("response write failed", "error", err)
//
// # Log Levels
//
// Four log levels are supported:
//   - Debug: per-request tracing, enabled by MOCKITO_DEBUG
//   - Info: server lifecycle events
//   - Warn: swallowed errors (response write/body callback failures)
//   - Error: conditions the caller should investigate
//
// # Integration
//
// Components accept a *slog.Logger via a functional option. If none is
// provided, use logging.Nop() for a no-op logger so call sites never need a
// nil check.
package logging
