// Package logging provides structured logging for the factors command.
//
// This package wraps Go's log/slog to provide JSON-formatted logs. Logging is
// off unless enabled in configuration, because the command's only stdout
// product is the rendered factor line.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Persistent attributes on child loggers (phase, term)
//   - Size-based log rotation with numbered backups
//   - Optional gzip compression for rotated logs
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.WithPhase("compute").Debug("scanning term", "term", 10)
//
// When no directory is given the logger writes to stderr. Use [NopLogger]
// where no output is wanted.
//
// # Log Format
//
//	{"time":"2026-10-19T10:30:00Z","level":"DEBUG","msg":"factor found","phase":"compute","term":20,"factor":10}
package logging
