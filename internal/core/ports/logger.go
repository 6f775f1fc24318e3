package ports

import "log/slog"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// Enabled reports whether messages at level would be written.
	Enabled(level slog.Level) bool
	// SetLevel changes the minimum level that is written.
	SetLevel(level slog.Level)
	// SetJSON switches between JSON and pretty output.
	SetJSON(enable bool)
}
