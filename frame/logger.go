package frame

import "log/slog"

// logger is satisfied by *slog.Logger
type logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type fallbackLogger struct {
}

func (f *fallbackLogger) Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

func (f *fallbackLogger) Warn(msg string, args ...any) {
	slog.Default().Warn(msg, args...)
}

func (f *fallbackLogger) Error(msg string, args ...any) {
	slog.Default().Error(msg, args...)
}
