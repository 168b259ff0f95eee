package logger

import (
	"log/slog"

	"capy_automator/internal/app/port"
)

// slogAdapter реализует интерфейс port.Logger.
// Без собственного логгера он пишет через глобальные функции пакета logger.
type slogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter creates a port.Logger backed by the global logger.
func NewSlogAdapter() port.Logger {
	return &slogAdapter{}
}

// NewFromSlog creates a port.Logger backed by l.
func NewFromSlog(l *slog.Logger) port.Logger {
	return &slogAdapter{l: l}
}

// NewNopAdapter creates a port.Logger that drops everything.
func NewNopAdapter() port.Logger {
	return &slogAdapter{l: slog.New(slog.DiscardHandler)}
}

// Info логирует информационное сообщение.
func (a *slogAdapter) Info(msg string, args ...any) {
	if a.l != nil {
		a.l.Info(msg, args...)
		return
	}
	Info(msg, args...)
}

// Debug логирует отладочное сообщение.
func (a *slogAdapter) Debug(msg string, args ...any) {
	if a.l != nil {
		a.l.Debug(msg, args...)
		return
	}
	Debug(msg, args...)
}

// Warn логирует предупреждающее сообщение.
func (a *slogAdapter) Warn(msg string, args ...any) {
	if a.l != nil {
		a.l.Warn(msg, args...)
		return
	}
	Warn(msg, args...)
}

// Error логирует сообщение об ошибке.
func (a *slogAdapter) Error(msg string, args ...any) {
	if a.l != nil {
		a.l.Error(msg, args...)
		return
	}
	Error(msg, args...)
}

// With returns a child adapter carrying args.
func (a *slogAdapter) With(args ...any) port.Logger {
	base := a.l
	if base == nil {
		ensureInitialized()
		base = globalLogger
	}
	return &slogAdapter{l: base.With(args...)}
}
