// Package logging provides the logger interface used across the archiver.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogLogger adapts log/slog to the Logger interface.
type SlogLogger struct {
	s *slog.Logger
}

// New builds a logger writing to stderr. Level is one of "debug", "info",
// "warn", "error"; format is "text" or "json". Unknown values fall back to
// info/text.
func New(level, format string) *SlogLogger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}

	return &SlogLogger{s: slog.New(h)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) Debug(msg string, args ...any) { l.s.Debug(msg, args...) }
func (l *SlogLogger) Info(msg string, args ...any)  { l.s.Info(msg, args...) }
func (l *SlogLogger) Warn(msg string, args ...any)  { l.s.Warn(msg, args...) }
func (l *SlogLogger) Error(msg string, args ...any) { l.s.Error(msg, args...) }

// Nop discards everything. Used in tests.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
