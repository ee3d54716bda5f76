package aml

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger is the minimal structured logging interface the engine writes
// diagnostics to. args are slog-style key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogLogger adapts *slog.Logger to Logger.
type SlogLogger struct {
	*slog.Logger
}

// NewSlogLogger returns a Logger writing to w in "text" or "json" format at
// the given level ("debug", "info", "warn", "error"). Every record carries
// component=aml.
func NewSlogLogger(w io.Writer, format, level string) *SlogLogger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return &SlogLogger{Logger: slog.New(h).With("component", "aml")}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}

// debugStats holds per-tick timing and playback counters.
// Only collected when the engine is in debug mode.
type debugStats struct {
	tickTime    time.Duration
	stepped     int
	chained     int
	completed   int
	swept       int
	activeAfter int
}

// debugLog writes the tick stats at debug level.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	e.log.Debug("tick",
		"elapsed", stats.tickTime,
		"stepped", stats.stepped,
		"chained", stats.chained,
		"completed", stats.completed,
		"swept", stats.swept,
		"active", stats.activeAfter,
	)
}
