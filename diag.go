package rctl

import (
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rctl/consts"
)

// Logger receives the controller's diagnostics.
// Key/value pairs follow the message, rohanthewiz/logger style.
type Logger interface {
	Debug(msg string, keyvals ...string)
	Info(msg string, keyvals ...string)
	Warn(msg string, keyvals ...string)
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func parseLevel(raw string) level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case consts.LevelDebug:
		return levelDebug
	case consts.LevelWarn, "warning":
		return levelWarn
	case consts.LevelError:
		return levelError
	default:
		return levelInfo
	}
}

// stdLogger forwards to github.com/rohanthewiz/logger, dropping anything
// below min.
type stdLogger struct {
	min level
}

// NewLogger returns a Logger backed by rohanthewiz/logger that emits messages
// at or above level ("debug", "info", "warn", "error"). Unknown levels mean info.
func NewLogger(lvl string) Logger {
	return stdLogger{min: parseLevel(lvl)}
}

func (l stdLogger) Debug(msg string, keyvals ...string) {
	if l.min <= levelDebug {
		logger.Debug(msg, toAny(keyvals)...)
	}
}

func (l stdLogger) Info(msg string, keyvals ...string) {
	if l.min <= levelInfo {
		logger.Info(msg, toAny(keyvals)...)
	}
}

func (l stdLogger) Warn(msg string, keyvals ...string) {
	if l.min <= levelWarn {
		logger.Warn(msg, toAny(keyvals)...)
	}
}

// toAny widens keyvals for rohanthewiz/logger, which takes ...any.
func toAny(keyvals []string) []any {
	out := make([]any, len(keyvals))
	for i, kv := range keyvals {
		out[i] = kv
	}
	return out
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...string) {}
func (NopLogger) Info(string, ...string)  {}
func (NopLogger) Warn(string, ...string)  {}

var defaultLogger Logger = NewLogger(consts.LevelInfo)

// SetDefaultLogger replaces the logger used by controllers created without one.
// Passing nil restores the built-in logger.
func SetDefaultLogger(l Logger) {
	if l == nil {
		l = NewLogger(consts.LevelInfo)
	}
	defaultLogger = l
}
