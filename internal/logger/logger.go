package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func parseLevel(s string) level {
	switch strings.ToLower(s) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

type implLogger struct {
	logger *log.Logger
	level  level
}

// New creates a Logger that writes to stderr, keeping stdout free for
// the rendered transcript.
func New(levelName string) Logger {
	return NewWithWriter(levelName, os.Stderr)
}

// NewWithWriter creates a Logger writing to w; used by tests.
func NewWithWriter(levelName string, w io.Writer) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  parseLevel(levelName),
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.print(levelDebug, "[DEBUG] "+msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.print(levelInfo, "[INFO] "+msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.print(levelWarn, "[WARN] "+msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.print(levelError, "[ERROR] "+msg, args...)
}

func (l *implLogger) print(lv level, msg string, args ...interface{}) {
	if lv < l.level {
		return
	}
	l.logger.Printf(msg, args...)
}
