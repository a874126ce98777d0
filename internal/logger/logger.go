package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB   = 10
	maxLogBackups  = 3
	maxLogAgeDays  = 28
	compressOldLog = true
)

var defaultLogger *slog.Logger

// Options controls where and how much the application logs.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string

	// File overrides the default log file path.
	File string

	// Stderr adds human-readable output on stderr. The TUI leaves this off
	// so log lines do not corrupt the screen.
	Stderr bool
}

// DefaultLogFilePath determines the path for the application log file based on XDG spec.
func DefaultLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "bathtub-manager", "app.log"), nil
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// newHandler builds the file handler and, if requested, the stderr handler.
func newHandler(opts Options) (slog.Handler, string, error) {
	level := ParseLevel(opts.Level)
	var handlers []slog.Handler

	logFilePath := opts.File
	var fileErr error
	if logFilePath == "" {
		logFilePath, fileErr = DefaultLogFilePath()
	}
	if fileErr == nil {
		// 0750: user rwx, group rx, others ---
		fileErr = os.MkdirAll(filepath.Dir(logFilePath), 0750)
	}
	if fileErr == nil {
		rotating := &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
			Compress:   compressOldLog,
		}
		handlers = append(handlers, slog.NewJSONHandler(rotating, &slog.HandlerOptions{Level: level}))
	} else {
		logFilePath = ""
	}

	if opts.Stderr {
		handlers = append(handlers, tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	}

	switch len(handlers) {
	case 0:
		return nil, "", fmt.Errorf("no log output available: %w", fileErr)
	case 1:
		return handlers[0], logFilePath, fileErr
	default:
		return fanout(handlers), logFilePath, fileErr
	}
}

// InitLogger initializes the logger. It MUST be called once at the beginning of the application.
func InitLogger(opts Options) {
	handler, logFilePath, err := newHandler(opts)
	if handler == nil {
		fmt.Fprintf(os.Stderr, "Logger initialization failed: %v. Falling back to basic stderr logging.\n", err)
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "File logging disabled: %v\n", err)
	}
	defaultLogger = slog.New(handler)

	if logFilePath != "" {
		Debug("Logging configured.", "file", logFilePath, "stderr", opts.Stderr)
	}
}

// SetLogger replaces the default logger instance, e.g. in tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger falls back to warnings on stderr when InitLogger was never called,
// which is the case in package tests.
func checkLogger() {
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}

// fanout sends every record to each handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
