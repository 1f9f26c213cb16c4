// Package logger provides structured file-based logging for the shortkey TUI.
// Logs are written to per-process files in the XDG state directory so that
// nothing is printed over the alternate screen.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidLogLevel is returned when an unrecognised log level is provided.
var ErrInvalidLogLevel = errors.New("invalid log level")

const (
	// dirPermissions is the mode for the log directory (owner rwx, group/other rx).
	dirPermissions = 0o755

	// filePermissions is the mode for individual log files (owner rw, group/other r).
	filePermissions = 0o644
)

// Logger wraps slog with file-based output for TUI applications.
type Logger struct {
	log     *slog.Logger
	logFile *os.File
}

// appName names the state subdirectory and the log file prefix.
const appName = "shortkey"

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// New creates a new Logger. If level is empty, returns a no-op logger.
// Valid levels: debug, info, warn, error (case-insensitive).
func New(level string) (*Logger, error) {
	if level == "" {
		return Discard(), nil
	}

	slogLevel, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}

	logFile, err := openSessionFile()
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: slogLevel,
	})

	logger := &Logger{
		log:     slog.New(handler),
		logFile: logFile,
	}

	logger.Info(appName+" started", "pid", os.Getpid(), "level", level, "log_path", logFile.Name())

	return logger, nil
}

// With returns a logger that adds the given key-value pairs to every record.
// The returned logger shares the log file; only the parent should be closed.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{log: l.log.With(args...)}
}

// Path returns the log file path, or "" for a discarding logger.
func (l *Logger) Path() string {
	if l.logFile == nil {
		return ""
	}

	return l.logFile.Name()
}

// Close closes the log file if open.
func (l *Logger) Close() {
	if l.logFile != nil {
		l.logFile.Close()
	}
}

// ParseLevel validates a level name without opening anything. Empty is
// accepted and means logging is off.
func ParseLevel(level string) error {
	if level == "" {
		return nil
	}

	_, err := parseLogLevel(level)

	return err
}

// Debug logs a debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.log.Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.log.Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.log.Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, args ...any) {
	l.log.Error(msg, args...)
}

// levels maps accepted level names to slog levels.
var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// stateDir resolves $XDG_STATE_HOME, falling back to ~/.local/state.
func stateDir() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".local", "state"), nil
}

// openSessionFile creates <state>/shortkey/shortkey-<pid>.log, truncating a
// file left behind by an earlier process with the same pid.
func openSessionFile() (*os.File, error) {
	base, err := stateDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}

	name := filepath.Join(dir, fmt.Sprintf("%s-%d.log", appName, os.Getpid()))

	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	return f, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	if lvl, ok := levels[strings.ToLower(level)]; ok {
		return lvl, nil
	}

	return -1, fmt.Errorf("%w: %s (use debug, info, warn, error)", ErrInvalidLogLevel, level)
}
