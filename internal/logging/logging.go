// Package logging wraps charmbracelet/log with the levels and debug helpers
// used across addnoise.
//
// By default entries at warn and above go to stderr. Setting DEBUG in the
// environment switches to debug level and redirects everything to
// addnoise.log in the working directory, truncated on each run.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const (
	Prefix       = "addnoise"
	DebugEnv     = "DEBUG"
	DebugLogFile = "addnoise.log"
)

type AppLogger struct {
	logger *log.Logger
	debug  bool
}

var (
	defaultLogger *AppLogger
	once          sync.Once
)

// GetDefault returns the process-wide logger, creating it on first use.
func GetDefault() *AppLogger {
	once.Do(func() {
		defaultLogger = NewAppLogger()
	})
	return defaultLogger
}

func Info(msg string, keyvals ...interface{}) {
	GetDefault().Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	GetDefault().Warn(msg, keyvals...)
}

func Debug(msg string, keyvals ...interface{}) {
	GetDefault().Debug(msg, keyvals...)
}

// NewAppLogger builds a logger from the environment. If the debug log file
// cannot be opened, debug output goes to stderr instead.
func NewAppLogger() *AppLogger {
	if os.Getenv(DebugEnv) == "" {
		return newAppLogger(os.Stderr, log.WarnLevel, time.RFC3339, false)
	}

	f, path, err := openDebugLog()
	if err != nil {
		al := newAppLogger(os.Stderr, log.DebugLevel, time.RFC3339, true)
		al.Warn("Debug log file unavailable, logging to stderr", "error", err)
		return al
	}

	al := newAppLogger(f, log.DebugLevel, time.Kitchen, true)
	al.Info("Debug logging enabled", "log_file", path)
	return al
}

// newAppLogger writes to w at level. An empty timeFormat disables timestamps.
func newAppLogger(w io.Writer, level log.Level, timeFormat string, caller bool) *AppLogger {
	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    caller,
		ReportTimestamp: timeFormat != "",
		TimeFormat:      timeFormat,
		Prefix:          Prefix,
	})
	logger.SetLevel(level)

	return &AppLogger{
		logger: logger,
		debug:  level <= log.DebugLevel,
	}
}

func openDebugLog() (*os.File, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}

	path := filepath.Join(cwd, DebugLogFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open debug log: %w", err)
	}
	return f, path, nil
}

// SetLevel changes the minimum level from its name (debug, info, warn, error).
// Selecting "debug" also enables the debug-only helpers below.
func (al *AppLogger) SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	al.logger.SetLevel(lvl)
	al.debug = lvl <= log.DebugLevel
	return nil
}

// With returns a child logger that adds keyvals to every entry.
func (al *AppLogger) With(keyvals ...interface{}) *AppLogger {
	return &AppLogger{
		logger: al.logger.With(keyvals...),
		debug:  al.debug,
	}
}

func (al *AppLogger) Info(msg string, keyvals ...interface{}) {
	al.logger.Info(msg, keyvals...)
}

func (al *AppLogger) Warn(msg string, keyvals ...interface{}) {
	al.logger.Warn(msg, keyvals...)
}

func (al *AppLogger) Error(msg string, keyvals ...interface{}) {
	al.logger.Error(msg, keyvals...)
}

func (al *AppLogger) Debug(msg string, keyvals ...interface{}) {
	if al.debug {
		al.logger.Debug(msg, keyvals...)
	}
}

// LogMessage records a bubbletea message with its concrete type.
func (al *AppLogger) LogMessage(msg tea.Msg) {
	if !al.debug {
		return
	}
	al.logger.Debug("Message received",
		"type", fmt.Sprintf("%T", msg),
		"content", fmt.Sprintf("%+v", msg),
	)
}

// DebugObject dumps obj with field names.
func (al *AppLogger) DebugObject(name string, obj interface{}) {
	if al.debug {
		al.logger.Debug("Object dump", "name", name, "object", fmt.Sprintf("%+v", obj))
	}
}

// LogPerformance records the time elapsed since start for operation, plus
// any extra keyvals.
func (al *AppLogger) LogPerformance(operation string, start time.Time, keyvals ...interface{}) {
	if !al.debug {
		return
	}
	kv := append([]interface{}{"operation", operation, "duration", time.Since(start)}, keyvals...)
	al.logger.Debug("Performance", kv...)
}

func (al *AppLogger) LogUserAction(action, context string) {
	if al.debug {
		al.logger.Debug("User action", "action", action, "context", context)
	}
}

// NewTestLogger returns a debug-level logger without timestamps and the
// buffer it writes to.
func NewTestLogger() (*AppLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return newAppLogger(&buf, log.DebugLevel, "", false), &buf
}
