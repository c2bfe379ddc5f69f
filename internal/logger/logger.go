// Package logger holds the process-wide structured logger.
//
// L discards everything until Init is called, so library packages can log
// unconditionally without configuring anything.
package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L is the global logger instance. It's initialized to discard all output by default.
var L = zap.NewNop().Sugar()

const (
	logPrefix     = "outlinekit-"
	logSuffix     = ".log"
	retentionDays = 30

	// StderrDir is the LogDir value that sends human-readable output to stderr.
	StderrDir = "-"
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool          // If false, all logging is discarded
	LogDir  string        // Directory for log files, or StderrDir. Default: ~/.outlinekit/logs
	Level   zapcore.Level // Minimum log level. Zero value is Info
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") to a
// zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zapcore.InfoLevel, errors.Wrapf(err, "log level %q", name)
	}
	return level, nil
}

// Init configures logging. Call from main() before any log calls.
// If opts.Enabled is false, all log output is discarded.
func Init(opts Options) error {
	if !opts.Enabled {
		L = zap.NewNop().Sugar()
		return nil
	}

	if opts.LogDir == StderrDir {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stderr), opts.Level)
		L = zap.New(core).Sugar()
		return nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "resolve home directory")
		}
		logDir = filepath.Join(home, ".outlinekit", "logs")
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return errors.Wrapf(err, "create log directory %s", logDir)
	}

	// Clean up old logs (best-effort, ignore errors)
	cleanOldLogs(logDir, time.Now())

	filename := filepath.Join(logDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", filename)
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(f), opts.Level)
	L = zap.New(core).Sugar()
	return nil
}

// Sync flushes buffered log entries.
func Sync() error {
	return L.Sync()
}

// cleanOldLogs removes log files older than retentionDays.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		// Parse date from filename: outlinekit-2024-01-05.log
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debugw(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Infow(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warnw(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Errorw(msg, args...) }
