package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Logger is the global logger instance
	Logger  *slog.Logger
	logFile *lumberjack.Logger
)

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
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

// Init initializes the logger with the specified level, format, and file output
func Init(level string, jsonOutput bool, logToFile bool) error {
	var writer io.Writer = os.Stderr

	if logToFile {
		logPath := GetLogFilePath()
		logDir := filepath.Dir(logPath)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}

		logFile = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    1,
			MaxBackups: 2,
		}

		// Write to both file and stderr
		writer = io.MultiWriter(os.Stderr, logFile)
	}

	Logger = New(writer, level, jsonOutput)
	return nil
}

// New builds a logger writing to w without touching the global one
func New(w io.Writer, level string, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// GetLogFilePath returns the path logs are written to when file logging is
// enabled
func GetLogFilePath() string {
	return filepath.Join(xdg.StateHome, "jld", "logs", "jld.log")
}

// Close closes the log file if it was opened
func Close() error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if Logger != nil {
		Logger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if Logger != nil {
		Logger.Info(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	if Logger != nil {
		Logger.Warn(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...any) {
	if Logger != nil {
		Logger.Error(msg, args...)
	}
}
