// ABOUTME: Structured debug logger writing to a file in the config directory
// ABOUTME: Keeps log output off the terminal so TUI rendering is never disturbed

package debuglog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = zerolog.Nop()
)

// Init opens <configDir>/debug.log and routes the package logger there.
// An empty configDir leaves logging disabled.
func Init(configDir, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if configDir == "" {
		logger = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(configDir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}

	logFile = f
	logger = zerolog.New(f).Level(parseLevel(level)).With().Timestamp().Logger()
	return nil
}

// Close flushes and closes the log file. Logging is disabled afterwards.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = zerolog.Nop()
}

// Logger returns the package logger. A no-op logger before Init. The
// returned pointer addresses a snapshot, so a concurrent Close cannot
// swap the logger out from under a chained call.
func Logger() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	l := logger
	return &l
}

// Error logs err with context. Nil errors are ignored.
func Error(context string, err error) {
	if err == nil {
		return
	}
	Logger().Error().Str("context", context).Err(err).Msg("operation failed")
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
