package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "TUI_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
	checked bool
)

// Init opens path for appending and routes Log output there.
// Any previously opened log file is closed first.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	checked = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	return nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether log output goes anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	ensureLocked()
	return logFile != nil
}

// ensureLocked lazily picks up TUI_DEBUG the first time logging is used.
func ensureLocked() {
	if checked {
		return
	}
	checked = true
	if path := os.Getenv(EnvVar); path != "" {
		// Logging is best effort; a bad path just leaves it disabled.
		_ = initLocked(path)
	}
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureLocked()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
}
