package shared

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger opens filename for appending and returns a logger writing to
// it. The game owns the terminal, so logs never go to stdout or stderr.
func SetupLogger(filename, level string, debug bool) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := NewLogger(f, level, debug)
	return logger, f, nil
}

// NewLogger returns a logger writing to w at the named level, or at debug
// level when debug is set
func NewLogger(w io.Writer, level string, debug bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	if debug {
		lvl = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "soliterm",
		Level:           lvl,
	})
}
