// Package logging configures the shared logger. The CLI logs to stderr;
// the TUI owns the terminal, so its logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// ForCLI returns a stderr logger. verbose lowers the level to debug.
func ForCLI(verbose bool) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.WarnLevel)
	}
	return l
}

// ForTUI returns a file-backed debug logger plus a close func. With an
// empty path logs are discarded.
func ForTUI(path string) (*log.Logger, func() error, error) {
	if path == "" {
		l := log.New(io.Discard)
		return l, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
	})
	l.SetLevel(log.DebugLevel)
	return l, f.Close, nil
}
