// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the given level (debug, info, warn, error).
// Debug level adds caller information.
func New(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:       prefix,
		Level:        lvl,
		ReportCaller: lvl == log.DebugLevel,
	}), nil
}
