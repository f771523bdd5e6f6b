package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/scoop-searchr/scoop-searchr/internal/branding"
)

// newLogger returns the diagnostics logger. Results go to stdout; everything
// logged here goes to w (stderr in production).
func newLogger(w io.Writer, verbose, quiet bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case verbose:
		level = log.DebugLevel
	case quiet:
		level = log.ErrorLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  level,
	})
}
