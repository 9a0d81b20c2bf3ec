// Package logging holds the process-wide structured logger.
//
// The logger discards everything until a binary installs a real one with
// SetGlobalLogger, so library packages may log freely at Trace and Debug.
package logging

import (
	"github.com/rs/zerolog"
)

var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
	zerolog.DefaultContextLogger = &Logger
}

func Trace() *zerolog.Event { return Logger.Trace() }

func Debug() *zerolog.Event { return Logger.Debug() }

func Warn() *zerolog.Event { return Logger.Warn() }
