// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global logger based on verbosity level and
// writes human-readable output to stderr.
func SetupLogger(verbosity int) {
	SetupLoggerTo(os.Stderr, verbosity, true)
}

// SetupLoggerTo configures the global logger to write to w. With pretty
// set, output goes through a console writer; otherwise it is JSON.
func SetupLoggerTo(w io.Writer, verbosity int, pretty bool) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	out := w
	if pretty {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// LevelFor maps a -v count to a level: 0 warn, 1 info, 2 debug, 3+ trace.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
