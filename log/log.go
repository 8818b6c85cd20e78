package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly}).
	With().Timestamp().Logger()

func SetDebug(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func Infof(format string, args ...interface{}) {
	logger.Info().Msgf(format, args...)
}

func Debugf(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}

func Warnf(format string, args ...interface{}) {
	logger.Warn().Msgf(format, args...)
}

func Error(err error) {
	logger.Error().Err(err).Send()
}

func Errorf(format string, args ...interface{}) {
	logger.Error().Msgf(format, args...)
}

func Panic(err error) {
	logger.Panic().Err(err).Send()
}
