// Package logger provides logging functionalities for specsim.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the logger.
type Config struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	JSONFormat bool   `mapstructure:"json_format"`
}

// Setup configures the global logger based on the provided configuration.
// The returned closer releases the log file, if one was opened.
func Setup(cfg Config) (io.Closer, error) {
	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339},
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		logFile, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
		if err != nil {
			return nil, err
		}
		closer = logFile
		if cfg.JSONFormat {
			writers = append(writers, logFile)
		} else {
			writers = append(writers, zerolog.ConsoleWriter{Out: logFile, TimeFormat: time.RFC3339, NoColor: true})
		}
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	SetLevel(cfg.Level)

	log.Debug().Str("level", zerolog.GlobalLevel().String()).Msg("Logger initialized")
	return closer, nil
}

// SetLevel sets the global logging level.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		if level != "" {
			log.Warn().Msgf("Unknown log level '%s', defaulting to 'info'", level)
		}
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
