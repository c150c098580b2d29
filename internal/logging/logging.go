// Package logging configures the global zerolog logger used through
// github.com/rs/zerolog/log.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logging settings.
type Config struct {
	// Level is trace, debug, info, warn or error. Default: info.
	Level string

	// Format is console or json. Default: console.
	Format string

	// Output defaults to os.Stderr.
	Output io.Writer
}

var mu sync.Mutex

// Init replaces the global logger.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	output := cfg.Output
	if !strings.EqualFold(cfg.Format, "json") {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: "15:04:05",
		}
	}

	log.Logger = zerolog.New(output).With().Timestamp().Str("app", "amor").Logger()
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
