package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog Logger tagged with the service name.
// APP_ENV=dev (or development) uses a human-friendly console writer and
// defaults to debug; level overrides the default when it parses.
func NewLogger(env, service, level string) zerolog.Logger {
	return newLogger(os.Stdout, env, service, level)
}

func newLogger(out io.Writer, env, service, level string) zerolog.Logger {
	dev := env == "dev" || env == "development"

	lvl := zerolog.InfoLevel
	if dev {
		lvl = zerolog.DebugLevel
	}
	if l, err := zerolog.ParseLevel(level); err == nil && level != "" {
		lvl = l
	}

	w := out
	if dev {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", service).Logger()
}
