package diag

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger returns a logger writing to w as described by cfg. A test
// config yields a logger that drops everything.
func NewLogger(cfg Config, w io.Writer) (zerolog.Logger, error) {
	if cfg.IsTest() {
		return silent(), nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("diag: parse log level %q: %w", cfg.LogLevel, err)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case FormatJSON, "":
	case FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("diag: %w: %q", ErrUnknownFormat, cfg.LogFormat)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Context attaches logger to ctx so that result.Result.Try can find it.
func Context(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// silent drops every event below panic. Unlike zerolog.Nop it is not
// Disabled, so WithContext still stores it and it shadows the global
// fallback used by result.Result.Try.
func silent() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.PanicLevel)
}
