// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// TimeFormat is used by the console writer.
const TimeFormat = "2006-01-02_15:04:05"

// New returns a logger writing to out at the given level. format is
// "console" for human-readable output or "json" for one object per line.
func New(out io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level %q: %w", level, err)
	}

	switch format {
	case "json":
	case "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: TimeFormat, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
