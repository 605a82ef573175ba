package logutils

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const DefaultLevel = zerolog.WarnLevel

// Setup points the global logger at w as human readable console output and
// sets the global level. An empty level means DefaultLevel.
func Setup(w io.Writer, level string) error {
	lvl := DefaultLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return errors.Wrapf(err, "invalid log level %q", level)
		}
		lvl = parsed
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()

	return nil
}
