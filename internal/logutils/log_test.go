package logutils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	oldLogger := log.Logger
	oldLevel := zerolog.GlobalLevel()
	defer func() {
		log.Logger = oldLogger
		zerolog.SetGlobalLevel(oldLevel)
	}()

	t.Run("defaults to warn", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NoError(t, Setup(buf, ""))
		assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

		log.Info().Msg("hidden")
		log.Warn().Msg("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("accepts level names in any case", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NoError(t, Setup(buf, "DEBUG"))
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

		log.Debug().Str("path", "/tmp").Msg("listing")
		assert.Contains(t, buf.String(), "listing")
		assert.Contains(t, buf.String(), "/tmp")
	})

	t.Run("disabled silences everything", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NoError(t, Setup(buf, "disabled"))
		log.Error().Msg("nope")
		assert.Empty(t, buf.String())
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		assert.Error(t, Setup(&bytes.Buffer{}, "loud"))
	})
}
