package paramutils

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func newFlags(t *testing.T, args ...string) FlagRepo {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dir", "", "")
	flags.Bool("resume", false, "")
	assert.NoError(t, flags.Parse(args))

	return NewFlagRepo(flags)
}

func TestPFlagSetWrapper_GetStringOrDefault(t *testing.T) {
	t.Run("returns flag value when defined", func(t *testing.T) {
		assert.Equal(t, "/tmp", newFlags(t, "--dir", "/tmp").GetStringOrDefault("dir", "d"))
	})

	t.Run("returns default value on empty string", func(t *testing.T) {
		assert.Equal(t, "d", newFlags(t).GetStringOrDefault("dir", "d"))
	})

	t.Run("returns default value for unknown flags", func(t *testing.T) {
		assert.Equal(t, "d", newFlags(t).GetStringOrDefault("nope", "d"))
	})
}

func TestPFlagSetWrapper_GetBoolOrDefault(t *testing.T) {
	t.Run("returns flag value when defined", func(t *testing.T) {
		assert.Equal(t, true, newFlags(t, "--resume").GetBoolOrDefault("resume", false))
	})

	t.Run("returns default value for unknown flags", func(t *testing.T) {
		assert.Equal(t, true, newFlags(t).GetBoolOrDefault("nope", true))
	})
}
