package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fsexplorer/internal/cli/paramutils"
	"fsexplorer/internal/configutils"
	"fsexplorer/internal/errcodes"
	"fsexplorer/internal/persistance"
	"fsexplorer/internal/pkg/fs"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHistory struct {
	persistance.NopHistoryRepo
	last string
	err  error
}

func (h *mockHistory) Last() (string, error) { return h.last, h.err }

func writeConfig(t *testing.T, historyPath string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := strings.Join([]string{
		"log:",
		"  level: disabled",
		"history:",
		"  path: " + historyPath,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func restoreLogging(t *testing.T) {
	oldLogger := log.Logger
	oldLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = oldLogger
		zerolog.SetGlobalLevel(oldLevel)
	})
}

func Test_startDir(t *testing.T) {
	mem := fs.NewMemory("/work")
	require.NoError(t, mem.Fs.MkdirAll("/last", 0755))

	t.Run("uses the dir flag without resume", func(t *testing.T) {
		flags := &paramutils.MockFlagSet{StringMap: map[string]interface{}{"dir": "/work"}}
		assert.Equal(t, "/work", startDir(flags, &mockHistory{last: "/last"}, mem))
	})

	t.Run("uses the last visited directory with resume", func(t *testing.T) {
		flags := &paramutils.MockFlagSet{StringMap: map[string]interface{}{"resume": true}}
		assert.Equal(t, "/last", startDir(flags, &mockHistory{last: "/last"}, mem))
	})

	t.Run("falls back when the last directory is gone", func(t *testing.T) {
		flags := &paramutils.MockFlagSet{StringMap: map[string]interface{}{"resume": true, "dir": "/work"}}
		assert.Equal(t, "/work", startDir(flags, &mockHistory{last: "/gone"}, mem))
	})

	t.Run("falls back when history cannot be read", func(t *testing.T) {
		flags := &paramutils.MockFlagSet{StringMap: map[string]interface{}{"resume": true}}
		assert.Equal(t, "", startDir(flags, &mockHistory{err: errors.New("bad state")}, mem))
	})

	t.Run("falls back without history", func(t *testing.T) {
		flags := &paramutils.MockFlagSet{StringMap: map[string]interface{}{"resume": true, "dir": "/work"}}
		assert.Equal(t, "/work", startDir(flags, &mockHistory{}, mem))
	})
}

func Test_newHistory(t *testing.T) {
	t.Run("is a no-op when disabled", func(t *testing.T) {
		h := newHistory(&configutils.Config{HistoryEnabled: false})
		assert.Equal(t, persistance.NopHistoryRepo{}, h)
	})

	t.Run("is file backed when enabled", func(t *testing.T) {
		h := newHistory(&configutils.Config{HistoryEnabled: true, HistoryPath: "/tmp/x"})
		assert.IsType(t, &persistance.FileHistoryRepo{}, h)
	})
}

func TestRootCmd(t *testing.T) {
	t.Run("runs a session in the given directory and records history", func(t *testing.T) {
		restoreLogging(t)
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
		historyPath := filepath.Join(t.TempDir(), "state")

		cmd := NewRootCmd()
		out := &bytes.Buffer{}
		cmd.SetIn(strings.NewReader("cd sub\ncreate a.txt\nexit\n"))
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--dir", dir, "--config", writeConfig(t, historyPath)})

		require.NoError(t, cmd.Execute())

		sub := filepath.Join(dir, "sub")
		assert.Equal(t, dir+" > "+sub+" > File created: a.txt\n"+sub+" > ", out.String())
		assert.FileExists(t, filepath.Join(sub, "a.txt"))

		last, err := persistance.NewFileHistoryRepo(historyPath, 0).Last()
		assert.NoError(t, err)
		assert.Equal(t, sub, last)
	})

	t.Run("resumes in the last visited directory", func(t *testing.T) {
		restoreLogging(t)
		dir := t.TempDir()
		historyPath := filepath.Join(t.TempDir(), "state")
		require.NoError(t, persistance.NewFileHistoryRepo(historyPath, 0).AddVisited(dir))

		cmd := NewRootCmd()
		out := &bytes.Buffer{}
		cmd.SetIn(strings.NewReader(""))
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"--resume", "--config", writeConfig(t, historyPath)})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, dir+" > ", out.String())
	})
}

func Test_runCmd(t *testing.T) {
	t.Run("fails for a missing start directory", func(t *testing.T) {
		restoreLogging(t)
		cmd := NewRootCmd()
		require.NoError(t, cmd.ParseFlags([]string{
			"--dir", filepath.Join(t.TempDir(), "missing"),
			"--config", writeConfig(t, filepath.Join(t.TempDir(), "state")),
		}))

		err := runCmd(cmd, nil)
		assert.True(t, errors.Is(err, errcodes.ErrInvalidStartDir))
	})

	t.Run("fails for an unknown log level", func(t *testing.T) {
		restoreLogging(t)
		cmd := NewRootCmd()
		require.NoError(t, cmd.ParseFlags([]string{
			"--log-level", "loud",
			"--config", writeConfig(t, filepath.Join(t.TempDir(), "state")),
		}))

		assert.Error(t, runCmd(cmd, nil))
	})

	t.Run("fails for a missing config file", func(t *testing.T) {
		cmd := NewRootCmd()
		require.NoError(t, cmd.ParseFlags([]string{
			"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		}))

		assert.Error(t, runCmd(cmd, nil))
	})
}
