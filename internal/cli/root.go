package cli

import (
	"fmt"

	"fsexplorer/internal/cli/paramutils"
	"fsexplorer/internal/cli/utils"
	"fsexplorer/internal/configutils"
	"fsexplorer/internal/explorer"
	"fsexplorer/internal/logutils"
	"fsexplorer/internal/persistance"
	"fsexplorer/internal/pkg/fs"
	"fsexplorer/internal/shell"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var newFilesystem = func() fs.Filesystem {
	return fs.NewOS()
}

func newHistory(cfg *configutils.Config) persistance.HistoryRepo {
	if !cfg.HistoryEnabled {
		return persistance.NopHistoryRepo{}
	}

	return persistance.NewFileHistoryRepo(cfg.HistoryPath, cfg.HistorySize)
}

// startDir picks the directory the session starts in. With resume set, the
// last visited directory wins when it still exists.
func startDir(flags paramutils.FlagRepo, history persistance.HistoryRepo, filesystem fs.Filesystem) string {
	dir := flags.GetStringOrDefault("dir", "")
	if !flags.GetBoolOrDefault("resume", false) {
		return dir
	}

	last, err := history.Last()
	if err != nil {
		log.Warn().Err(err).Msg("cannot read directory history")
		return dir
	}

	if last == "" {
		return dir
	}

	if info, err := filesystem.Stat(last); err != nil || !info.IsDir() {
		log.Warn().Str("path", last).Msg("last visited directory is gone, ignoring --resume")
		return dir
	}

	return last
}

func runCmd(cmd *cobra.Command, args []string) error {
	flags := paramutils.NewFlagRepo(cmd.Flags())

	v, err := configutils.Load(flags.GetStringOrDefault("config", ""))
	if err != nil {
		return err
	}

	cfg, err := configutils.FromViper(v)
	if err != nil {
		return err
	}

	err = logutils.Setup(cmd.ErrOrStderr(), flags.GetStringOrDefault("log-level", cfg.LogLevel))
	if err != nil {
		return err
	}

	filesystem := newFilesystem()
	history := newHistory(cfg)

	e, err := explorer.New(filesystem, startDir(flags, history, filesystem))
	if err != nil {
		return err
	}

	log.Debug().Str("cwd", e.Cwd()).Msg("starting session")

	s := shell.New(
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		cmd.ErrOrStderr(),
		e,
		shell.WithRecorder(history),
	)

	return s.Run()
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fsexplorer",
		Short:         "fsexplorer interactive filesystem shell",
		Long:          `Interactive shell for browsing and manipulating a local filesystem tree.`,
		Version:       fmt.Sprintf("%v, commit %v, built at %v", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		Run:           utils.RunCommandWrapper(runCmd),
	}

	cmd.Flags().String("config", "", "config path")
	cmd.Flags().StringP("dir", "d", "", "starting directory (defaults to the working directory)")
	cmd.Flags().Bool("resume", false, "start in the most recently visited directory")
	cmd.Flags().String("log-level", "", "log level (trace, debug, info, warn, error, disabled)")

	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
