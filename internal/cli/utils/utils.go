package utils

import (
	"fmt"
	"os"

	"fsexplorer/internal/systemcodes"

	"github.com/spf13/cobra"
)

type runCommandError func(*cobra.Command, []string) error
type runCommandNoError func(*cobra.Command, []string)

var exit = os.Exit

func RunCommandWrapper(fn runCommandError) runCommandNoError {
	return func(cmd *cobra.Command, args []string) {
		err := fn(cmd, args)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)

			switch err {
			default:
				exit(systemcodes.ErrorCodeGeneric)
			}
		}
	}
}
