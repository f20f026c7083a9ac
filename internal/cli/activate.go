package cli

import (
	"fmt"

	"github.com/hbjs97/pyenv-venv/internal/venv"
	"github.com/spf13/cobra"
)

func (a *App) newActivateCmd() *cobra.Command {
	var flags commonFlags
	var unset bool

	cmd := &cobra.Command{
		Use:   "activate [version]",
		Short: "가상환경을 활성화하는 셸 스크립트를 출력한다",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if unset {
				return a.runDeactivate(cmd, flags)
			}
			var version string
			if len(args) == 1 {
				version = args[0]
			}
			return a.runActivate(cmd, version, flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&unset, "unset", false, "deactivate와 동일하게 동작")
	return cmd
}

func (a *App) runActivate(cmd *cobra.Command, version string, flags commonFlags) error {
	logger := venv.NewLogger(cmd.ErrOrStderr(), flags.quiet)

	m, err := a.machine(logger)
	if err != nil {
		return fail(cmd, logger, err)
	}
	script, err := m.Activate(version, flags.force)
	if err != nil {
		return fail(cmd, logger, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), script.String())
	return nil
}
