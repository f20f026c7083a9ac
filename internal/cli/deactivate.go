package cli

import (
	"fmt"

	"github.com/hbjs97/pyenv-venv/internal/venv"
	"github.com/spf13/cobra"
)

func (a *App) newDeactivateCmd() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   "deactivate",
		Short: "가상환경을 비활성화하는 셸 스크립트를 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeactivate(cmd, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *App) runDeactivate(cmd *cobra.Command, flags commonFlags) error {
	logger := venv.NewLogger(cmd.ErrOrStderr(), flags.quiet)

	m := &venv.Machine{Env: a.snapshot(), Logger: logger}
	script, err := m.Deactivate(flags.force)
	if err != nil {
		return fail(cmd, logger, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), script.String())
	return nil
}
