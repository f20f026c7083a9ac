package cli

import (
	"fmt"

	"github.com/hbjs97/pyenv-venv/internal/venv"
	"github.com/spf13/cobra"
)

func (a *App) newVersionNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version-name",
		Short: "명시 버전이 없을 때 사용할 버전 이름을 표시한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVersionName(cmd)
		},
	}
}

func (a *App) runVersionName(cmd *cobra.Command) error {
	m, err := a.machine(venv.NewLogger(cmd.ErrOrStderr(), true))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), m.Resolver.Resolve(""))
	return nil
}
