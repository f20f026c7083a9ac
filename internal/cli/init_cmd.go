package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/pyenv-venv/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var shellType string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "activate/deactivate 출력을 eval하는 셸 함수를 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shellType == "" {
				shellType = detectShell()
			}
			snippet := shell.InitSnippet(shellType, cmd.Root().Name())
			if snippet == "" {
				return fmt.Errorf("cli.init: 지원하지 않는 셸: %q", shellType)
			}
			fmt.Fprint(cmd.OutOrStdout(), snippet)
			return nil
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (bash, zsh). 비어 있으면 $SHELL에서 감지")
	return cmd
}

// detectShell은 $SHELL에서 현재 셸 이름을 감지한다.
func detectShell() string {
	return filepath.Base(os.Getenv("SHELL"))
}
