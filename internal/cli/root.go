package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hbjs97/pyenv-venv/internal/config"
	"github.com/hbjs97/pyenv-venv/internal/env"
	"github.com/hbjs97/pyenv-venv/internal/pyenv"
	"github.com/hbjs97/pyenv-venv/internal/shell"
	"github.com/hbjs97/pyenv-venv/internal/venv"
	"github.com/spf13/cobra"
)

// App은 CLI 실행에 필요한 외부 입력을 담는다. 테스트에서 주입한다.
type App struct {
	// Environ은 셸 환경 스냅샷이다. nil이면 os.Environ()을 사용한다.
	Environ []string
	// Dir은 버전 파일 탐색 시작 디렉토리다. 비어 있으면 현재 디렉토리다.
	Dir     string
	CfgPath string
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewApp은 현재 프로세스 환경으로 App을 만든다.
func NewApp() *App {
	return &App{
		CfgPath: config.DefaultPath(),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// NewRootCmd는 pyenv-venv CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pyenv-venv",
		Short:        "pyenv 가상환경 활성화 스크립트 생성기",
		SilenceUsage: true,
	}
	if a.Stdout != nil {
		cmd.SetOut(a.Stdout)
	}
	if a.Stderr != nil {
		cmd.SetErr(a.Stderr)
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")

	cmd.AddCommand(
		a.newActivateCmd(),
		a.newDeactivateCmd(),
		a.newInitCmd(),
		a.newVersionNameCmd(),
	)
	return cmd
}

// Execute는 args로 루트 명령을 실행한다. 보고되지 않은 실패(인자 오류 등)에도
// stdout에 false를 출력하여 eval하는 셸이 실패를 감지하게 한다.
func (a *App) Execute(args []string) error {
	cmd := a.NewRootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(cmd.OutOrStdout(), shell.Failure)
	}
	return err
}

// errReported는 이미 false 출력과 진단 로그를 마친 실패에 붙는다.
var errReported = errors.New("reported")

type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() []error { return []error{e.err, errReported} }

// fail은 실패 계약(stdout에 false, stderr에 진단)을 수행한다.
func fail(cmd *cobra.Command, logger *log.Logger, err error) error {
	logger.Error(err.Error())
	fmt.Fprintln(cmd.OutOrStdout(), shell.Failure)
	cmd.SilenceErrors = true
	return &reportedError{err: err}
}

func (a *App) snapshot() env.Snapshot {
	if a.Environ == nil {
		return env.FromEnviron(os.Environ())
	}
	return env.FromEnviron(a.Environ)
}

// machine은 설정과 환경 스냅샷으로 상태 머신을 구성한다.
func (a *App) machine(logger *log.Logger) (*venv.Machine, error) {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return nil, err
	}
	snap := a.snapshot()
	root := cfg.ResolveRoot(snap.Root())
	return &venv.Machine{
		Env:       snap,
		Validator: cfg.Layout(root),
		Resolver: &pyenv.VersionResolver{
			Env:      snap,
			Dir:      a.Dir,
			Root:     root,
			FileName: cfg.VersionFile,
		},
		Logger: logger,
	}, nil
}

// commonFlags는 activate/deactivate가 공유하는 플래그다.
type commonFlags struct {
	quiet bool
	force bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "진단 메시지를 출력하지 않음")
	cmd.Flags().BoolVarP(&f.force, "force", "f", false, "이미 활성화된 상태여도 강제로 수행")
}
