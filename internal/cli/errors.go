package cli

import (
	"github.com/hbjs97/pyenv-venv/internal/config"
	"github.com/hbjs97/pyenv-venv/internal/pyenv"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
	// ErrNothingActivated는 비활성화할 가상환경이 없을 때의 sentinel error다.
	ErrNothingActivated = pyenv.ErrNothingActivated
	// ErrNotAVirtualEnv는 대상이 가상환경이 아닐 때의 sentinel error다.
	ErrNotAVirtualEnv = pyenv.ErrNotAVirtualEnv
	// ErrVersionNotInstalled는 버전이 설치되어 있지 않을 때의 sentinel error다.
	ErrVersionNotInstalled = pyenv.ErrVersionNotInstalled
)
