package pyenv

import (
	"os"
	"path/filepath"
)

// 가상환경 디렉토리 안의 기본 상대 경로다.
const (
	DefaultInterpreter    = "bin/python"
	DefaultActivateScript = "bin/activate"
)

// Layout은 PYENV_ROOT 아래 설치된 버전들의 배치를 나타낸다.
type Layout struct {
	Root           string
	Interpreter    string
	ActivateScript string
}

// NewLayout은 기본 상대 경로를 가진 Layout을 만든다.
func NewLayout(root string) *Layout {
	return &Layout{
		Root:           root,
		Interpreter:    DefaultInterpreter,
		ActivateScript: DefaultActivateScript,
	}
}

// Prefix는 version의 설치 경로를 정규화하여 반환한다.
func (l *Layout) Prefix(version string) (string, error) {
	if version == SystemVersion {
		return "", newError(KindUnsupported, "system 인터프리터의 prefix 조회는 지원하지 않습니다")
	}
	if l.Root == "" {
		return "", newError(KindNoInstallationRoot, "환경변수 `PYENV_ROOT`를 찾을 수 없습니다")
	}

	dir := filepath.Join(l.Root, "versions", version)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", newError(KindVersionNotInstalled, "버전 `%s`이(가) 설치되어 있지 않습니다", version)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", ioError("경로 정규화 실패", err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", ioError("경로 정규화 실패", err)
	}
	return canonical, nil
}

// Validate는 version이 사용 가능한 가상환경인지 확인하고 정규화된 prefix를 반환한다.
func (l *Layout) Validate(version string) (string, error) {
	if version == SystemVersion {
		return "", NotAVirtualEnv(version)
	}

	prefix, err := l.Prefix(version)
	if err != nil {
		return "", err
	}

	if !isExecutable(filepath.Join(prefix, l.interpreter())) {
		return "", newError(KindInterpreterNotFound, "버전 `%s`에서 `python`을 찾을 수 없습니다", version)
	}
	if !isRegular(filepath.Join(prefix, l.activateScript())) {
		return "", NotAVirtualEnv(version)
	}
	return prefix, nil
}

func (l *Layout) interpreter() string {
	if l.Interpreter == "" {
		return DefaultInterpreter
	}
	return filepath.FromSlash(l.Interpreter)
}

func (l *Layout) activateScript() string {
	if l.ActivateScript == "" {
		return DefaultActivateScript
	}
	return filepath.FromSlash(l.ActivateScript)
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
