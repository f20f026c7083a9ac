// Package env provides a read-only snapshot of the shell variables that
// drive virtualenv activation.
package env

import "strings"

// 활성화 상태를 구성하는 셸 변수 이름이다.
const (
	VersionVar       = "PYENV_VERSION"
	RootVar          = "PYENV_ROOT"
	VirtualEnvVar    = "VIRTUAL_ENV"
	PyenvVirtualEnv  = "PYENV_VIRTUAL_ENV"
	ActivateShellVar = "PYENV_ACTIVATE_SHELL"
	PathVar          = "PATH"
	OldPathVar       = "_OLD_VIRTUAL_PATH"
	PythonHomeVar    = "PYTHONHOME"
	OldPythonHomeVar = "_OLD_VIRTUAL_PYTHONHOME"
)

// Snapshot은 호출 시점의 셸 환경 변수 뷰다. 생성 후 변경되지 않는다.
type Snapshot struct {
	vars map[string]string
}

// FromEnviron은 os.Environ() 형식("KEY=VALUE")의 슬라이스로 Snapshot을 만든다.
// 같은 키가 여러 번 나오면 마지막 값이 우선한다.
func FromEnviron(environ []string) Snapshot {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = v
	}
	return Snapshot{vars: vars}
}

// FromMap은 map을 복사하여 Snapshot을 만든다.
func FromMap(m map[string]string) Snapshot {
	vars := make(map[string]string, len(m))
	for k, v := range m {
		vars[k] = v
	}
	return Snapshot{vars: vars}
}

// Get은 변수 값을 반환한다. 빈 문자열은 미설정과 동일하게 취급한다.
func (s Snapshot) Get(name string) (string, bool) {
	v := s.vars[name]
	return v, v != ""
}

// Value는 Get의 값만 반환한다.
func (s Snapshot) Value(name string) string {
	v, _ := s.Get(name)
	return v
}

// Has는 변수가 비어 있지 않은 값으로 설정되어 있는지 반환한다.
func (s Snapshot) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// ActivePath는 현재 활성화된 가상환경 경로(VIRTUAL_ENV)다.
func (s Snapshot) ActivePath() string { return s.Value(VirtualEnvVar) }

// ManagedPath는 이 도구가 기록한 가상환경 경로(PYENV_VIRTUAL_ENV)다.
func (s Snapshot) ManagedPath() string { return s.Value(PyenvVirtualEnv) }

// ManagerMarker는 이 도구가 활성화를 수행했는지 여부(PYENV_ACTIVATE_SHELL)다.
func (s Snapshot) ManagerMarker() bool { return s.Has(ActivateShellVar) }

// VersionOverride는 PYENV_VERSION 값이다.
func (s Snapshot) VersionOverride() string { return s.Value(VersionVar) }

// Root는 PYENV_ROOT 값이다.
func (s Snapshot) Root() string { return s.Value(RootVar) }

// PythonHome은 PYTHONHOME 값이다.
func (s Snapshot) PythonHome() string { return s.Value(PythonHomeVar) }
