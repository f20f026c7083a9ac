// Package venv decides how to switch the active pyenv virtualenv of a shell.
// It reads an environment snapshot and returns the shell mutations that
// perform the transition; it never touches the process environment.
package venv

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hbjs97/pyenv-venv/internal/env"
	"github.com/hbjs97/pyenv-venv/internal/pyenv"
	"github.com/hbjs97/pyenv-venv/internal/shell"
)

// Validator는 버전 이름을 정규화된 가상환경 prefix로 바꾼다.
type Validator interface {
	Validate(version string) (string, error)
}

// Resolver는 명시 버전이 없을 때 버전 이름을 결정한다.
type Resolver interface {
	Resolve(explicit string) string
}

// Machine은 활성화 상태 머신이다.
type Machine struct {
	Env       env.Snapshot
	Validator Validator
	Resolver  Resolver
	Logger    *log.Logger
}

// Activate는 version(비어 있으면 Resolver 결과)을 활성화하는 스크립트를 만든다.
// 이미 활성화되어 있으면 Noop 스크립트를 반환한다.
func (m *Machine) Activate(version string, force bool) (shell.Script, error) {
	if version == "" {
		version = m.Resolver.Resolve("")
	}

	active := m.Env.ActivePath()
	// 외부에서 활성화한 가상환경은 건드리지 않는다.
	if active != "" && m.Env.ManagedPath() == "" && !force {
		m.logger().Infof("가상환경 `%s`이(가) 이미 활성화되어 있습니다", active)
		return shell.Noop(), nil
	}

	if version == pyenv.SystemVersion {
		return shell.Script{}, pyenv.NotAVirtualEnv(version)
	}

	prefix, err := m.Validator.Validate(version)
	if err != nil {
		return shell.Script{}, err
	}

	if active == prefix && !force {
		m.logger().Infof("버전 `%s`이(가) 이미 활성화되어 있습니다", version)
		return shell.Noop(), nil
	}

	quiet := &Machine{Env: m.Env, Logger: discard}
	script, err := quiet.Deactivate(true)
	if err != nil && !errors.Is(err, pyenv.ErrNothingActivated) {
		return shell.Script{}, err
	}

	script = script.Append(
		shell.Export(env.VersionVar, version),
		shell.Export(env.ActivateShellVar, "1"),
		shell.Export(env.PyenvVirtualEnv, prefix),
		shell.Export(env.VirtualEnvVar, prefix),
	)
	if home := m.Env.PythonHome(); home != "" {
		script = script.Append(
			shell.Export(env.OldPythonHomeVar, home),
			shell.Unset(env.PythonHomeVar),
		)
	}
	return script, nil
}

// Deactivate는 현재 가상환경을 비활성화하는 스크립트를 만든다.
// force이면 활성화된 환경이 없어도 정리 스크립트를 만든다.
func (m *Machine) Deactivate(force bool) (shell.Script, error) {
	if m.Env.ActivePath() == "" && !force {
		return shell.Script{}, pyenv.NothingActivated()
	}

	var script shell.Script
	if m.Env.ManagerMarker() {
		script = script.Append(
			shell.Unset(env.VersionVar),
			shell.Unset(env.ActivateShellVar),
		)
	}
	// 복원 여부는 셸이 평가 시점에 결정한다. 이 프로세스의 스냅샷은 오래되었을 수 있다.
	return script.Append(
		shell.Unset(env.PyenvVirtualEnv),
		shell.Unset(env.VirtualEnvVar),
		shell.RestoreFrom(env.PathVar, env.OldPathVar),
		shell.RestoreFrom(env.PythonHomeVar, env.OldPythonHomeVar),
		shell.UnsetFunction("deactivate"),
	), nil
}

func (m *Machine) logger() *log.Logger {
	if m.Logger == nil {
		return discard
	}
	return m.Logger
}
