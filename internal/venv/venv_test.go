package venv_test

import (
	"bytes"
	"testing"

	"github.com/hbjs97/pyenv-venv/internal/env"
	"github.com/hbjs97/pyenv-venv/internal/pyenv"
	"github.com/hbjs97/pyenv-venv/internal/shell"
	"github.com/hbjs97/pyenv-venv/internal/testutil"
	"github.com/hbjs97/pyenv-venv/internal/venv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMachine builds a Machine over root with the given environment.
func newMachine(t *testing.T, root string, vars map[string]string) *venv.Machine {
	t.Helper()
	snap := env.FromMap(vars)
	return &venv.Machine{
		Env:       snap,
		Validator: pyenv.NewLayout(root),
		Resolver:  &pyenv.VersionResolver{Env: snap, Dir: t.TempDir(), Root: root},
	}
}

var forcedDeactivate = []string{
	"unset PYENV_VIRTUAL_ENV;",
	"unset VIRTUAL_ENV;",
	`if [ -n "$_OLD_VIRTUAL_PATH" ]; then export PATH="$_OLD_VIRTUAL_PATH"; unset _OLD_VIRTUAL_PATH; fi;`,
	`if [ -n "$_OLD_VIRTUAL_PYTHONHOME" ]; then export PYTHONHOME="$_OLD_VIRTUAL_PYTHONHOME"; unset _OLD_VIRTUAL_PYTHONHOME; fi;`,
	"if declare -f deactivate >/dev/null 2>&1; then unset -f deactivate; fi;",
}

func TestActivate_FromOverrideVariable(t *testing.T) {
	root := testutil.TempPyenvRoot(t)
	prefix := testutil.InstallVirtualenv(t, root, "3.11")
	m := newMachine(t, root, map[string]string{env.VersionVar: "3.11", env.RootVar: root})

	script, err := m.Activate("", false)
	require.NoError(t, err)

	want := append(append([]string{}, forcedDeactivate...),
		`export PYENV_VERSION="3.11";`,
		`export PYENV_ACTIVATE_SHELL="1";`,
		`export PYENV_VIRTUAL_ENV="`+prefix+`";`,
		`export VIRTUAL_ENV="`+prefix+`";`,
	)
	assert.Equal(t, want, script.Lines())
	assert.NotContains(t, script.String(), "_OLD_VIRTUAL_PYTHONHOME=")
}

func TestActivate_BacksUpPythonHome(t *testing.T) {
	root := testutil.TempPyenvRoot(t)
	testutil.InstallVirtualenv(t, root, "venv")
	m := newMachine(t, root, map[string]string{env.PythonHomeVar: "/opt/python"})

	script, err := m.Activate("venv", false)
	require.NoError(t, err)

	lines := script.Lines()
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, `export _OLD_VIRTUAL_PYTHONHOME="/opt/python";`, lines[len(lines)-2])
	assert.Equal(t, "unset PYTHONHOME;", lines[len(lines)-1])
}

func TestActivate_AlreadyActiveIsNoop(t *testing.T) {
	root := testutil.TempPyenvRoot(t)
	prefix := testutil.InstallVirtualenv(t, root, "venv")
	m := newMachine(t, root, map[string]string{
		env.VirtualEnvVar:    prefix,
		env.PyenvVirtualEnv:  prefix,
		env.ActivateShellVar: "1",
	})

	script, err := m.Activate("venv", false)
	require.NoError(t, err)
	assert.Equal(t, "true\n", script.String())
}

func TestActivate_ForceReactivates(t *testing.T) {
	root := testutil.TempPyenvRoot(t)
	prefix := testutil.InstallVirtualenv(t, root, "venv")
	m := newMachine(t, root, map[string]string{
		env.VirtualEnvVar:    prefix,
		env.PyenvVirtualEnv:  prefix,
		env.ActivateShellVar: "1",
	})

	script, err := m.Activate("venv", true)
	require.NoError(t, err)
	lines := script.Lines()
	assert.Equal(t, "unset PYENV_VERSION;", lines[0])
	assert.Equal(t, "unset PYENV_ACTIVATE_SHELL;", lines[1])
	assert.Contains(t, lines, `export VIRTUAL_ENV="`+prefix+`";`)
}

func TestActivate_ExternalActivationLeftAlone(t *testing.T) {
	root := testutil.TempPyenvRoot(t)
	testutil.InstallVirtualenv(t, root, "venv")
	m := newMachine(t, root, map[string]string{env.VirtualEnvVar: "/home/user/project/.venv"})

	script, err := m.Activate("venv", false)
	require.NoError(t, err)
	assert.Equal(t, "true\n", script.String())
}

func TestActivate_ExternalActivationLogsNotice(t *testing.T) {
	root := testutil.TempPyenvRoot(t)
	var buf bytes.Buffer
	m := newMachine(t, root, map[string]string{env.VirtualEnvVar: "/project/.venv"})
	m.Logger = venv.NewLogger(&buf, false)

	_, err := m.Activate("does-not-exist", false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "/project/.venv")
	assert.Contains(t, buf.String(), venv.LogPrefix)
}

func TestActivate_QuietLoggerIsSilent(t *testing.T) {
	var buf bytes.Buffer
	m := newMachine(t, testutil.TempPyenvRoot(t), map[string]string{env.VirtualEnvVar: "/project/.venv"})
	m.Logger = venv.NewLogger(&buf, true)

	_, err := m.Activate("x", false)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestActivate_ExternalActivationSkipsValidation(t *testing.T) {
	root := testutil.TempPyenvRoot(t)
	m := newMachine(t, root, map[string]string{
		env.VirtualEnvVar: "/gone/venv",
	})
	m.Validator = failingValidator{t}

	script, err := m.Activate("gone", false)
	require.NoError(t, err)
	assert.True(t, script.IsNoop())
}

func TestActivate_ExternalActivationReplacedWithForce(t *testing.T) {
	root := testutil.TempPyenvRoot(t)
	prefix := testutil.InstallVirtualenv(t, root, "venv")
	m := newMachine(t, root, map[string]string{env.VirtualEnvVar: "/project/.venv"})

	script, err := m.Activate("venv", true)
	require.NoError(t, err)
	assert.Equal(t, forcedDeactivate, script.Lines()[:len(forcedDeactivate)])
	assert.Contains(t, script.Lines(), `export VIRTUAL_ENV="`+prefix+`";`)
}

func TestActivate_SwitchesBetweenManagedEnvs(t *testing.T) {
	root := testutil.TempPyenvRoot(t)
	a := testutil.InstallVirtualenv(t, root, "a")
	b := testutil.InstallVirtualenv(t, root, "b")
	m := newMachine(t, root, map[string]string{
		env.VersionVar:       "a",
		env.VirtualEnvVar:    a,
		env.PyenvVirtualEnv:  a,
		env.ActivateShellVar: "1",
	})

	script, err := m.Activate("b", false)
	require.NoError(t, err)

	lines := script.Lines()
	assert.Equal(t, "unset PYENV_VERSION;", lines[0])
	assert.Equal(t, `export VIRTUAL_ENV="`+b+`";`, lines[len(lines)-1])
}

func TestActivate_Errors(t *testing.T) {
	root := testutil.TempPyenvRoot(t)
	testutil.InstallVersion(t, root, "3.12.0")

	tests := []struct {
		name    string
		version string
		vars    map[string]string
		want    error
	}{
		{"system explicit", pyenv.SystemVersion, nil, pyenv.ErrNotAVirtualEnv},
		{"system resolved", "", nil, pyenv.ErrNotAVirtualEnv},
		{"not installed", "missing", nil, pyenv.ErrVersionNotInstalled},
		{"not a virtualenv", "3.12.0", nil, pyenv.ErrNotAVirtualEnv},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine(t, root, tt.vars)
			script, err := m.Activate(tt.version, false)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, script.IsNoop())
		})
	}
}

func TestActivate_NoRoot(t *testing.T) {
	snap := env.FromMap(nil)
	m := &venv.Machine{
		Env:       snap,
		Validator: pyenv.NewLayout(""),
		Resolver:  &pyenv.VersionResolver{Env: snap, Dir: t.TempDir()},
	}

	_, err := m.Activate("venv", false)
	assert.ErrorIs(t, err, pyenv.ErrNoInstallationRoot)
}

func TestDeactivate_NothingActive(t *testing.T) {
	m := newMachine(t, testutil.TempPyenvRoot(t), nil)

	_, err := m.Deactivate(false)
	assert.ErrorIs(t, err, pyenv.ErrNothingActivated)
}

func TestDeactivate_ForcedWithNothingActive(t *testing.T) {
	m := newMachine(t, testutil.TempPyenvRoot(t), nil)

	script, err := m.Deactivate(true)
	require.NoError(t, err)
	assert.Equal(t, forcedDeactivate, script.Lines())
}

func TestDeactivate_ManagedActivation(t *testing.T) {
	m := newMachine(t, testutil.TempPyenvRoot(t), map[string]string{
		env.VirtualEnvVar:    "/root/.pyenv/versions/venv",
		env.PyenvVirtualEnv:  "/root/.pyenv/versions/venv",
		env.ActivateShellVar: "1",
	})

	script, err := m.Deactivate(false)
	require.NoError(t, err)
	want := append([]string{"unset PYENV_VERSION;", "unset PYENV_ACTIVATE_SHELL;"}, forcedDeactivate...)
	assert.Equal(t, want, script.Lines())
}

func TestDeactivate_ExternalActivation(t *testing.T) {
	m := newMachine(t, testutil.TempPyenvRoot(t), map[string]string{env.VirtualEnvVar: "/project/.venv"})

	script, err := m.Deactivate(false)
	require.NoError(t, err)
	assert.Equal(t, forcedDeactivate, script.Lines())
}

func TestDeactivate_RestoresRegardlessOfSnapshot(t *testing.T) {
	// The snapshot has no restore slots, but the shell might.
	m := newMachine(t, testutil.TempPyenvRoot(t), map[string]string{env.VirtualEnvVar: "/v"})

	script, err := m.Deactivate(false)
	require.NoError(t, err)
	assert.Contains(t, script.Lines(), shell.RestoreFrom(env.PathVar, env.OldPathVar).String())
	assert.Contains(t, script.Lines(), shell.RestoreFrom(env.PythonHomeVar, env.OldPythonHomeVar).String())
}

type failingValidator struct{ t *testing.T }

func (v failingValidator) Validate(string) (string, error) {
	v.t.Fatal("Validate must not be called")
	return "", nil
}
