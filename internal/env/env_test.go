package env_test

import (
	"testing"

	"github.com/hbjs97/pyenv-venv/internal/env"
	"github.com/stretchr/testify/assert"
)

func TestFromEnviron(t *testing.T) {
	s := env.FromEnviron([]string{
		"VIRTUAL_ENV=/opt/venv",
		"PYENV_VERSION=3.11",
		"EQUALS=a=b",
		"EMPTY=",
		"malformed",
		"=nokey",
	})

	assert.Equal(t, "/opt/venv", s.ActivePath())
	assert.Equal(t, "3.11", s.VersionOverride())
	assert.Equal(t, "a=b", s.Value("EQUALS"))
	assert.False(t, s.Has("EMPTY"))
	assert.False(t, s.Has("malformed"))
}

func TestFromEnviron_LastWins(t *testing.T) {
	s := env.FromEnviron([]string{"PYENV_ROOT=/a", "PYENV_ROOT=/b"})
	assert.Equal(t, "/b", s.Root())
}

func TestFromMap_Copies(t *testing.T) {
	m := map[string]string{env.PythonHomeVar: "/usr"}
	s := env.FromMap(m)
	m[env.PythonHomeVar] = "/changed"

	assert.Equal(t, "/usr", s.PythonHome())
}

func TestEmptyIsAbsent(t *testing.T) {
	s := env.FromMap(map[string]string{
		env.VirtualEnvVar:    "",
		env.ActivateShellVar: "",
	})

	v, ok := s.Get(env.VirtualEnvVar)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.False(t, s.ManagerMarker())
	assert.Empty(t, s.ManagedPath())
}

func TestZeroSnapshot(t *testing.T) {
	var s env.Snapshot
	assert.False(t, s.Has(env.RootVar))
	assert.Empty(t, s.Root())
}
