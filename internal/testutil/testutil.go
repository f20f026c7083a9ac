// Package testutil provides common test helpers for the pyenv-venv project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempPyenvRoot creates an empty PYENV_ROOT with a versions directory and
// returns its canonical path.
func TempPyenvRoot(t *testing.T) string {
	t.Helper()

	root := Canonical(t, t.TempDir())
	if err := os.MkdirAll(filepath.Join(root, "versions"), 0755); err != nil {
		t.Fatalf("TempPyenvRoot: mkdir failed: %v", err)
	}
	return root
}

// InstallVirtualenv creates versions/<name> with an executable bin/python and
// a bin/activate script. Returns the environment's path.
func InstallVirtualenv(t *testing.T, root, name string) string {
	t.Helper()

	dir := InstallVersion(t, root, name)
	writeFile(t, filepath.Join(dir, "bin", "activate"), "# activate\n", 0644)
	return dir
}

// InstallVersion creates versions/<name> with an executable bin/python but
// no activate script, like a plain CPython build.
func InstallVersion(t *testing.T, root, name string) string {
	t.Helper()

	dir := filepath.Join(root, "versions", name)
	writeFile(t, filepath.Join(dir, "bin", "python"), "#!/bin/sh\n", 0755)
	return dir
}

// LinkVersion creates versions/<alias> as a symlink to versions/<target>.
func LinkVersion(t *testing.T, root, alias, target string) string {
	t.Helper()

	link := filepath.Join(root, "versions", alias)
	if err := os.Symlink(filepath.Join(root, "versions", target), link); err != nil {
		t.Fatalf("LinkVersion: symlink failed: %v", err)
	}
	return link
}

// WriteVersionFile writes a .python-version file into dir.
func WriteVersionFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ".python-version")
	writeFile(t, path, content, 0644)
	return path
}

// WriteRootVersion writes the global $PYENV_ROOT/version file.
func WriteRootVersion(t *testing.T, root, content string) string {
	t.Helper()

	path := filepath.Join(root, "version")
	writeFile(t, path, content, 0644)
	return path
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, content, 0600)
	return path
}

// Canonical resolves symlinks in path so that comparisons against
// canonicalized prefixes hold on systems where the temp dir is a symlink.
func Canonical(t *testing.T, path string) string {
	t.Helper()

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	return resolved
}

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("writeFile: mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("writeFile: write failed: %v", err)
	}
	if err := os.Chmod(path, perm); err != nil {
		t.Fatalf("writeFile: chmod failed: %v", err)
	}
}
