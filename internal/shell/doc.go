// Package shell renders environment mutations as POSIX-shell statements for
// the calling shell to eval, and generates the wrapper functions (bash/zsh)
// that feed pyenv-venv output into eval.
package shell
