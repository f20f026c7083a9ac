//go:build unix

package pyenv

import "golang.org/x/sys/unix"

func isExecutable(path string) bool {
	return isRegular(path) && unix.Access(path, unix.X_OK) == nil
}
