//go:build !unix

package pyenv

// 실행 비트가 없는 플랫폼에서는 일반 파일이면 실행 가능하다고 본다.
func isExecutable(path string) bool {
	return isRegular(path)
}
