package shell

import "fmt"

// InitSnippet는 activate/deactivate 출력을 eval하는 셸 함수 정의를 반환한다.
// 지원하지 않는 셸이면 빈 문자열이다.
func InitSnippet(shellType, bin string) string {
	switch shellType {
	case "bash", "zsh":
		return fmt.Sprintf(`# pyenv-venv shell integration (%[1]s)
venv_activate() {
  eval "$(%[2]s activate "$@")"
}
venv_deactivate() {
  eval "$(%[2]s deactivate "$@")"
}
`, shellType, bin)
	default:
		return ""
	}
}
