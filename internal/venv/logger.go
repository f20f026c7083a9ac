package venv

import (
	"io"

	"github.com/charmbracelet/log"
)

// LogPrefix는 진단 메시지 앞에 붙는 프로그램 이름이다.
const LogPrefix = "pyenv-venv"

var discard = log.New(io.Discard)

// NewLogger는 w로 출력하는 logger를 만든다. quiet이면 모든 출력을 버린다.
func NewLogger(w io.Writer, quiet bool) *log.Logger {
	if quiet {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{Prefix: LogPrefix})
}
