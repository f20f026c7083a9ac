package pyenv

import (
	"errors"
	"fmt"
)

// Kind는 활성화 실패의 종류다.
type Kind int

const (
	// KindIO는 파일 읽기, 경로 정규화, 인코딩 실패다.
	KindIO Kind = iota
	// KindNoInstallationRoot는 PYENV_ROOT를 알 수 없는 경우다.
	KindNoInstallationRoot
	// KindNothingActivated는 비활성화할 가상환경이 없는 경우다.
	KindNothingActivated
	// KindNotAVirtualEnvironment는 대상이 system이거나 activate 스크립트가 없는 경우다.
	KindNotAVirtualEnvironment
	// KindVersionNotInstalled는 versions/<name> 디렉토리가 없는 경우다.
	KindVersionNotInstalled
	// KindInterpreterNotFound는 실행 가능한 python이 없는 경우다.
	KindInterpreterNotFound
	// KindUnsupported는 아직 지원하지 않는 경로다.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindNoInstallationRoot:
		return "no_installation_root"
	case KindNothingActivated:
		return "nothing_activated"
	case KindNotAVirtualEnvironment:
		return "not_a_virtualenv"
	case KindVersionNotInstalled:
		return "version_not_installed"
	case KindInterpreterNotFound:
		return "interpreter_not_found"
	case KindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error는 종류(Kind)와 사용자용 메시지를 담는 에러다.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is는 같은 Kind의 sentinel과 일치한다.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

// errors.Is 비교용 sentinel error다.
var (
	ErrIO                  = &Error{Kind: KindIO}
	ErrNoInstallationRoot  = &Error{Kind: KindNoInstallationRoot}
	ErrNothingActivated    = &Error{Kind: KindNothingActivated}
	ErrNotAVirtualEnv      = &Error{Kind: KindNotAVirtualEnvironment}
	ErrVersionNotInstalled = &Error{Kind: KindVersionNotInstalled}
	ErrInterpreterNotFound = &Error{Kind: KindInterpreterNotFound}
	ErrUnsupported         = &Error{Kind: KindUnsupported}
)

// KindOf는 err 체인에서 *Error를 찾아 Kind를 반환한다.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func ioError(msg string, err error) *Error {
	return &Error{Kind: KindIO, Msg: msg, Err: err}
}

// NotAVirtualEnv는 version이 가상환경이 아님을 알리는 에러를 만든다.
func NotAVirtualEnv(version string) error {
	return newError(KindNotAVirtualEnvironment, "버전 `%s`은(는) 가상환경이 아닙니다", version)
}

// NothingActivated는 활성화된 가상환경이 없음을 알리는 에러를 만든다.
func NothingActivated() error {
	return newError(KindNothingActivated, "활성화된 가상환경이 없습니다")
}
