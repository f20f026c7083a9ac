package pyenv

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/hbjs97/pyenv-venv/internal/env"
)

// SystemVersion은 격리되지 않은 시스템 인터프리터를 뜻하는 sentinel 버전이다.
const SystemVersion = "system"

// DefaultVersionFile은 디렉토리별 버전 파일 이름이다.
const DefaultVersionFile = ".python-version"

// maxVersionFileRead는 버전 파일에서 읽는 최대 바이트 수다.
const maxVersionFileRead = 1024

// VersionResolver는 명시 버전이 없을 때 사용할 버전 이름을 결정한다.
type VersionResolver struct {
	Env      env.Snapshot
	Dir      string // 탐색 시작 디렉토리. 비어 있으면 os.Getwd()
	Root     string // PYENV_ROOT. 비어 있으면 Env에서 읽는다
	FileName string // 비어 있으면 DefaultVersionFile
}

// Resolve는 4단계로 버전 이름을 결정한다. 에러를 반환하지 않으며,
// 모든 소스가 없으면 SystemVersion으로 귀결된다.
func (r *VersionResolver) Resolve(explicit string) string {
	// Step 1: 명시 인자
	if explicit != "" {
		return explicit
	}

	// Step 2: PYENV_VERSION
	if v := r.Env.VersionOverride(); v != "" {
		return v
	}

	// Step 3-4: 상위 디렉토리의 .python-version, 없으면 $PYENV_ROOT/version
	path, ok := r.versionFile()
	if !ok {
		return SystemVersion
	}
	v, err := ReadVersionFile(path)
	if err != nil || v == "" {
		return SystemVersion
	}
	return v
}

// versionFile은 가장 가까운 버전 파일 경로를 찾는다.
func (r *VersionResolver) versionFile() (string, bool) {
	name := r.FileName
	if name == "" {
		name = DefaultVersionFile
	}

	if dir, err := r.startDir(); err == nil {
		if path, ok := FindVersionFile(dir, name); ok {
			return path, true
		}
	}

	root := r.Root
	if root == "" {
		root = r.Env.Root()
	}
	if root == "" {
		return "", false
	}
	return filepath.Join(root, "version"), true
}

func (r *VersionResolver) startDir() (string, error) {
	if r.Dir != "" {
		return filepath.Abs(r.Dir)
	}
	return os.Getwd()
}

// FindVersionFile은 dir부터 루트까지 올라가며 name 파일을 찾는다.
func FindVersionFile(dir, name string) (string, bool) {
	for {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ReadVersionFile은 버전 파일의 첫 토큰을 읽는다.
// 앞 1024바이트만 보며, 앞쪽 공백을 건너뛴 뒤 다음 공백 전까지를 반환한다.
func ReadVersionFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", ioError("버전 파일 열기 실패", err)
	}
	defer f.Close()

	buf := make([]byte, maxVersionFileRead)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", ioError("버전 파일 읽기 실패", err)
	}
	token := firstToken(buf[:n])
	if !utf8.Valid(token) {
		return "", newError(KindIO, "버전 파일 %s: UTF-8이 아닌 내용", path)
	}
	return string(token), nil
}

func firstToken(b []byte) []byte {
	b = bytes.TrimLeft(b, asciiSpace)
	if i := bytes.IndexAny(b, asciiSpace); i >= 0 {
		b = b[:i]
	}
	return b
}

const asciiSpace = " \t\n\f\r"
