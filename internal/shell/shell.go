package shell

import (
	"fmt"
	"strings"
)

// 평가 결과만 전달하는 리터럴이다.
const (
	Success = "true"
	Failure = "false"
)

// Op는 Mutation의 종류다.
type Op int

const (
	// OpExport는 export NAME="value"다.
	OpExport Op = iota
	// OpUnset는 unset NAME이다.
	OpUnset
	// OpRestore는 Slot이 비어 있지 않으면 Name을 Slot 값으로 복원하고 Slot을 지운다.
	OpRestore
	// OpUnsetFunction는 함수 Name이 정의되어 있으면 제거한다.
	OpUnsetFunction
)

// Mutation은 셸 환경 변경 하나다.
type Mutation struct {
	Op    Op
	Name  string
	Value string
	Slot  string
}

// Export는 export 변경을 만든다.
func Export(name, value string) Mutation {
	return Mutation{Op: OpExport, Name: name, Value: value}
}

// Unset은 unset 변경을 만든다.
func Unset(name string) Mutation {
	return Mutation{Op: OpUnset, Name: name}
}

// RestoreFrom은 셸 평가 시점에 slot 값이 있을 때만 name을 복원하는 변경을 만든다.
func RestoreFrom(name, slot string) Mutation {
	return Mutation{Op: OpRestore, Name: name, Slot: slot}
}

// UnsetFunction은 셸 함수 제거 변경을 만든다.
func UnsetFunction(name string) Mutation {
	return Mutation{Op: OpUnsetFunction, Name: name}
}

// String은 Mutation을 한 줄의 셸 문장으로 렌더링한다.
func (m Mutation) String() string {
	switch m.Op {
	case OpExport:
		return fmt.Sprintf(`export %s="%s";`, m.Name, Escape(m.Value))
	case OpUnset:
		return fmt.Sprintf("unset %s;", m.Name)
	case OpRestore:
		return fmt.Sprintf(`if [ -n "$%[2]s" ]; then export %[1]s="$%[2]s"; unset %[2]s; fi;`, m.Name, m.Slot)
	case OpUnsetFunction:
		return fmt.Sprintf("if declare -f %[1]s >/dev/null 2>&1; then unset -f %[1]s; fi;", m.Name)
	default:
		return ""
	}
}

// Script는 순서가 의미를 갖는 Mutation 목록이다. 재정렬이나 중복 제거를 하지 않는다.
type Script struct {
	Mutations []Mutation
}

// Noop은 아무 변경도 없는 스크립트다.
func Noop() Script {
	return Script{}
}

// IsNoop은 변경이 없는지 반환한다.
func (s Script) IsNoop() bool {
	return len(s.Mutations) == 0
}

// Append는 m을 뒤에 덧붙인 새 Script를 반환한다.
func (s Script) Append(m ...Mutation) Script {
	out := make([]Mutation, 0, len(s.Mutations)+len(m))
	out = append(out, s.Mutations...)
	out = append(out, m...)
	return Script{Mutations: out}
}

// Concat은 other의 변경을 s 뒤에 이어 붙인다.
func (s Script) Concat(other Script) Script {
	return s.Append(other.Mutations...)
}

// Lines는 각 Mutation을 렌더링한 줄 목록이다. 빈 스크립트는 Success 한 줄이다.
func (s Script) Lines() []string {
	if s.IsNoop() {
		return []string{Success}
	}
	lines := make([]string, 0, len(s.Mutations))
	for _, m := range s.Mutations {
		lines = append(lines, m.String())
	}
	return lines
}

// String은 eval에 넘길 전체 텍스트다. 줄마다 개행으로 끝난다.
func (s Script) String() string {
	return strings.Join(s.Lines(), "\n") + "\n"
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

// Escape는 큰따옴표 안에서 특수 의미를 갖는 문자를 이스케이프한다.
func Escape(v string) string {
	return escaper.Replace(v)
}
