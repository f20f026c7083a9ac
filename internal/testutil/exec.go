package testutil

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/hbjs97/pyenv-venv/internal/env"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Tracked lists the variables EvalScript reports in addition to the keys of
// the starting environment.
var Tracked = []string{
	env.VersionVar,
	env.RootVar,
	env.VirtualEnvVar,
	env.PyenvVirtualEnv,
	env.ActivateShellVar,
	env.PathVar,
	env.OldPathVar,
	env.PythonHomeVar,
	env.OldPythonHomeVar,
}

// EvalResult is the shell state after evaluating a script.
type EvalResult struct {
	// Vars holds every tracked variable that is set after evaluation.
	Vars map[string]string
	// Status is the exit status of the script.
	Status int
	// Stdout is whatever the script printed.
	Stdout string
}

// EvalScript evaluates script in an in-process bash interpreter seeded with
// vars, the way `eval "$(pyenv-venv ...)"` would in the user's shell.
func EvalScript(t *testing.T, vars map[string]string, script string) EvalResult {
	t.Helper()

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(script), "script")
	if err != nil {
		t.Fatalf("EvalScript: parse failed: %v\n%s", err, script)
	}

	pairs := make([]string, 0, len(vars))
	for k, v := range vars {
		pairs = append(pairs, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	runner, err := interp.New(
		interp.Env(expand.ListEnviron(pairs...)),
		interp.StdIO(nil, &stdout, &stderr),
	)
	if err != nil {
		t.Fatalf("EvalScript: interp.New failed: %v", err)
	}

	result := EvalResult{}
	if err := runner.Run(context.Background(), file); err != nil {
		status, ok := interp.IsExitStatus(err)
		if !ok {
			t.Fatalf("EvalScript: run failed: %v\n%s", err, stderr.String())
		}
		result.Status = int(status)
	}
	result.Stdout = stdout.String()

	names := trackedNames(vars)
	stdout.Reset()
	dump, err := parser.Parse(strings.NewReader(dumpScript(names)), "dump")
	if err != nil {
		t.Fatalf("EvalScript: dump parse failed: %v", err)
	}
	if err := runner.Run(context.Background(), dump); err != nil {
		t.Fatalf("EvalScript: dump failed: %v", err)
	}

	result.Vars = make(map[string]string)
	for _, line := range strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n") {
		if k, v, ok := strings.Cut(line, "="); ok {
			result.Vars[k] = v
		}
	}
	return result
}

func trackedNames(vars map[string]string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, n := range Tracked {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for k := range vars {
		if !seen[k] {
			seen[k] = true
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

func dumpScript(names []string) string {
	var b strings.Builder
	for _, n := range names {
		fmt.Fprintf(&b, "if [ -n \"${%[1]s+x}\" ]; then printf '%%s=%%s\\n' %[1]s \"$%[1]s\"; fi\n", n)
	}
	return b.String()
}
