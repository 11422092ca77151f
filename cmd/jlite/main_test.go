// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/jlite"
	"github.com/google/go-cmp/cmp"
)

func runString(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errw bytes.Buffer
	err = run(args, strings.NewReader(input), &out, &errw)
	return out.String(), errw.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"Default", `{"a": [1, 2.5, "x"]} ignored`, nil, `{"a":[1,2.5,"x"]}` + "\n"},
		{"Stdin", `[1 2 3]`, []string{"-"}, "[1,2,3]\n"},
		{"Literals", `[true, null]`, []string{"-l"}, "[true,null]\n"},
		{"JWCC", `{"a": 1, /* note */ "b": [2,],}`, []string{"--jwcc"}, `{"a":1,"b":[2]}` + "\n"},
		{"Path", `{"a": [1, "x"]}`, []string{"-p", "a.1"}, `"x"` + "\n"},
		{"PathNegative", `{"a": [1, "x", 3.5]}`, []string{"--path=a.-1"}, "3.5\n"},
		{"Tree", `{"a": [1, "x"], "b": {}}`, []string{"-f", "tree"}, `map len=2
  "a": list len=2
    [0] int 1
    [1] string "x"
  "b": map len=0
`},
		{"Summary", `{"a": [1, "x", 2], "b": 1.5}`, []string{"--format=summary"}, `int	2
double	1
string	1
list	1
map	1
total	6
`},
		{"All", "  [1]  \n", []string{"--all"}, "[1]\n"},
		{"Select", `{"a": [{"n": 1}, {"n": 2}]}`, []string{"-s", "a.*.n"}, "[1,2]\n"},
		{"PathSelect", `{"a": {"b": [{"n": 1}, {"m": {"n": 2}}]}}`, []string{"-p", "a", "-s", "**.n"}, "[1,2]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, _, err := runString(t, tc.input, tc.args...)
			if err != nil {
				t.Fatalf("run %q: unexpected error: %v", tc.args, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		kind  jlite.ErrorKind
	}{
		{"Empty", "", nil, jlite.EndOfInput},
		{"NoMatch", "true", nil, jlite.NoMatch},
		{"StrictSeparator", "[1 2]", []string{"--strict"}, jlite.MissingSeparator},
		{"StrictString", `"open`, []string{"--strict"}, jlite.Unterminated},
		{"ExtraInput", "1 2", []string{"-a"}, jlite.ExtraInput},
		{"TooDeep", "[[[1]]]", []string{"--max-depth=2"}, jlite.TooDeep},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, logs, err := runString(t, tc.input, tc.args...)
			if !errors.Is(err, &jlite.SyntaxError{Kind: tc.kind}) {
				t.Errorf("run %q: got error %v, want %v", tc.args, err, tc.kind)
			}
			if out != "" {
				t.Errorf("Unexpected output: %q", out)
			}
			if !strings.Contains(logs, "level=error") {
				t.Errorf("Log does not report the error:\n%s", logs)
			}
		})
	}
}

func TestEnvironment(t *testing.T) {
	t.Run("MaxDepth", func(t *testing.T) {
		t.Setenv("JLITE_MAX_DEPTH", "1")
		if _, _, err := runString(t, "[[1]]"); !errors.Is(err, &jlite.SyntaxError{Kind: jlite.TooDeep}) {
			t.Errorf("Got error %v, want %v", err, jlite.TooDeep)
		}
	})
	t.Run("Strict", func(t *testing.T) {
		t.Setenv("JLITE_STRICT", "true")
		if _, _, err := runString(t, `{"a" 1}`); !errors.Is(err, &jlite.SyntaxError{Kind: jlite.MissingSeparator}) {
			t.Errorf("Got error %v, want %v", err, jlite.MissingSeparator)
		}
	})
}

func TestFileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(`{"k": "v"}`), 0600); err != nil {
		t.Fatalf("Write input: %v", err)
	}
	got, _, err := runString(t, "unused", path)
	if err != nil {
		t.Fatalf("run: unexpected error: %v", err)
	}
	if want := `{"k":"v"}` + "\n"; got != want {
		t.Errorf("Output: got %q, want %q", got, want)
	}

	if _, _, err := runString(t, "", filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Missing file: got %v, want %v", err, os.ErrNotExist)
	}
}

func TestDebugLogging(t *testing.T) {
	_, quiet, err := runString(t, "[1]")
	if err != nil {
		t.Fatalf("run: unexpected error: %v", err)
	}
	if quiet != "" {
		t.Errorf("Unexpected log output without --debug:\n%s", quiet)
	}

	_, logs, err := runString(t, "[1] tail", "--debug")
	if err != nil {
		t.Fatalf("run: unexpected error: %v", err)
	}
	for _, want := range []string{"level=debug", "msg=parsed", "kind=list", "consumed=3"} {
		if !strings.Contains(logs, want) {
			t.Errorf("Log is missing %q:\n%s", want, logs)
		}
	}
}

func TestBadSelection(t *testing.T) {
	for _, args := range [][]string{
		{"-p", "b"},
		{"-s", "a..b"},
		{"-s", "a.*"},
	} {
		_, logs, err := runString(t, `{"a": 1}`, args...)
		if err == nil {
			t.Errorf("run %q: got nil error, want error", args)
			continue
		}
		if !strings.Contains(logs, "level=error") {
			t.Errorf("run %q: log does not report the error:\n%s", args, logs)
		}
	}
}
