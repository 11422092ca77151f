// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlite_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jlite"
	"github.com/creachadair/jlite/ast"
)

// Every byte outside an escape sequence, other than the quotation mark and
// the backslash, is copied into the string verbatim.
func TestStringVerbatim(t *testing.T) {
	for b := 0; b < 256; b++ {
		if b == '"' || b == '\\' {
			continue
		}
		input := string([]byte{'"', 'x', byte(b), 'y', '"'})
		v, n := jlite.ParseString(input)
		if n != len(input) {
			t.Errorf("Parse %q: consumed %d, want %d", input, n, len(input))
		}
		if want := ast.String([]byte{'x', byte(b), 'y'}); v != want {
			t.Errorf("Parse %q: got %q, want %q", input, v, want)
		}
	}
}

// Every escape sequence decodes to exactly one byte, per the escape table.
func TestStringEscapes(t *testing.T) {
	table := map[byte]byte{
		'n': '\n', 'r': '\r', '0': 0, 't': '\t', 'v': '\v', 'f': '\f', 'b': '\b', 'a': '\a',
	}
	for b := 0; b < 256; b++ {
		want, ok := table[byte(b)]
		if !ok {
			want = byte(b)
		}
		input := string([]byte{'"', '\\', byte(b), '"'})
		v, n := jlite.ParseString(input)
		if n != len(input) {
			t.Errorf("Parse %q: consumed %d, want %d", input, n, len(input))
		}
		if got, err := ast.AsString(v); err != nil || got != string([]byte{want}) {
			t.Errorf("Parse %q: got %q, %v; want %q", input, got, err, want)
		}
	}
}

// A number is consumed exactly, whatever follows it.
func TestNumberLexeme(t *testing.T) {
	lexemes := []string{"0", "-7", "+12", "3.25", "-0.5e10", "6E-2", "1e+9"}
	suffixes := []string{"", " ", ",", "]", "}", "x", ".", "e", "-", "\"", ".e"}
	for _, lex := range lexemes {
		for _, sfx := range suffixes {
			input := lex + sfx
			if _, n := jlite.ParseString(input); n != len(lex) {
				t.Errorf("Parse %q: consumed %d, want %d", input, n, len(lex))
			}
		}
	}
}

// Whitespace around any token of a container is insignificant.
func TestContainerWhitespace(t *testing.T) {
	want := `{"a":[1,2.5,"s"],"b":{}}`
	for _, ws := range []string{"", " ", "\t", "\n", "\r\n", "\f\v", "\x00", "  \n\t "} {
		input := strings.NewReplacer("#", ws).Replace(`#{#"a"#:#[#1#,#2.5#,#"s"#]#,#"b"#:#{#}#}`)
		v, n := jlite.ParseString(input)
		if n != len(input) {
			t.Errorf("Parse %q: consumed %d, want %d", input, n, len(input))
			continue
		}
		if got := v.JSON(); got != want {
			t.Errorf("Parse %q: got %s, want %s", input, got, want)
		}
	}
}

// For a successful container parse, the consumed length ends at the matching
// closing bracket.
func TestContainerLength(t *testing.T) {
	values := []string{
		`[]`, `{}`, `[1,[2,[3]]]`, `{"a":{"b":{"c":[]}}}`, `["]","}"]`, `{"}":"]"}`,
	}
	for _, val := range values {
		for _, tail := range []string{"", "]", "}", " [1]", "xyz"} {
			input := val + tail
			if _, n := jlite.ParseString(input); n != len(val) {
				t.Errorf("Parse %q: consumed %d, want %d", input, n, len(val))
			}
		}
	}
}

func ExampleParse() {
	v, n := jlite.Parse([]byte(`{"name": "jlite", "sizes": [1, 2.5]} trailing`))
	fmt.Println(v.JSON(), n)
	// Output:
	// {"name":"jlite","sizes":[1,2.5]} 36
}

func ExampleParser() {
	var p jlite.Parser
	p.RequireSeparators(true)
	_, _, err := p.Parse([]byte(`[1 2]`))
	fmt.Println(err)
	// Output:
	// at offset 3: missing separator
}
