// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jlite"
	"github.com/creachadair/jlite/ast"
	"github.com/creachadair/jlite/ast/cursor"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": 1.5,
    "d": "dee",
    "q": -3
  }
}`

func mustParse(t *testing.T, s string) ast.Value {
	t.Helper()
	v, n := jlite.ParseString(s)
	if n != len(s) {
		t.Fatalf("Parse: consumed %d of %d bytes", n, len(s))
	}
	return v
}

func TestCursor(t *testing.T) {
	v := mustParse(t, testJSON)
	root := v.(ast.Map)
	get := func(m ast.Value, key string) ast.Value {
		out, _ := m.(ast.Map).Get(key)
		return out
	}

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{"o", "x"}, get(root, "o"), true},

		{"ListPos", []any{"list", 1}, get(root, "list").(ast.List)[1], false},
		{"ListNeg", []any{"list", -1}, get(root, "list").(ast.List)[1], false},
		{"ListRange", []any{"o", 25}, get(root, "o"), true},
		{"MapPath", []any{"xyz", "d"}, ast.String("dee"), false},
		{"MapIndex", []any{"xyz", -1}, ast.Int(-3), false},
		{"Nested", []any{"list", 0, "x"}, ast.Int(1), false},
		{"BadElement", []any{1.5}, v, true},

		{"FuncList", []any{"o", testPathFunc}, ast.Int(2), false},
		{"FuncMap", []any{"xyz", testPathFunc}, ast.Int(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, ast.String("dee"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Fatalf("Down %+v: got nil, want error", tc.path)
			}
			got := c.Value()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Down %+v: wrong result (-want, +got):\n%s", tc.path, diff)
			} else if err == nil {
				t.Logf("Found %s OK", got.JSON())
			}
		})
	}
}

func TestUpReset(t *testing.T) {
	v := mustParse(t, testJSON)
	c := cursor.New(v).Down("y", "hello")
	if c.Err() != nil {
		t.Fatalf("Down: %v", c.Err())
	}
	if got := len(c.Path()); got != 3 {
		t.Errorf("Path length: got %d, want 3", got)
	}
	if got := c.Up().Value(); got.Kind() != ast.MapKind {
		t.Errorf("Up: got %v, want a map", got.Kind())
	}
	c.Reset()
	if !c.AtOrigin() || !ast.Equal(c.Value(), c.Origin()) {
		t.Error("Reset did not return to the origin")
	}
	if c.Up(); !c.AtOrigin() {
		t.Error("Up at origin moved the cursor")
	}
}

func TestPath(t *testing.T) {
	v := mustParse(t, testJSON)

	s, err := cursor.Path[ast.String](v, cursor.ParsePath("o.1")...)
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	} else if s != "yourself" {
		t.Errorf("Path: got %q, want yourself", s)
	}

	if _, err := cursor.Path[ast.Int](v, "o", 0); err == nil {
		t.Error("Path with wrong type: got nil, want error")
	}
	if _, err := cursor.Path[ast.Int](v, "zzz"); err == nil {
		t.Error("Path with bad key: got nil, want error")
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		input string
		want  []any
	}{
		{"", nil},
		{"a", []any{"a"}},
		{"a.0.b", []any{"a", 0, "b"}},
		{"-1.x", []any{-1, "x"}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, cursor.ParsePath(tc.input)); diff != "" {
			t.Errorf("ParsePath(%q) (-want, +got):\n%s", tc.input, diff)
		}
	}
}

func testPathFunc(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.List:
		return ast.ToValue(len(t)), nil
	case ast.Map:
		return ast.ToValue(t.Len()), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}
