// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the value tree produced by the jlite parser.
//
// A Value is exactly one of Null, Bool, Int, Double, String, List, or Map.
// The set is closed: no other package can add an implementation of Value.
// Values are immutable once constructed, and each node of a tree is owned by
// its parent container.
package ast

import (
	"iter"
	"strconv"
	"strings"

	"github.com/creachadair/jlite/internal/escape"
	"go4.org/mem"
)

// A Value is a node of a parsed document.
type Value interface {
	// Kind reports which variant of Value this is.
	Kind() Kind

	// JSON renders the value as source text. Parsing the result yields a
	// value equal to the original.
	JSON() string

	isValue()
}

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	IntKind
	DoubleKind
	StringKind
	ListKind
	MapKind
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	IntKind:    "int",
	DoubleKind: "double",
	StringKind: "string",
	ListKind:   "list",
	MapKind:    "map",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}

// Null represents the absence of a value.
type Null struct{}

func (Null) Kind() Kind     { return NullKind }
func (Null) JSON() string   { return "null" }
func (Null) String() string { return "Null" }
func (Null) isValue()       {}

// A Bool is a Boolean value.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }
func (Bool) isValue()       {}

// An Int is a 64-bit signed integer value.
type Int int64

func (Int) Kind() Kind { return IntKind }

func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }
func (Int) isValue()       {}

// A Double is a 64-bit floating-point value.
type Double float64

func (Double) Kind() Kind { return DoubleKind }

// JSON renders d so that it reads back as a Double rather than an Int: the
// result always carries a decimal point or an exponent.
func (d Double) JSON() string {
	s := strconv.FormatFloat(float64(d), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") { // n, N: NaN and Inf
		s += ".0"
	}
	return s
}

func (Double) isValue() {}

// A String is a decoded string value.
type String string

func (String) Kind() Kind { return StringKind }

// JSON renders s as a quoted literal.
func (s String) JSON() string {
	q := escape.Quote(mem.S(string(s)))
	buf := make([]byte, 0, len(q)+2)
	buf = append(buf, '"')
	buf = append(buf, q...)
	return string(append(buf, '"'))
}

func (String) isValue() {}

// A List is an ordered sequence of values.
type List []Value

func (List) Kind() Kind { return ListKind }

func (l List) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Len reports the number of elements in l.
func (l List) Len() int { return len(l) }

func (List) isValue() {}

// A Member is a single key-value pair of a Map.
type Member struct {
	Key   string
	Value Value
}

// Field constructs a map member with the given key and value.
func Field(key string, v Value) Member { return Member{Key: key, Value: v} }

// A Map is a mapping from string keys to values. Keys are unique, and the
// members are kept in the order they were first given. The zero value is an
// empty map.
type Map struct {
	members []Member
	index   map[string]int
}

// NewMap constructs a map from the given members. If a key occurs more than
// once, the first occurrence is kept and the later ones are discarded.
func NewMap(ms ...Member) Map {
	out := Map{index: make(map[string]int, len(ms))}
	for _, m := range ms {
		if _, ok := out.index[m.Key]; ok {
			continue // first wins
		}
		out.index[m.Key] = len(out.members)
		out.members = append(out.members, m)
	}
	return out
}

func (Map) Kind() Kind { return MapKind }

func (m Map) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, mem := range m.members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(String(mem.Key).JSON())
		sb.WriteByte(':')
		sb.WriteString(mem.Value.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Len reports the number of members in m.
func (m Map) Len() int { return len(m.members) }

// Get returns the value associated with key, and reports whether it exists.
func (m Map) Get(key string) (Value, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.members[i].Value, true
}

// At returns the member at offset i of m. It panics if i is out of range.
func (m Map) At(i int) Member { return m.members[i] }

// Keys returns the keys of m in order.
func (m Map) Keys() []string {
	keys := make([]string, len(m.members))
	for i, mem := range m.members {
		keys[i] = mem.Key
	}
	return keys
}

// All returns an iterator over the members of m in order.
func (m Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, mem := range m.members {
			if !yield(mem.Key, mem.Value) {
				return
			}
		}
	}
}

func (Map) isValue() {}
