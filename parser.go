// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlite

import (
	"github.com/creachadair/jlite/ast"

	"go4.org/mem"
)

// DefaultMaxDepth is the nesting limit used by a Parser that has not been
// given one with SetMaxDepth.
const DefaultMaxDepth = 10000

// A Parser parses values from in-memory text. A zero Parser is ready for use
// and accepts the default grammar. A Parser is not modified by parsing, so
// once configured it may be shared among goroutines.
type Parser struct {
	maxDepth int  // 0 means DefaultMaxDepth
	strict   bool // reject unterminated strings
	literals bool // recognize true, false, null
	needSep  bool // require ":" and "," separators
}

// SetMaxDepth sets the maximum nesting depth of arrays and objects that p
// will accept. If n <= 0, DefaultMaxDepth is used.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = max(n, 0) }

// RejectUnterminated configures p to reject (true) or accept (false) string
// literals that are missing their closing quotation mark. By default they
// are accepted and run to the end of the input.
func (p *Parser) RejectUnterminated(ok bool) { p.strict = ok }

// AllowLiterals configures p to recognize (true) or reject (false) the
// constants true, false, and null. By default they are rejected.
func (p *Parser) AllowLiterals(ok bool) { p.literals = ok }

// RequireSeparators configures p to require (true) or tolerate the absence
// of (false) the ":" between an object key and its value, and the ","
// between consecutive elements or members. By default missing separators
// are tolerated.
func (p *Parser) RequireSeparators(ok bool) { p.needSep = ok }

// std is the default parser used by the package-level functions.
var std Parser

// Parse parses a single value from the front of input with the default
// settings, and returns the value and the number of bytes consumed.
//
// A consumed length of 0 means no value could be parsed, and the value is
// then ast.Null. Empty input and malformed input both report (ast.Null, 0);
// use a Parser to find out why parsing failed.
func Parse(input []byte) (ast.Value, int) {
	v, n, _ := std.Parse(input)
	return v, n
}

// ParseString parses a single value from the front of s with the default
// settings. It behaves as Parse, but does not copy s.
func ParseString(s string) (ast.Value, int) {
	v, n, _ := std.ParseString(s)
	return v, n
}

// ParseAll parses a single value from input with the default settings, and
// reports an error if anything other than whitespace follows it.
func ParseAll(input []byte) (ast.Value, error) { return std.ParseAll(input) }

func (p *Parser) depthLimit() int {
	if p.maxDepth > 0 {
		return p.maxDepth
	}
	return DefaultMaxDepth
}

// Parse parses a single value from the front of input, and returns the value
// and the number of bytes consumed, including any leading whitespace. Input
// following the value is not examined.
//
// If no value can be parsed, Parse returns ast.Null, 0, and an error of
// concrete type *SyntaxError. A value that fails to parse anywhere inside an
// array or object causes the whole array or object to fail.
func (p *Parser) Parse(input []byte) (ast.Value, int, error) {
	return p.parseRO(mem.B(input))
}

// ParseString parses a single value from the front of s. It behaves as
// Parse, but does not copy s.
func (p *Parser) ParseString(s string) (ast.Value, int, error) {
	return p.parseRO(mem.S(s))
}

// ParseAll parses a single value from input, and reports an error of kind
// ExtraInput if anything other than whitespace follows it.
func (p *Parser) ParseAll(input []byte) (ast.Value, error) {
	in := mem.B(input)
	v, n, err := p.parseRO(in)
	if err != nil {
		return v, err
	}
	if end := skipSpace(in, n); end < in.Len() {
		return ast.Null{}, syntaxError(ExtraInput, end)
	}
	return v, nil
}

func (p *Parser) parseRO(in mem.RO) (ast.Value, int, error) {
	v, n, err := p.parseValue(in, 0, 0)
	if err != nil {
		return ast.Null{}, 0, err
	}
	return v, n, nil
}

// parseValue parses a single value from the front of in, which begins at
// offset base of the complete input and is nested inside depth containers.
// On success it returns the value and the number of bytes consumed, which is
// never 0. On failure it returns a nil value, 0, and an error.
func (p *Parser) parseValue(in mem.RO, base, depth int) (ast.Value, int, *SyntaxError) {
	i := skipSpace(in, 0)
	if i == in.Len() {
		return nil, 0, syntaxError(EndOfInput, base+i)
	}
	rest := in.SliceFrom(i)

	var v ast.Value
	var n int
	var err *SyntaxError
	switch ch := rest.At(0); {
	case isNumStart(ch):
		v, n, err = scanNumber(rest, base+i)
	case ch == '"':
		v, n, err = scanString(rest, base+i, p.strict)
	case ch == '[':
		v, n, err = p.parseList(rest, base+i, depth+1)
	case ch == '{':
		v, n, err = p.parseMap(rest, base+i, depth+1)
	case p.literals && (ch == 't' || ch == 'f' || ch == 'n'):
		v, n, err = scanLiteral(rest, base+i)
	default:
		err = syntaxError(NoMatch, base+i)
	}
	if err != nil {
		return nil, 0, err
	}
	return v, i + n, nil
}

// parseList parses an array.
// Precondition: in.Len() > 0 and in.At(0) == '['.
func (p *Parser) parseList(in mem.RO, base, depth int) (ast.Value, int, *SyntaxError) {
	if depth > p.depthLimit() {
		return nil, 0, syntaxError(TooDeep, base)
	}
	out := ast.List{}
	i := skipSpace(in, 1)
	for {
		if i >= in.Len() {
			return nil, 0, syntaxError(Unterminated, base)
		} else if in.At(i) == ']' {
			return out, i + 1, nil
		}

		v, n, err := p.parseValue(in.SliceFrom(i), base+i, depth)
		if err != nil {
			return nil, 0, nested(err)
		}
		out = append(out, v)
		i += n

		var ok bool
		if i, ok = p.separator(in, i, ',', ']'); !ok {
			return nil, 0, syntaxError(MissingSeparator, base+i)
		}
	}
}

// parseMap parses an object.
// Precondition: in.Len() > 0 and in.At(0) == '{'.
func (p *Parser) parseMap(in mem.RO, base, depth int) (ast.Value, int, *SyntaxError) {
	if depth > p.depthLimit() {
		return nil, 0, syntaxError(TooDeep, base)
	}
	var ms []ast.Member
	i := skipSpace(in, 1)
	for {
		if i >= in.Len() {
			return nil, 0, syntaxError(Unterminated, base)
		} else if in.At(i) == '}' {
			return ast.NewMap(ms...), i + 1, nil
		}

		// Key: any value may be parsed here, but only a string is accepted.
		kv, n, err := p.parseValue(in.SliceFrom(i), base+i, depth)
		if err != nil {
			return nil, 0, nested(err)
		}
		key, ok := kv.(ast.String)
		if !ok {
			return nil, 0, syntaxError(KeyNotString, base+i)
		}
		i += n

		if i, ok = p.separator(in, i, ':', 0); !ok {
			return nil, 0, syntaxError(MissingSeparator, base+i)
		}

		v, n, err := p.parseValue(in.SliceFrom(i), base+i, depth)
		if err != nil {
			return nil, 0, nested(err)
		}
		ms = append(ms, ast.Field(string(key), v))
		i += n

		if i, ok = p.separator(in, i, ',', '}'); !ok {
			return nil, 0, syntaxError(MissingSeparator, base+i)
		}
	}
}

// separator skips whitespace, at most one sep byte, and whitespace again,
// starting at offset i of in, and returns the offset following them.
//
// If p requires separators and sep is absent, separator reports false unless
// the next byte is the closing delimiter end or the input is exhausted; the
// caller reports those cases on its next iteration. A zero end means the
// separator is always required.
func (p *Parser) separator(in mem.RO, i int, sep, end byte) (int, bool) {
	i = skipSpace(in, i)
	if i < in.Len() && in.At(i) == sep {
		return skipSpace(in, i+1), true
	}
	if p.needSep && i < in.Len() && (end == 0 || in.At(i) != end) {
		return i, false
	}
	return i, true
}
