// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlite

import (
	"github.com/creachadair/jlite/ast"
	"github.com/creachadair/jlite/internal/escape"

	"go4.org/mem"
)

// scanNumber consumes a number from the front of in.
// Precondition: in.Len() > 0 and isNumStart(in.At(0)).
//
// The lexeme is converted as an int64 if possible, otherwise as a float64.
// The consumed length is the length of the lexeme; scanNumber does not look
// at what follows it.
func scanNumber(in mem.RO, base int) (ast.Value, int, *SyntaxError) {
	n := matchNumber(in)
	if n == 0 {
		return nil, 0, syntaxError(NoMatch, base)
	}
	lex := in.SliceTo(n)
	if z, err := mem.ParseInt(lex, 10, 64); err == nil {
		return ast.Int(z), n, nil
	}
	if f, err := mem.ParseFloat(lex, 64); err == nil {
		return ast.Double(f), n, nil
	}
	return nil, 0, syntaxError(NumberMalformed, base)
}

// matchNumber returns the length of the longest prefix of in matching
//
//	[+-]? (0 | [1-9][0-9]*) (\.[0-9]+)? ([eE][+-]?[0-9]+)?
//
// or 0 if no prefix matches.
func matchNumber(in mem.RO) int {
	i, n := 0, in.Len()
	if i < n && isSign(in.At(i)) {
		i++
	}
	if i >= n || !isDigit(in.At(i)) {
		return 0 // a sign alone is not a number
	}

	// Integer part. A leading zero is the whole integer part: "0123" matches
	// only "0".
	if in.At(i) == '0' {
		i++
	} else {
		i = skipWhile(in, i, isDigit)
	}

	// Fraction: a decimal point counts only if a digit follows it.
	if i+1 < n && in.At(i) == '.' && isDigit(in.At(i+1)) {
		i = skipWhile(in, i+1, isDigit)
	}

	// Exponent: the marker and sign count only if a digit follows them.
	if i < n && (in.At(i) == 'e' || in.At(i) == 'E') {
		j := i + 1
		if j < n && isSign(in.At(j)) {
			j++
		}
		if j < n && isDigit(in.At(j)) {
			i = skipWhile(in, j, isDigit)
		}
	}
	return i
}

// scanState is the state of the string scanner.
type scanState byte

const (
	stRaw    scanState = iota // copying bytes verbatim
	stEscape                  // the previous byte was a backslash
)

// scanString consumes a quoted string literal from the front of in.
// Precondition: in.Len() > 0 and in.At(0) == '"'.
//
// If the closing quotation mark is missing, the string runs to the end of
// the input, unless strict is true in which case it is rejected.
func scanString(in mem.RO, base int, strict bool) (ast.Value, int, *SyntaxError) {
	buf := make([]byte, 0, in.Len())
	st := stRaw
	for i := 1; i < in.Len(); i++ {
		ch := in.At(i)
		switch st {
		case stRaw:
			switch ch {
			case '\\':
				st = stEscape
			case '"':
				return ast.String(buf), i + 1, nil
			default:
				buf = append(buf, ch)
			}
		case stEscape:
			buf = append(buf, escape.Decode(ch))
			st = stRaw
		}
	}
	if strict {
		return nil, 0, syntaxError(Unterminated, base)
	}
	return ast.String(buf), in.Len(), nil
}

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

// scanLiteral consumes one of the constants true, false, or null from the
// front of in. The constant must not be immediately followed by a letter.
func scanLiteral(in mem.RO, base int) (ast.Value, int, *SyntaxError) {
	var v ast.Value
	var n int
	switch {
	case mem.HasPrefix(in, litTrue):
		v, n = ast.Bool(true), litTrue.Len()
	case mem.HasPrefix(in, litFalse):
		v, n = ast.Bool(false), litFalse.Len()
	case mem.HasPrefix(in, litNull):
		v, n = ast.Null{}, litNull.Len()
	default:
		return nil, 0, syntaxError(NoMatch, base)
	}
	if n < in.Len() && isNameByte(in.At(n)) {
		return nil, 0, syntaxError(NoMatch, base)
	}
	return v, n, nil
}

// skipSpace returns the offset of the first non-whitespace byte of in at or
// after i, or in.Len() if there is none.
func skipSpace(in mem.RO, i int) int { return skipWhile(in, i, isSpace) }

// skipWhile returns the offset of the first byte of in at or after i not
// matching f, or in.Len() if there is none.
func skipWhile(in mem.RO, i int, f func(byte) bool) int {
	for i < in.Len() && f(in.At(i)) {
		i++
	}
	return i
}

// isSpace reports whether ch is insignificant whitespace. This includes the
// NUL byte.
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v', 0:
		return true
	}
	return false
}

func isSign(ch byte) bool     { return ch == '-' || ch == '+' }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNumStart(ch byte) bool { return isSign(ch) || isDigit(ch) }
func isNameByte(ch byte) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }
