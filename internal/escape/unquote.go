// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of string literals.
//
// The escape table is single-character only: a backslash followed by one of
// the letters n, r, 0, t, v, f, b, a denotes the corresponding control
// character, and a backslash followed by any other byte denotes that byte.
// There are no \u escapes.
package escape

import (
	"errors"

	"go4.org/mem"
)

// Decode returns the byte denoted by the escape letter c.
func Decode(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case '0':
		return 0
	case 't':
		return '\t'
	case 'v':
		return '\v'
	case 'f':
		return '\f'
	case 'b':
		return '\b'
	case 'a':
		return '\a'
	default:
		return c
	}
}

// Unquote decodes the body of a string literal. The input must have the
// enclosing double quotation marks already removed.
//
// Escape sequences are replaced with the bytes they denote. Unquote reports
// an error if src ends in the middle of an escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))
		if i+1 >= src.Len() {
			return nil, errors.New("incomplete escape sequence")
		}
		dec = append(dec, Decode(src.At(i+1)))
		src = src.SliceFrom(i + 2)
	}
}
