// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlite

import "fmt"

// ErrorKind classifies the failures reported by a Parser.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	NoMatch          ErrorKind = iota + 1 // no grammar rule matches the next byte
	EndOfInput                            // input ended where a value was required
	NumberMalformed                       // a number lexeme converts to neither int64 nor float64
	KeyNotString                          // an object key is not a string
	Unterminated                          // a string, array, or object is not closed
	TooDeep                               // nesting exceeds the parser's depth limit
	MissingSeparator                      // a required ":" or "," is absent
	ExtraInput                            // non-whitespace input follows the value
)

var kindStr = [...]string{
	NoMatch:          "no match",
	EndOfInput:       "unexpected end of input",
	NumberMalformed:  "malformed number",
	KeyNotString:     "object key is not a string",
	Unterminated:     "unterminated value",
	TooDeep:          "nesting too deep",
	MissingSeparator: "missing separator",
	ExtraInput:       "extra input after value",
}

func (k ErrorKind) String() string {
	if k == 0 || int(k) >= len(kindStr) {
		return "unknown error"
	}
	return kindStr[k]
}

// SyntaxError is the concrete type of errors reported by a Parser.
type SyntaxError struct {
	Kind   ErrorKind
	Offset int // byte offset of the failure in the complete input

	// Nested reports that the failure occurred while parsing an element,
	// key, or value of an enclosing array or object, which was discarded.
	Nested bool
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("at offset %d: %s", e.Offset, e.Kind)
	if e.Nested {
		msg += " (nested)"
	}
	return msg
}

// Is reports whether target is a *SyntaxError with the same Kind as e.
// This permits
//
//	errors.Is(err, &jlite.SyntaxError{Kind: jlite.KeyNotString})
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	return ok && t.Kind == e.Kind
}

func syntaxError(kind ErrorKind, offset int) *SyntaxError {
	return &SyntaxError{Kind: kind, Offset: offset}
}

// nested marks e as having occurred inside a container.
func nested(e *SyntaxError) *SyntaxError { e.Nested = true; return e }
