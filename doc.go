// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jlite implements a small recursive-descent parser for JSON-like
// text held in memory.
//
// # Parsing
//
// Parse reads one value from the front of a byte slice and returns the value
// together with the number of bytes it consumed:
//
//	v, n := jlite.Parse([]byte(`[1, 2.5, "three"]`))
//	if n == 0 {
//	   log.Fatal("no value found")
//	}
//
// The value is an ast.Value: one of ast.Null, ast.Bool, ast.Int, ast.Double,
// ast.String, ast.List, or ast.Map. A consumed length of 0 means nothing could
// be parsed, and is always paired with ast.Null. Parsing never panics on
// malformed input.
//
// To learn why parsing failed, or to change the grammar, use a Parser. Its
// Parse method reports an error of concrete type *jlite.SyntaxError giving
// the kind of failure and its byte offset:
//
//	var p jlite.Parser
//	p.AllowLiterals(true)
//	v, n, err := p.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// # Grammar
//
// Leading whitespace (space, tab, newline, carriage return, form feed,
// vertical tab, and NUL) is skipped and counted in the consumed length. The
// first remaining byte selects the rule:
//
//	First byte    | Rule   | Result
//	------------- | ------ | -----------------------------------------
//	digit, +, -   | number | ast.Int, or ast.Double if not an integer
//	"             | string | ast.String
//	[             | array  | ast.List
//	{             | object | ast.Map
//
// A number is an optional sign, an integer part without redundant leading
// zeroes, an optional fraction, and an optional exponent. It is an Int if it
// converts to an int64 exactly, otherwise a Double. Only the number itself is
// consumed.
//
// A string is delimited by double quotation marks. A backslash escapes the
// following byte: \n, \r, \0, \t, \v, \f, \b, and \a denote the corresponding
// control characters, and any other escaped byte denotes itself. There are no
// \u escapes. By default a string without a closing quotation mark runs to the
// end of the input; see Parser.RejectUnterminated.
//
// Array elements and object members are separated by commas, and object keys
// are separated from their values by colons. A missing separator is tolerated
// by default; see Parser.RequireSeparators. Object keys must be strings. If a
// key occurs more than once in an object, the first occurrence is kept.
//
// If any element, key, or value of an array or object fails to parse, the
// entire array or object fails. There is no partial result.
//
// # Depth
//
// Each array or object nests one level deeper. A Parser rejects input nested
// more than DefaultMaxDepth levels deep unless configured otherwise with
// SetMaxDepth, so that hostile input cannot exhaust the stack.
package jlite
