// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlite

import (
	"errors"
	"strings"

	"github.com/creachadair/jlite/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a string literal. The contents are escaped and double
// quotation marks are added. Parsing the result yields src.
func Quote(src string) string { return `"` + string(escape.Quote(mem.S(src))) + `"` }

// Unquote decodes a string literal. Double quotation marks are removed, and
// escape sequences are replaced with the bytes they denote.
//
// Unquote reports an error if the quotation marks are missing or if src
// ends in an incomplete escape sequence.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
