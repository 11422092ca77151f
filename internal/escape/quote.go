// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

// controlEsc maps the control bytes that have a letter escape to that letter.
var controlEsc = [...]byte{
	0:    '0',
	'\a': 'a',
	'\b': 'b',
	'\t': 't',
	'\n': 'n',
	'\v': 'v',
	'\f': 'f',
	'\r': 'r',
}

// Quote encodes src for inclusion in a string literal. Quotation marks and
// backslashes are escaped, as are the control bytes that have a letter
// escape. All other bytes, including other control bytes and non-ASCII
// bytes, are copied verbatim. The enclosing quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		switch {
		case b == '"' || b == '\\':
			buf = append(buf, '\\', b)
		case int(b) < len(controlEsc) && controlEsc[b] != 0:
			buf = append(buf, '\\', controlEsc[b])
		default:
			buf = append(buf, b)
		}
	}
	return buf
}
