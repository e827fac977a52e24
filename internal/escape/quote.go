// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape renders token payloads in a printable quoted form.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote returns src enclosed in double quotation marks, with quotes,
// backslashes, control characters, and invalid UTF-8 bytes escaped so that
// the result is safe to show on a single line of a diagnostic.
func Quote(src string) string {
	in := mem.S(src)
	buf := make([]byte, 0, in.Len()+2)
	buf = append(buf, '"')
	for in.Len() != 0 {
		r, n := mem.DecodeRune(in)
		switch {
		case r == utf8.RuneError && n <= 1:
			b := in.At(0)
			buf = append(buf, '\\', 'x', hexDigit[b>>4], hexDigit[b&15])
			n = 1
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		case r == '\\' || r == '"':
			buf = append(buf, '\\', byte(r))
		default:
			buf = utf8.AppendRune(buf, r)
		}
		in = in.SliceFrom(n)
	}
	buf = append(buf, '"')
	return string(buf)
}
