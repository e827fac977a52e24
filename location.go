// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jaque

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 0-based
	Column int // byte offset of column in line, 0-based
}

// String renders lc as "line:col" with a 1-based line number, for use in
// one-line messages.
func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line+1, lc.Column) }

// offsetOf returns the absolute byte offset in src of the given line and
// column. Lines past the end of src are clamped to the final line.
func offsetOf(src string, line, col int) int {
	pos := 0
	for line > 0 {
		i := indexNewline(src, pos)
		if i < 0 {
			break
		}
		pos = i + 1
		line--
	}
	return pos + col
}

// indexNewline returns the offset in src of the first newline at or after pos,
// or -1 if there is none.
func indexNewline(src string, pos int) int {
	i := mem.IndexByte(mem.S(src[pos:]), '\n')
	if i < 0 {
		return -1
	}
	return pos + i
}
