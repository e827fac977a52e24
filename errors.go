// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jaque

import (
	"fmt"
	"strings"

	"github.com/creachadair/jaque/internal/escape"
)

// ErrorKind classifies a SyntaxError.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	// UnexpectedToken means a concrete token was found where a different
	// token was required. Premature end of input is reported as an EOF token.
	UnexpectedToken ErrorKind = iota + 1

	// UnrecognizedToken means a bareword was not one of true, false, null.
	UnrecognizedToken

	// UnexpectedValue means a token in value position has no value mapping.
	UnexpectedValue
)

var errorKindStr = [...]string{
	UnexpectedToken:   "unexpected token",
	UnrecognizedToken: "unrecognized token",
	UnexpectedValue:   "unexpected value",
}

func (k ErrorKind) String() string {
	if k == 0 || int(k) >= len(errorKindStr) {
		return "unknown error"
	}
	return errorKindStr[k]
}

// contextWidth is the number of bytes of source shown on either side of the
// offending byte in a rendered diagnostic.
const contextWidth = 20

// A SyntaxError reports a failure to decode the input. Its Error method
// renders a description of the problem together with an excerpt of the
// source text and a caret marking the offending position:
//
//	unexpected token: "]", expected: string
//
//	{"a": 1,]
//	        ^
type SyntaxError struct {
	Kind     ErrorKind
	Found    Token   // the offending token (UnexpectedToken, UnexpectedValue)
	Want     string  // printable form of what was expected (UnexpectedToken)
	Word     string  // the unrecognized text (UnrecognizedToken)
	Location LineCol // where the error occurred

	src string
}

// NewUnexpectedToken reports that found occurred in src where want was
// required. The error is located at found.
func NewUnexpectedToken(src string, found Token, want string) *SyntaxError {
	return &SyntaxError{Kind: UnexpectedToken, Found: found, Want: want, Location: found.LineCol(), src: src}
}

// NewUnrecognizedToken reports that word, beginning at line and col of src,
// is not a recognized keyword.
func NewUnrecognizedToken(src, word string, line, col int) *SyntaxError {
	return &SyntaxError{
		Kind:     UnrecognizedToken,
		Word:     word,
		Location: LineCol{Line: line, Column: col},
		src:      src,
	}
}

// NewUnexpectedValue reports that found occurred in value position in src
// but does not denote a value.
func NewUnexpectedValue(src string, found Token) *SyntaxError {
	return &SyntaxError{Kind: UnexpectedValue, Found: found, Location: found.LineCol(), src: src}
}

// Description returns the one-line description of the error, without the
// source excerpt.
func (e *SyntaxError) Description() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token: %v, expected: %s", e.Found, e.Want)
	case UnrecognizedToken:
		return fmt.Sprintf("unrecognized token: %s", escape.Quote(e.Word))
	case UnexpectedValue:
		return fmt.Sprintf("unexpected value: %v", e.Found)
	}
	return e.Kind.String()
}

// Snippet returns the source excerpt and caret lines of the error.
func (e *SyntaxError) Snippet() string { return Render(e.src, e.Location.Line, e.Location.Column) }

// Error satisfies the error interface. The result is the description,
// a blank line, and the snippet.
func (e *SyntaxError) Error() string { return e.Description() + "\n\n" + e.Snippet() }

// Render returns an excerpt of src around the given 0-based line and column,
// followed by a line with a caret under the byte at that position. The
// excerpt includes at most 20 bytes either side of the position, verbatim.
// Both lines are terminated by a newline. The caret counts bytes, so it lines
// up with the offending byte only when the excerpt is a single line of ASCII.
func Render(src string, line, col int) string {
	i := min(max(offsetOf(src, line, col), 0), len(src))
	lo := max(i-contextWidth, 0)
	hi := min(i+contextWidth+1, len(src))

	var buf strings.Builder
	buf.WriteString(src[lo:hi])
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", i-lo))
	buf.WriteByte('^')
	buf.WriteString(strings.Repeat(" ", max(hi-1-i, 0)))
	buf.WriteByte('\n')
	return buf.String()
}
