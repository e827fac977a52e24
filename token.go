// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jaque

import (
	"strconv"

	"github.com/creachadair/jaque/internal/escape"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	EOF                 // end of input
	String              // quoted string
	Int                 // number with no fraction
	Float               // number with a fraction
	Word                // constant: true, false, null
	Char                // punctuation: { } [ ] : ,
)

var kindStr = [...]string{
	Invalid: "invalid token",
	EOF:     "end of input",
	String:  "string",
	Int:     "integer",
	Float:   "float",
	Word:    "word",
	Char:    "punctuation",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single classified lexical unit of the input, together with its
// position in the source text.
//
// The payload is stored in Text for String, Word, and Char tokens, in Int for
// Int tokens, and in Float for Float tokens.
type Token struct {
	Kind  Kind
	Text  string
	Int   int64
	Float float64

	Line int // 0-based line of the first byte of the token
	Col  int // 0-based byte offset of the token within its line
}

// StringToken returns a String token with the given contents.
func StringToken(s string) Token { return Token{Kind: String, Text: s} }

// IntToken returns an Int token with value z.
func IntToken(z int64) Token { return Token{Kind: Int, Int: z} }

// FloatToken returns a Float token with value f.
func FloatToken(f float64) Token { return Token{Kind: Float, Float: f} }

// WordToken returns a Word token for the keyword w.
func WordToken(w string) Token { return Token{Kind: Word, Text: w} }

// CharToken returns a Char token for the punctuation c.
func CharToken(c byte) Token { return Token{Kind: Char, Text: string(c)} }

// EOFToken returns an end-of-input token.
func EOFToken() Token { return Token{Kind: EOF} }

// at returns a copy of t positioned at the given line and column.
func (t Token) at(line, col int) Token { t.Line, t.Col = line, col; return t }

// Equal reports whether t and o have the same kind and payload.
// The positions of the tokens are not compared.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Int:
		return t.Int == o.Int
	case Float:
		return t.Float == o.Float
	case String, Word, Char:
		return t.Text == o.Text
	}
	return true
}

// IsChar reports whether t is the punctuation token c.
func (t Token) IsChar(c byte) bool { return t.Kind == Char && len(t.Text) == 1 && t.Text[0] == c }

// LineCol returns the location of the token.
func (t Token) LineCol() LineCol { return LineCol{Line: t.Line, Column: t.Col} }

// String returns the printable form of t used in diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case String:
		return "string " + escape.Quote(t.Text)
	case Int:
		return "integer " + strconv.FormatInt(t.Int, 10)
	case Float:
		return "float " + strconv.FormatFloat(t.Float, 'g', -1, 64)
	case Word:
		return "word " + t.Text
	case Char:
		return strconv.Quote(t.Text)
	}
	return t.Kind.String()
}
