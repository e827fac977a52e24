// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jaque

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from a source text held in memory. Each call
// to Next returns the next token of the input, or reports an error.
type Scanner struct {
	src string

	pos       int // offset of the next unread byte
	line, col int // apparent location of the next unread byte (0-based)
	tpos      int // start offset of the current token
}

// NewScanner constructs a new lexical scanner that consumes src.
func NewScanner(src string) *Scanner { return &Scanner{src: src} }

// Next returns the next token of the input. When the input is exhausted, Next
// returns an EOF token positioned at the end of the input, and will continue
// to do so on subsequent calls. If the input is malformed, Next reports an
// error of concrete type *SyntaxError.
func (s *Scanner) Next() (Token, error) {
	s.skipSpace()
	s.tpos = s.pos
	line, col := s.line, s.col
	if s.pos >= len(s.src) {
		return EOFToken().at(line, col), nil
	}

	switch ch := s.src[s.pos]; {
	case ch == '"':
		return s.scanString(line, col)
	case isNumStart(ch):
		return s.scanNumber(line, col)
	case isPunct(ch):
		s.advance()
		return CharToken(ch).at(line, col), nil
	default:
		return s.scanWord(line, col)
	}
}

// Span returns the location span of the most recent token.
func (s *Scanner) Span() Span { return Span{Pos: s.tpos, End: s.pos} }

// scanString scans a string literal. The contents run to the next double
// quotation mark, and no escape sequences are recognized.
func (s *Scanner) scanString(line, col int) (Token, error) {
	body := s.pos + 1
	i := mem.IndexByte(mem.S(s.src[body:]), '"')
	if i < 0 {
		s.skipTo(len(s.src))
		return Token{}, NewUnexpectedToken(s.src, EOFToken().at(s.line, s.col), CharToken('"').String())
	}
	text := s.src[body : body+i]
	s.skipTo(body + i + 1)
	return StringToken(text).at(line, col), nil
}

// scanNumber scans an integer or decimal literal with an optional leading
// sign. The byte that ends the literal is not consumed.
func (s *Scanner) scanNumber(line, col int) (Token, error) {
	start := s.pos
	if s.src[s.pos] == '-' {
		s.advance()
	}

	var isFloat bool
	var nd int
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		if ch == '.' {
			if isFloat {
				return Token{}, NewUnexpectedToken(s.src, CharToken('.').at(s.line, s.col), Int.String())
			}
			isFloat = true
		} else if isDigit(ch) {
			nd++
		} else {
			break
		}
		s.advance()
	}
	if nd == 0 {
		return Token{}, NewUnexpectedToken(s.src, s.peekToken(), Int.String())
	}

	text := s.src[start:s.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, NewUnrecognizedToken(s.src, text, line, col)
		}
		return FloatToken(f).at(line, col), nil
	}
	z, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, NewUnrecognizedToken(s.src, text, line, col)
	}
	return IntToken(z).at(line, col), nil
}

var keywords = [...]mem.RO{mem.S("true"), mem.S("false"), mem.S("null")}

// scanWord scans a keyword. Only the letters of the keywords are gathered, so
// a word ends at the first byte that could not occur in any keyword.
func (s *Scanner) scanWord(line, col int) (Token, error) {
	start := s.pos
	for s.pos < len(s.src) && isWordByte(s.src[s.pos]) {
		s.advance()
	}
	got := mem.S(s.src[start:s.pos])
	for _, kw := range keywords {
		if got.Equal(kw) {
			return WordToken(got.StringCopy()).at(line, col), nil
		}
	}
	if got.Len() == 0 {
		// Nothing matched at all; report the offending character itself.
		_, n := utf8.DecodeRuneInString(s.src[start:])
		return Token{}, NewUnrecognizedToken(s.src, s.src[start:start+n], line, col)
	}
	return Token{}, NewUnrecognizedToken(s.src, got.StringCopy(), line, col)
}

// peekToken returns a token describing the next unread byte, without
// consuming it: EOF at the end of input, otherwise a Char token.
func (s *Scanner) peekToken() Token {
	if s.pos >= len(s.src) {
		return EOFToken().at(s.line, s.col)
	}
	return CharToken(s.src[s.pos]).at(s.line, s.col)
}

func (s *Scanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.advance()
	}
}

// advance consumes one byte of input, updating the line and column.
func (s *Scanner) advance() {
	if s.src[s.pos] == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	s.pos++
}

func (s *Scanner) skipTo(end int) {
	for s.pos < end {
		s.advance()
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\f' || ch == '\t' || ch == '\n'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isPunct(ch byte) bool    { return strings.IndexByte("{}[]:,", ch) >= 0 }
func isWordByte(ch byte) bool { return strings.IndexByte("truefalsn", ch) >= 0 }
