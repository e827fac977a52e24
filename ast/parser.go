// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"io"

	"github.com/creachadair/jaque"
)

// Decode parses text as a single JSON document and returns its value. The
// document must be an object or an array, and nothing but whitespace may
// follow it. In case of error, no value is returned and the error has
// concrete type *jaque.SyntaxError.
func Decode(text string) (Value, error) {
	p := &parser{src: text, s: jaque.NewScanner(text)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	v, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != jaque.EOF {
		return nil, jaque.NewUnexpectedToken(text, p.tok, jaque.EOF.String())
	}
	return v, nil
}

// DecodeReader reads the complete contents of r and decodes them as for
// Decode. An error reading r is returned unchanged.
func DecodeReader(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(string(data))
}

// MustDecode decodes text as for Decode, but panics if decoding fails.
func MustDecode(text string) Value {
	v, err := Decode(text)
	if err != nil {
		panic(err)
	}
	return v
}

// A parser is a recursive-descent parser over the tokens of a single
// document. It keeps exactly one token of lookahead.
type parser struct {
	src string
	s   *jaque.Scanner
	tok jaque.Token // the current, not yet consumed, token
}

// advance replaces the current token with the next one from the scanner.
func (p *parser) advance() error {
	tok, err := p.s.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// checkChar reports whether the current token is the punctuation c.
func (p *parser) checkChar(c byte) bool { return p.tok.IsChar(c) }

// expectChar consumes the current token, which must be the punctuation c.
func (p *parser) expectChar(c byte) error {
	if !p.tok.IsChar(c) {
		return jaque.NewUnexpectedToken(p.src, p.tok, jaque.CharToken(c).String())
	}
	return p.advance()
}

// parseBody parses the root of a document.
func (p *parser) parseBody() (Value, error) {
	if p.checkChar('{') {
		return p.parseObject()
	} else if p.checkChar('[') {
		return p.parseArray()
	}
	return nil, jaque.NewUnexpectedToken(p.src, p.tok, `"{" or "["`)
}

// parseValue consumes a single value of any type.
func (p *parser) parseValue() (Value, error) {
	var v Value
	switch tok := p.tok; tok.Kind {
	case jaque.Char:
		if tok.IsChar('{') {
			return p.parseObject()
		} else if tok.IsChar('[') {
			return p.parseArray()
		}
	case jaque.String:
		v = String(tok.Text)
	case jaque.Int:
		v = Int(tok.Int)
	case jaque.Float:
		v = Float(tok.Float)
	case jaque.Word:
		switch tok.Text {
		case "true":
			v = Bool(true)
		case "false":
			v = Bool(false)
		case "null":
			v = Null{}
		}
	}
	if v == nil {
		return nil, jaque.NewUnexpectedValue(p.src, p.tok)
	}
	return v, p.advance()
}

// parseObject consumes an object and its members.
// Precondition: the current token is "{".
func (p *parser) parseObject() (Value, error) {
	if err := p.expectChar('{'); err != nil {
		return nil, err
	}
	obj := Object{}
	if p.checkChar('}') {
		return obj, p.advance()
	}

	// A repeated key replaces the value of the earlier member in place.
	index := make(map[string]int)
	for {
		key := p.tok
		if key.Kind != jaque.String {
			return nil, jaque.NewUnexpectedToken(p.src, key, jaque.String.String())
		} else if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if i, ok := index[key.Text]; ok {
			obj[i].Value = val
		} else {
			index[key.Text] = len(obj)
			obj = append(obj, Field(key.Text, val))
		}

		if !p.checkChar(',') {
			break
		} else if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.expectChar('}'); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseArray consumes an array and its elements.
// Precondition: the current token is "[".
func (p *parser) parseArray() (Value, error) {
	if err := p.expectChar('['); err != nil {
		return nil, err
	}
	arr := Array{}
	if p.checkChar(']') {
		return arr, p.advance()
	}
	for {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		if !p.checkChar(',') {
			break
		} else if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(']'); err != nil {
		return nil, err
	}
	return arr, nil
}
