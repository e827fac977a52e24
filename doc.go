// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jaque implements the lexical layer of a small JSON decoder, and
// the diagnostics it reports for malformed input.
//
// # Scanning
//
// The Scanner type splits a source text into tokens. Construct a scanner from
// the complete input and call its Next method to pull one token at a time:
//
//	s := jaque.NewScanner(input)
//	for {
//	   tok, err := s.Next()
//	   if err != nil {
//	      log.Fatalf("Scanning failed: %v", err)
//	   } else if tok.Kind == jaque.EOF {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// The scanner recognizes a deliberately small dialect of JSON:
//
//   - Strings run from a double quote to the next double quote. Escape
//     sequences are not interpreted, so a string cannot contain a quote.
//   - Numbers are an optional "-", digits, and at most one ".". Exponents are
//     not supported.
//   - The only words are true, false, and null.
//
// # Diagnostics
//
// Errors from the scanner and from the parser in package ast have concrete
// type *SyntaxError. The Error method of a SyntaxError renders a description
// followed by an excerpt of the source with a caret under the offending
// character:
//
//	unexpected token: ".", expected: integer
//
//	[1.2.3]
//	    ^
//
// Callers that want structured handling can use errors.As and inspect the
// Kind and Location of the error instead.
//
// To decode a complete document into a value tree, see package ast.
package jaque
