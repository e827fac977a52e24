// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/creachadair/jaque/ast"
)

var (
	compact  = jsoniter.ConfigCompatibleWithStandardLibrary
	indented = jsoniter.Config{
		EscapeHTML:    true,
		SortMapKeys:   true,
		IndentionStep: 2,
	}.Froze()
)

// writeValue writes v to w as JSON, followed by a newline. Object members are
// written in their decoded order.
func writeValue(w io.Writer, v ast.Value, indent bool) error {
	api := compact
	if indent {
		api = indented
	}
	stream := api.BorrowStream(w)
	defer api.ReturnStream(stream)

	writeTo(stream, v)
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}

func writeTo(stream *jsoniter.Stream, v ast.Value) {
	switch t := v.(type) {
	case ast.Null:
		stream.WriteNil()
	case ast.Bool:
		stream.WriteBool(bool(t))
	case ast.Int:
		stream.WriteInt64(int64(t))
	case ast.Float:
		// Keep a fraction so the value reads back as a float.
		s := strconv.FormatFloat(float64(t), 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		stream.WriteRaw(s)
	case ast.String:
		stream.WriteString(string(t))
	case ast.Array:
		if len(t) == 0 {
			stream.WriteEmptyArray()
			return
		}
		stream.WriteArrayStart()
		for i, elt := range t {
			if i > 0 {
				stream.WriteMore()
			}
			writeTo(stream, elt)
		}
		stream.WriteArrayEnd()
	case ast.Object:
		if len(t) == 0 {
			stream.WriteEmptyObject()
			return
		}
		stream.WriteObjectStart()
		for i, m := range t {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(m.Key)
			writeTo(stream, m.Value)
		}
		stream.WriteObjectEnd()
	}
}
