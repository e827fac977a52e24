// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jaque/ast"
	"github.com/creachadair/jaque/ast/cursor"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestCursor(t *testing.T) {
	v := ast.MustDecode(testJSON)
	root := v.(ast.Object)

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{"o", "p"}, root.Find("o").Value, true},
		{"BadElement", []any{2.5}, v, true},

		{"ArrayPos", []any{"list", 1}, ast.Object{ast.Field("x", ast.Int(2))}, false},
		{"ArrayNeg", []any{"list", -1}, ast.Object{ast.Field("x", ast.Int(2))}, false},
		{"ArrayRange", []any{"o", 25}, root.Find("o").Value, true},
		{"ObjPath", []any{"xyz", "d"}, ast.Bool(true), false},
		{"ObjIndex", []any{"y", 0}, ast.String("there"), false},
		{"Deep", []any{"list", 0, "x"}, ast.Int(1), false},

		{"FuncArray", []any{"o", testPathFunc}, ast.Int(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, ast.Int(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, ast.Bool(true), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Fatalf("Down %+v: got no error, want one", tc.path)
			}
			if diff := cmp.Diff(c.Value(), tc.want); diff != "" {
				t.Errorf("Down %+v: wrong result (-got, +want):\n%s", tc.path, diff)
			}
		})
	}
}

func TestCursorMoves(t *testing.T) {
	v := ast.MustDecode(testJSON)
	c := cursor.New(v)
	if !c.AtOrigin() {
		t.Error("New cursor is not at its origin")
	}
	c.Down("list", 0, "x")
	if got := len(c.Path()); got != 4 {
		t.Errorf("Path length: got %d, want 4", got)
	}
	if diff := cmp.Diff(c.Up().Value(), ast.Object{ast.Field("x", ast.Int(1))}); diff != "" {
		t.Errorf("Up: wrong result (-got, +want):\n%s", diff)
	}
	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Errorf("Reset: at origin %v, err %v", c.AtOrigin(), c.Err())
	}
	if diff := cmp.Diff(c.Origin(), v); diff != "" {
		t.Errorf("Origin: (-got, +want):\n%s", diff)
	}
}

func TestPath(t *testing.T) {
	v := ast.MustDecode(testJSON)

	s, err := cursor.Path[ast.String](v, "y", "hello")
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	} else if s != "there" {
		t.Errorf("Path: got %q, want %q", s, "there")
	}

	if _, err := cursor.Path[ast.Int](v, "y", "hello"); err == nil {
		t.Error("Path with wrong type: got no error")
	}
	if _, err := cursor.Path[ast.Int](v, "nonesuch"); err == nil {
		t.Error("Path with missing key: got no error")
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		input string
		want  []any
	}{
		{"", nil},
		{"a", []any{"a"}},
		{"friends.0.name", []any{"friends", 0, "name"}},
		{"list.-1", []any{"list", -1}},
		{"a..b", []any{"a", "", "b"}},
	}
	for _, tc := range tests {
		got := cursor.ParsePath(tc.input)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParsePath(%q): (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func testPathFunc(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case ast.Array:
		return ast.Int(len(t)), nil
	case ast.Object:
		return ast.Int(len(t)), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}
