// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/jaque/ast"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2.5
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
    "d": null,
    "q": false
  }
}`

func TestObject(t *testing.T) {
	obj := ast.MustDecode(testJSON).(ast.Object)

	if got := obj.Len(); got != 4 {
		t.Errorf("Len: got %d, want 4", got)
	}
	if diff := cmp.Diff([]string{"list", "y", "o", "xyz"}, obj.Keys()); diff != "" {
		t.Errorf("Keys: (-want, +got)\n%s", diff)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf("Find(nonesuch): got %+v, want nil", m)
	}
	m := obj.Find("o")
	if m == nil {
		t.Fatal(`Key "o" not found`)
	}
	if arr, ok := m.Value.(ast.Array); !ok {
		t.Errorf("Member value is %T, not array", m.Value)
	} else if arr.Len() != 2 {
		t.Errorf("Array length: got %d, want 2", arr.Len())
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, "null"},
		{ast.Bool(false), "bool"},
		{ast.Int(15), "int"},
		{ast.Float(-0.00239), "float"},
		{ast.String("a b"), "string"},
		{ast.Array{}, "array"},
		{ast.Object{}, "object"},
		{nil, "invalid"},
	}
	for _, tc := range tests {
		if got := ast.Kind(tc.input); got != tc.want {
			t.Errorf("Kind(%+v): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestInterface(t *testing.T) {
	got := ast.Interface(ast.MustDecode(testJSON))
	want := map[string]any{
		"list": []any{
			map[string]any{"x": int64(1)},
			map[string]any{"x": 2.5},
		},
		"y": map[string]any{"hello": "there"},
		"o": []any{"hi", "yourself"},
		"xyz": map[string]any{
			"p": true,
			"d": nil,
			"q": false,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Interface: (-want, +got)\n%s", diff)
	}
}
