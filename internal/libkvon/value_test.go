// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libkvon

import (
	"errors"
	"reflect"
	"testing"

	"go.kvon.dev/kvon/internal/testutil/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "none", NoneKind.String())
	assert.Equal(t, "boolean", BoolKind.String())
	assert.Equal(t, "object", ObjectKind.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestValueEqual(t *testing.T) {
	a := obj("x", Array(Number(1), Text("a")), "y", None())
	b := obj("y", None(), "x", Array(Number(1), Text("a")))
	assert.True(t, a.Equal(b))

	assert.False(t, Number(0).Equal(Bool(false)))
	assert.False(t, Array(Number(1), Number(2)).Equal(Array(Number(2), Number(1))))
	assert.False(t, obj("x", Number(1)).Equal(obj("y", Number(1))))
	assert.False(t, obj("x", Number(1)).Equal(obj("x", Number(1), "z", None())))
	assert.True(t, Array().Equal(Array()))
	assert.True(t, Object(nil).Equal(Object(map[string]Value{})))
}

func TestValueInterface(t *testing.T) {
	v := obj("a", Array(Number(1.5), Bool(true), None()), "b", Text("x"))
	want := map[string]any{
		"a": []any{1.5, true, nil},
		"b": "x",
	}
	assert.True(t, reflect.DeepEqual(want, v.Interface()))
}

func TestValueString(t *testing.T) {
	v := obj("b", Text("v"), "a", Array(Number(1), Number(-2.25), Array()))
	assert.Equal(t, `{a:[1 -2.25 []] b:"v"}`, v.String())
	assert.Equal(t, "null", None().String())
}

func TestIsScalar(t *testing.T) {
	assert.True(t, Text("").IsScalar())
	assert.True(t, None().IsScalar())
	assert.False(t, Array().IsScalar())
	assert.False(t, Object(nil).IsScalar())
}

func TestIndention(t *testing.T) {
	assert.True(t, Tabs().IsTabs())
	assert.False(t, Tabs().IsSpaces())
	assert.True(t, Spaces(2).IsSpaces())
	assert.False(t, Spaces(2).IsTabs())
	assert.Equal(t, Tabs(), Spaces(0))

	assert.Equal(t, "\t", Tabs().Unit())
	assert.Equal(t, "   ", Spaces(3).Unit())
	assert.Equal(t, 3, Spaces(3).Width())
	assert.Equal(t, "tabs", Tabs().String())
	assert.Equal(t, "spaces(4)", Spaces(4).String())
}

func TestParserErrorMessage(t *testing.T) {
	err := &ParserError{
		Mark: Mark{Line: 3, Column: 4},
		Kind: InconsistentIndention,
		Want: Tabs(),
		Got:  Spaces(2),
	}
	assert.Equal(t, "inconsistent indention: expected tabs, found spaces(2)", err.Message())
	assert.Equal(t, "kvon: line 3, column 5: inconsistent indention: expected tabs, found spaces(2)", err.Error())
	assert.True(t, errors.Is(err, InconsistentIndention))
	assert.False(t, errors.Is(err, InvalidIndention))

	assert.Equal(t, "kvon: unclosed string", UnclosedString.Error())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
	assert.Equal(t, "<unknown position>", Mark{}.String())
}
