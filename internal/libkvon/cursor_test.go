// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libkvon

import (
	"testing"

	"go.kvon.dev/kvon/internal/testutil/assert"
)

func TestCursorNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
		rest string
	}{
		{"1.1 abc", 1.1, true, " abc"},
		{"42", 42, true, ""},
		{"-7]", -7, true, "]"},
		{".5", 0.5, true, ""},
		{"-.25", -0.25, true, ""},
		{"1.", 1, true, "."},
		{"-", 0, false, "-"},
		{".", 0, false, "."},
		{"true", 0, false, "true"},
		{"", 0, false, ""},
	}
	for _, tt := range tests {
		c := newCursor(1, tt.in)
		got, ok := c.number()
		assert.Equalf(t, tt.ok, ok, "input %q", tt.in)
		assert.Equalf(t, tt.want, got, "input %q", tt.in)
		assert.Equalf(t, tt.rest, c.rest(), "input %q", tt.in)
	}
}

func TestCursorStringLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
		rest string
	}{
		{`'abc' x`, "abc", " x"},
		{`"a'b"`, "a'b", ""},
		{`''it's''`, "it's", ""},
		{`"""say "hi" now"""!`, `say "hi" now`, "!"},
	}
	for _, tt := range tests {
		c := newCursor(1, tt.in)
		got, ok, err := c.stringLiteral()
		assert.NoErrorf(t, err, "input %q", tt.in)
		assert.Truef(t, ok, "input %q", tt.in)
		assert.Equalf(t, tt.want, got, "input %q", tt.in)
		assert.Equalf(t, tt.rest, c.rest(), "input %q", tt.in)
	}
}

func TestCursorUnclosedString(t *testing.T) {
	c := newCursor(3, "key: 'abc")
	c.advance(5)
	_, _, err := c.stringLiteral()
	assert.ErrorIs(t, err, UnclosedString)

	var perr *ParserError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Mark.Line)
	assert.Equal(t, 5, perr.Mark.Column)
	assert.Equal(t, "key: 'abc", perr.Text)
}

func TestCursorKey(t *testing.T) {
	tests := []struct {
		in, want, rest string
	}{
		{"name: 1", "name", ": 1"},
		{"a b", "a", " b"},
		{"x#y", "x", "#y"},
		{"x;y", "x", ";y"},
		{"'a b': 1", "a b", ": 1"},
		{"tail", "tail", ""},
	}
	for _, tt := range tests {
		c := newCursor(1, tt.in)
		got, err := c.key()
		assert.NoError(t, err)
		assert.Equalf(t, tt.want, got, "input %q", tt.in)
		assert.Equalf(t, tt.rest, c.rest(), "input %q", tt.in)
	}
}

func TestCursorKeyWithColonRollsBack(t *testing.T) {
	c := newCursor(1, "b  : 1")
	key, ok, err := c.keyWithColon()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", key)
	assert.Equal(t, " 1", c.rest())

	c = newCursor(1, "1 2 3")
	_, ok, err = c.keyWithColon()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "1 2 3", c.rest())
	assert.Equal(t, 0, len(c.marks))

	c = newCursor(1, ": x")
	_, ok, err = c.keyWithColon()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, ": x", c.rest())
}

func TestCursorPrimitive(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"null", None()},
		{"'t'", Text("t")},
		{"3", Number(3)},
	}
	for _, tt := range tests {
		c := newCursor(1, tt.in)
		got, ok, err := c.primitive()
		assert.NoError(t, err)
		assert.Truef(t, ok, "input %q", tt.in)
		assert.Samef(t, tt.want, got, "input %q", tt.in)
	}

	c := newCursor(1, "maybe")
	_, ok, err := c.primitive()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCursorInlineArray(t *testing.T) {
	c := newCursor(1, "[ 1 [true 'x'] [] null ] # tail")
	got, ok, err := c.inlineArray()
	assert.NoError(t, err)
	assert.True(t, ok)
	want := Array(Number(1), Array(Bool(true), Text("x")), Array(), None())
	assert.Same(t, want, got)
	assert.True(t, c.atEndOrComment())

	c = newCursor(1, "[1 oops]")
	_, _, err = c.inlineArray()
	assert.ErrorIs(t, err, UnexpectedCharacter)
	var perr *ParserError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Mark.Column)

	c = newCursor(1, "[1 2")
	_, _, err = c.inlineArray()
	assert.ErrorIs(t, err, UnexpectedCharacter)
}

func TestCursorIndentions(t *testing.T) {
	c := newCursor(1, "\t\tx")
	assert.True(t, c.indentions(Tabs(), 2))
	assert.Equal(t, "x", c.rest())

	c = newCursor(1, "\t x")
	assert.False(t, c.indentions(Tabs(), 2))
	assert.Equal(t, "\t x", c.rest())

	c = newCursor(1, "      x")
	assert.True(t, c.indentions(Spaces(2), 3))
	assert.Equal(t, "x", c.rest())

	c = newCursor(1, "   x")
	assert.False(t, c.indentions(Spaces(2), 2))
	assert.Equal(t, "   x", c.rest())

	c = newCursor(1, "  \tx")
	assert.False(t, c.indentions(Spaces(4), 1))
}

func TestCursorWhitespace(t *testing.T) {
	c := newCursor(1, "\t\t  x")
	tabs, spaces := c.countWhitespace()
	assert.Equal(t, 2, tabs)
	assert.Equal(t, 2, spaces)
	assert.Equal(t, "x", c.rest())

	assert.True(t, newCursor(1, "   ").atEndOrComment())
	assert.True(t, newCursor(1, "  # note").atEndOrComment())
	assert.False(t, newCursor(1, "  a # note").atEndOrComment())
}
