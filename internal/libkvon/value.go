// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Value tree produced by the parser and consumed by the emitter.

package libkvon

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which shape a Value holds.
type Kind int

const (
	NoneKind Kind = iota
	NumberKind
	TextKind
	BoolKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case NoneKind:
		return "none"
	case NumberKind:
		return "number"
	case TextKind:
		return "text"
	case BoolKind:
		return "boolean"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a KVON document node. Only the field matching Kind is
// meaningful; a Value that populates more than one shape is malformed.
type Value struct {
	Kind   Kind
	Number float64
	Text   string
	Bool   bool
	Array  []Value
	Object map[string]Value
}

// None returns the null value.
func None() Value { return Value{Kind: NoneKind} }

// Number returns a number value. NaN and the infinities cannot be
// encoded.
func Number(f float64) Value { return Value{Kind: NumberKind, Number: f} }

// Text returns a text value.
func Text(s string) Value { return Value{Kind: TextKind, Text: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: BoolKind, Bool: b} }

// Array returns an array holding items in order.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: ArrayKind, Array: items}
}

// Object returns an object holding entries. A nil map becomes empty.
func Object(entries map[string]Value) Value {
	if entries == nil {
		entries = map[string]Value{}
	}
	return Value{Kind: ObjectKind, Object: entries}
}

// IsScalar reports whether v is none, number, text or boolean.
func (v Value) IsScalar() bool {
	return v.Kind != ArrayKind && v.Kind != ObjectKind
}

// Equal reports whether v and o are structurally equal. Object entry
// order is not significant; array order is.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case NoneKind:
		return true
	case NumberKind:
		return v.Number == o.Number
	case TextKind:
		return v.Text == o.Text
	case BoolKind:
		return v.Bool == o.Bool
	case ArrayKind:
		if len(v.Array) != len(o.Array) {
			return false
		}
		for i := range v.Array {
			if !v.Array[i].Equal(o.Array[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		if len(v.Object) != len(o.Object) {
			return false
		}
		for k, a := range v.Object {
			b, ok := o.Object[k]
			if !ok || !a.Equal(b) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts v to plain Go values: map[string]any, []any,
// float64, string, bool or nil.
func (v Value) Interface() any {
	switch v.Kind {
	case NumberKind:
		return v.Number
	case TextKind:
		return v.Text
	case BoolKind:
		return v.Bool
	case ArrayKind:
		out := make([]any, len(v.Array))
		for i, item := range v.Array {
			out[i] = item.Interface()
		}
		return out
	case ObjectKind:
		out := make(map[string]any, len(v.Object))
		for k, item := range v.Object {
			out[k] = item.Interface()
		}
		return out
	}
	return nil
}

// SortedKeys returns the object's keys in lexical order.
func (v Value) SortedKeys() []string {
	keys := make([]string, 0, len(v.Object))
	for k := range v.Object {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders v in a compact debugging form.
func (v Value) String() string {
	var b strings.Builder
	v.format(&b)
	return b.String()
}

func (v Value) format(b *strings.Builder) {
	switch v.Kind {
	case NoneKind:
		b.WriteString("null")
	case NumberKind:
		b.WriteString(formatNumber(v.Number))
	case TextKind:
		fmt.Fprintf(b, "%q", v.Text)
	case BoolKind:
		b.WriteString(strconv.FormatBool(v.Bool))
	case ArrayKind:
		b.WriteByte('[')
		for i, item := range v.Array {
			if i > 0 {
				b.WriteByte(' ')
			}
			item.format(b)
		}
		b.WriteByte(']')
	case ObjectKind:
		b.WriteByte('{')
		for i, k := range v.SortedKeys() {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "%s:", k)
			v.Object[k].format(b)
		}
		b.WriteByte('}')
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
