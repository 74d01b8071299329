// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package kvon implements KVON, an indentation-based key/value notation,
// for the Go language.
//
// A KVON document is an object. Nesting is expressed through indentation
// alone, using one tab or a fixed run of spaces per level:
//
//	name: 'kvon'
//	tags: [1 2 3]
//	servers:--
//		- host: 'a'
//		-
//			host: 'b'
//			port: 8080
//	motd: |
//		Welcome.
//		It's a text block.
//
// This file contains:
// - Type and constant re-exports from internal/libkvon
// - The core Parse/Encode entry points
// - Classic APIs (Unmarshal, Marshal, Decoder, Encoder)

package kvon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.kvon.dev/kvon/internal/libkvon"
)

//-----------------------------------------------------------------------------
// Re-exports
//-----------------------------------------------------------------------------

type (
	// Value is a KVON document node.
	Value = libkvon.Value

	// Kind identifies which shape a Value holds.
	Kind = libkvon.Kind

	// Indention is a document's indentation style: Tabs or Spaces(n).
	Indention = libkvon.Indention

	// ParserError reports the position and kind of a decoding failure.
	ParserError = libkvon.ParserError

	// Mark is a position in the source document.
	Mark = libkvon.Mark

	// ErrorKind classifies a ParserError. Test for one with errors.Is.
	ErrorKind = libkvon.ErrorKind
)

const (
	NoneKind   = libkvon.NoneKind
	NumberKind = libkvon.NumberKind
	TextKind   = libkvon.TextKind
	BoolKind   = libkvon.BoolKind
	ArrayKind  = libkvon.ArrayKind
	ObjectKind = libkvon.ObjectKind
)

const (
	UnexpectedCharacter       = libkvon.UnexpectedCharacter
	UnclosedString            = libkvon.UnclosedString
	Expected                  = libkvon.Expected
	InconsistentIndention     = libkvon.InconsistentIndention
	InvalidIndention          = libkvon.InvalidIndention
	MultipleTabIndent         = libkvon.MultipleTabIndent
	MixedTabsAndSpaces        = libkvon.MixedTabsAndSpaces
	SpacesNotMultipleOfIndent = libkvon.SpacesNotMultipleOfIndent
)

var (
	None   = libkvon.None
	Number = libkvon.Number
	Text   = libkvon.Text
	Bool   = libkvon.Bool
	Array  = libkvon.Array
	Object = libkvon.Object
	Tabs   = libkvon.Tabs
	Spaces = libkvon.Spaces
)

// Marshaler is implemented by types that produce their own KVON value.
type Marshaler interface {
	MarshalKVON() (Value, error)
}

// Unmarshaler is implemented by types that decode themselves from a KVON
// value.
type Unmarshaler interface {
	UnmarshalKVON(Value) error
}

//-----------------------------------------------------------------------------
// Core entry points
//-----------------------------------------------------------------------------

// Parse decodes a complete KVON document into its root object.
func Parse(text string) (Value, error) {
	return libkvon.Parse(text)
}

// Encode renders v as KVON text indented with style. Only objects form a
// document that Parse reads back; other values render as a single value.
func Encode(v Value, style Indention) string {
	return libkvon.Encode(v, style)
}

//-----------------------------------------------------------------------------
// Classic APIs
//-----------------------------------------------------------------------------

// Unmarshal decodes the KVON document in data and stores the result in the
// value pointed to by out.
//
// A *Value receives the tree as is and a *any receives plain Go values
// (see Value.Interface). Anything else is populated through mapstructure,
// matching struct fields by their `kvon` tag:
//
//	type T struct {
//		F int    `kvon:"a,omitempty"`
//		B string
//	}
//	var t T
//	kvon.Unmarshal([]byte("a: 1\nB: 'x'"), &t)
func Unmarshal(data []byte, out any, opts ...Option) error {
	o, err := applyOptions(opts...)
	if err != nil {
		return err
	}
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	return o.assign(v, out)
}

// Marshal serializes in as a KVON document. in must convert to an object
// (a struct, a map with string keys, an object Value or a Marshaler
// producing one). The output ends with a newline unless it is empty.
func Marshal(in any, opts ...Option) ([]byte, error) {
	o, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return o.marshal(in)
}

func (o options) marshal(in any) ([]byte, error) {
	v, err := o.valueOf(in)
	if err != nil {
		return nil, err
	}
	if v.Kind != ObjectKind {
		return nil, fmt.Errorf("kvon: cannot marshal %s as a document, want object", v.Kind)
	}
	if err := checkKeys(v); err != nil {
		return nil, fmt.Errorf("kvon: %w", err)
	}
	text := Encode(v, o.indention)
	if text == "" {
		return nil, nil
	}
	return []byte(text + "\n"), nil
}

// A Decoder reads and decodes a KVON document from an input stream.
type Decoder struct {
	r    *bufio.Reader
	opts []Option
	done bool
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: bufio.NewReader(r), opts: opts}
}

// Decode reads the document from its input and stores it in the value
// pointed to by out. A stream holds exactly one document, so any further
// call returns io.EOF.
func (dec *Decoder) Decode(out any) error {
	if dec.done {
		return io.EOF
	}
	dec.done = true

	o, err := applyOptions(dec.opts...)
	if err != nil {
		return err
	}
	p := libkvon.NewParser()
	for {
		line, err := dec.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if len(line) > 0 || err == nil {
			if ferr := p.Feed(strings.TrimSuffix(line, "\n")); ferr != nil {
				return ferr
			}
		}
		if err != nil {
			break
		}
	}
	v, err := p.Finish()
	if err != nil {
		return err
	}
	return o.assign(v, out)
}

// An Encoder writes KVON documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the KVON encoding of v to the stream.
func (e *Encoder) Encode(v any) error {
	out, err := Marshal(v, e.opts...)
	if err != nil {
		return err
	}
	_, err = e.w.Write(out)
	return err
}
