// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Build targets held on the parser's context stack.
// A frame is opened at the depth its content lines live at. Popping a
// frame hands its finished Value to the frame below; no frame refers to
// its children.

package libkvon

import (
	"errors"
	"strings"
)

var errTextParent = errors.New("kvon: multi-line string cannot hold nested values")

// frame is one of *objectFrame, *arrayFrame or *textFrame.
type frame interface {
	depth() int
	finish() Value
}

type objectFrame struct {
	indent  int
	entries map[string]Value
	pending string
}

func newObjectFrame(indent int, pending string) *objectFrame {
	return &objectFrame{indent: indent, entries: map[string]Value{}, pending: pending}
}

func (f *objectFrame) depth() int { return f.indent }

func (f *objectFrame) finish() Value { return Object(f.entries) }

func (f *objectFrame) setPending(key string) { f.pending = key }

// attach stores v under the pending key.
func (f *objectFrame) attach(v Value) {
	f.entries[f.pending] = v
	f.pending = ""
}

func (f *objectFrame) put(key string, v Value) {
	f.entries[key] = v
	f.pending = ""
}

type arrayFrame struct {
	indent int
	items  []Value
}

func newArrayFrame(indent int) *arrayFrame {
	return &arrayFrame{indent: indent, items: []Value{}}
}

func (f *arrayFrame) depth() int { return f.indent }

func (f *arrayFrame) finish() Value { return Array(f.items...) }

func (f *arrayFrame) push(v Value) { f.items = append(f.items, v) }

type textFrame struct {
	indent int
	lines  []string
}

func newTextFrame(indent int) *textFrame {
	return &textFrame{indent: indent}
}

func (f *textFrame) depth() int { return f.indent }

func (f *textFrame) finish() Value { return Text(strings.Join(f.lines, "\n")) }

func (f *textFrame) push(line string) { f.lines = append(f.lines, line) }

// stack is the parser's context stack. The root object frame at depth 0 is
// never popped.
type stack []frame

func (s stack) top() frame { return s[len(s)-1] }

func (s *stack) push(f ...frame) { *s = append(*s, f...) }

// pop removes the top frame and folds its value into the new top.
func (s *stack) pop() error {
	old := *s
	f := old[len(old)-1]
	*s = old[:len(old)-1]
	return s.fold(f.finish())
}

// fold hands v to the top frame.
func (s stack) fold(v Value) error {
	switch t := s.top().(type) {
	case *objectFrame:
		t.attach(v)
	case *arrayFrame:
		t.push(v)
	case *textFrame:
		return errTextParent
	}
	return nil
}

// collapse pops frames while the top is deeper than depth.
func (s *stack) collapse(depth int) error {
	for len(*s) > 1 && s.top().depth() > depth {
		if err := s.pop(); err != nil {
			return err
		}
	}
	return nil
}
