// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// KVON emitter.
// Values are first classified into an encoded tree that records whether
// each node fits on one line, then written out as indented lines.

package libkvon

import (
	"strconv"
	"strings"
)

type encodedKind int

const (
	inlineNode encodedKind = iota
	textBlockNode
	objectNode
	inlineArrayNode
	blockArrayNode
)

type encodedEntry struct {
	key   string
	value *encoded
}

type encoded struct {
	kind    encodedKind
	text    string   // inlineNode
	lines   []string // textBlockNode
	entries []encodedEntry
	items   []*encoded
}

// inline reports whether the node can sit on the same line as its key or
// bullet and inside an inline array.
func (n *encoded) inline() bool {
	return n.kind == inlineNode || n.kind == inlineArrayNode
}

func classify(v Value) *encoded {
	switch v.Kind {
	case NumberKind:
		return &encoded{kind: inlineNode, text: formatNumber(v.Number)}
	case BoolKind:
		return &encoded{kind: inlineNode, text: strconv.FormatBool(v.Bool)}
	case TextKind:
		if needsTextBlock(v.Text) {
			return &encoded{kind: textBlockNode, lines: textLines(v.Text)}
		}
		return &encoded{kind: inlineNode, text: "'" + v.Text + "'"}
	case ArrayKind:
		n := &encoded{kind: inlineArrayNode, items: make([]*encoded, len(v.Array))}
		for i, item := range v.Array {
			n.items[i] = classify(item)
			if !n.items[i].inline() {
				n.kind = blockArrayNode
			}
		}
		return n
	case ObjectKind:
		n := &encoded{kind: objectNode}
		for _, k := range v.SortedKeys() {
			n.entries = append(n.entries, encodedEntry{key: k, value: classify(v.Object[k])})
		}
		return n
	}
	return &encoded{kind: inlineNode, text: "null"}
}

// needsTextBlock reports whether s cannot be written as a quoted literal.
// The empty string is included: '' opens a two-quote delimiter that never
// closes. A carriage return ending a block line is dropped when read
// back, so "\r\n" line breaks come back as "\n".
func needsTextBlock(s string) bool {
	return s == "" || strings.ContainsAny(s, "'\"\n")
}

func textLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Emitter writes encoded values as KVON lines.
type Emitter struct {
	unit  string
	lines []string
}

// NewEmitter returns an emitter indenting with style.
func NewEmitter(style Indention) *Emitter {
	return &Emitter{unit: style.Unit()}
}

// Emit renders v. Objects produce one line per entry; any other value
// starts on the first line.
func (e *Emitter) Emit(v Value) string {
	e.lines = []string{""}
	e.emit(classify(v), 0)

	lines := e.lines
	if len(lines) > 1 && lines[0] == "" {
		lines = lines[1:]
	}
	e.lines = nil
	return strings.Join(lines, "\n")
}

// Encode renders v with style. Keys must not contain line breaks and
// numbers must be finite; other trees have no KVON form and are written
// as text the parser reads differently or rejects.
func Encode(v Value, style Indention) string {
	return NewEmitter(style).Emit(v)
}

// write appends s to the current line.
func (e *Emitter) write(s string) {
	e.lines[len(e.lines)-1] += s
}

func (e *Emitter) newLine(indent int) {
	e.lines = append(e.lines, strings.Repeat(e.unit, indent))
}

func (e *Emitter) emit(n *encoded, indent int) {
	switch n.kind {
	case inlineNode:
		e.write(n.text)

	case textBlockNode:
		e.write("|")
		for _, line := range n.lines {
			e.newLine(indent)
			e.write(line)
		}

	case objectNode:
		for _, entry := range n.entries {
			e.newLine(indent)
			e.write(quoteKey(entry.key))
			switch entry.value.kind {
			case blockArrayNode, objectNode:
				e.write(":")
			default:
				e.write(": ")
			}
			e.emit(entry.value, indent+1)
		}

	case inlineArrayNode:
		e.write("[")
		for i, item := range n.items {
			if i > 0 {
				e.write(" ")
			}
			e.emit(item, indent)
		}
		e.write("]")

	case blockArrayNode:
		e.write("--")
		for _, item := range n.items {
			e.newLine(indent)
			switch item.kind {
			case blockArrayNode:
				// Written as its own "--" line.
			case objectNode:
				e.write("-")
			default:
				e.write("- ")
			}
			e.emit(item, indent+1)
		}
	}
}

// quoteKey returns key as a bareword when it reads back unchanged,
// otherwise as a quoted literal whose delimiter does not occur in key.
func quoteKey(key string) string {
	if !strings.ContainsAny(key, keyStops) && !strings.HasPrefix(key, "'") && !strings.HasPrefix(key, "\"") {
		return key
	}
	for _, q := range []string{"'", "\""} {
		if !strings.Contains(key, q) {
			return q + key + q
		}
	}
	for _, q := range []string{"'", "\""} {
		if strings.HasPrefix(key, q) || strings.HasSuffix(key, q) {
			continue
		}
		delim := strings.Repeat(q, longestRun(key, q[0])+1)
		return delim + key + delim
	}
	return "'" + key + "'"
}

func longestRun(s string, b byte) int {
	best, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}
