// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Single-line tokenizer.
// A cursor reads one source line left to right. Productions that need
// lookahead save the position with mark and either commit or restore it.

package libkvon

import (
	"strconv"
	"strings"
)

// keyStops ends a bareword key.
const keyStops = " \t:#;"

type cursor struct {
	line  int // 1-indexed source line.
	text  string
	pos   int
	marks []int
}

func newCursor(line int, text string) *cursor {
	return &cursor{line: line, text: text}
}

func (c *cursor) rest() string {
	return c.text[c.pos:]
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.text)
}

func (c *cursor) see(s string) bool {
	return strings.HasPrefix(c.rest(), s)
}

// have consumes s if the remaining text starts with it.
func (c *cursor) have(s string) bool {
	if !c.see(s) {
		return false
	}
	c.pos += len(s)
	return true
}

func (c *cursor) advance(n int) {
	c.pos += n
	if c.pos > len(c.text) {
		c.pos = len(c.text)
	}
}

// consumeRest returns the remaining text verbatim and moves to the end.
func (c *cursor) consumeRest() string {
	s := c.rest()
	c.pos = len(c.text)
	return s
}

// countWhitespace consumes the leading run of tabs and spaces.
func (c *cursor) countWhitespace() (tabs, spaces int) {
	for !c.atEnd() {
		switch c.text[c.pos] {
		case '\t':
			tabs++
		case ' ':
			spaces++
		default:
			return tabs, spaces
		}
		c.pos++
	}
	return tabs, spaces
}

func (c *cursor) skipWhitespace() {
	c.countWhitespace()
}

// atEndOrComment reports whether only whitespace, or a comment, remains.
func (c *cursor) atEndOrComment() bool {
	left := strings.TrimLeft(c.rest(), " \t")
	return left == "" || left[0] == '#'
}

// expectEnd fails with UnexpectedCharacter at the first non-blank
// character unless only whitespace or a comment remains.
func (c *cursor) expectEnd() error {
	c.skipWhitespace()
	if c.atEndOrComment() {
		return nil
	}
	return c.fail(UnexpectedCharacter)
}

func (c *cursor) mark() {
	c.marks = append(c.marks, c.pos)
}

// restore rolls back to the last mark.
func (c *cursor) restore() {
	n := len(c.marks) - 1
	c.pos = c.marks[n]
	c.marks = c.marks[:n]
}

// commit drops the last mark, keeping the current position.
func (c *cursor) commit() {
	c.marks = c.marks[:len(c.marks)-1]
}

func (c *cursor) failAt(col int, kind ErrorKind) *ParserError {
	return &ParserError{
		Mark: Mark{Line: c.line, Column: col},
		Text: c.text,
		Kind: kind,
	}
}

func (c *cursor) fail(kind ErrorKind) *ParserError {
	return c.failAt(c.pos, kind)
}

func (c *cursor) expected(token string) *ParserError {
	err := c.fail(Expected)
	err.Token = token
	return err
}

func (c *cursor) inconsistent(want, got Indention) *ParserError {
	err := c.fail(InconsistentIndention)
	err.Want, err.Got = want, got
	return err
}

// stringLiteral parses a quoted literal. The opening run of identical quote
// characters is also the closing delimiter. ok is false when no quote is
// present.
func (c *cursor) stringLiteral() (s string, ok bool, err error) {
	if c.atEnd() {
		return "", false, nil
	}
	q := c.text[c.pos]
	if q != '\'' && q != '"' {
		return "", false, nil
	}
	start := c.pos
	for !c.atEnd() && c.text[c.pos] == q {
		c.pos++
	}
	delim := c.text[start:c.pos]
	end := strings.Index(c.rest(), delim)
	if end < 0 {
		return "", false, c.failAt(start, UnclosedString)
	}
	s = c.text[c.pos : c.pos+end]
	c.advance(end + len(delim))
	return s, true, nil
}

// key parses a quoted literal or a bareword running up to keyStops.
func (c *cursor) key() (string, error) {
	s, ok, err := c.stringLiteral()
	if err != nil || ok {
		return s, err
	}
	n := strings.IndexAny(c.rest(), keyStops)
	if n < 0 {
		n = len(c.rest())
	}
	s = c.text[c.pos : c.pos+n]
	c.advance(n)
	return s, nil
}

// keyWithColon parses `key WS* :`. On any mismatch the position is
// restored and ok is false; an empty key counts as a mismatch.
func (c *cursor) keyWithColon() (key string, ok bool, err error) {
	c.mark()
	key, err = c.key()
	if err != nil {
		c.restore()
		return "", false, err
	}
	c.skipWhitespace()
	if key == "" || !c.have(":") {
		c.restore()
		return "", false, nil
	}
	c.commit()
	return key, true, nil
}

// number probes for `-?[0-9]*(\.[0-9]+)?`. Nothing is consumed unless a
// float was read.
func (c *cursor) number() (float64, bool) {
	rest := c.rest()
	i := 0
	if i < len(rest) && rest[i] == '-' {
		i++
	}
	digits := 0
	for i < len(rest) && isDigit(rest[i]) {
		i++
		digits++
	}
	if i+1 < len(rest) && rest[i] == '.' && isDigit(rest[i+1]) {
		i++
		for i < len(rest) && isDigit(rest[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(rest[:i], 64)
	if err != nil {
		return 0, false
	}
	c.advance(i)
	return f, true
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// primitive parses a quoted literal, number, true, false or null.
func (c *cursor) primitive() (Value, bool, error) {
	if s, ok, err := c.stringLiteral(); err != nil {
		return Value{}, false, err
	} else if ok {
		return Text(s), true, nil
	}
	if f, ok := c.number(); ok {
		return Number(f), true, nil
	}
	switch {
	case c.have("true"):
		return Bool(true), true, nil
	case c.have("false"):
		return Bool(false), true, nil
	case c.have("null"):
		return None(), true, nil
	}
	return Value{}, false, nil
}

// inlineArray parses `[ item* ]` where items are primitives or nested
// inline arrays separated by whitespace.
func (c *cursor) inlineArray() (Value, bool, error) {
	if !c.have("[") {
		return Value{}, false, nil
	}
	items := []Value{}
	for {
		c.skipWhitespace()
		if c.have("]") {
			return Array(items...), true, nil
		}
		if v, ok, err := c.inlineArray(); err != nil {
			return Value{}, false, err
		} else if ok {
			items = append(items, v)
			continue
		}
		v, ok, err := c.primitive()
		if err != nil {
			return Value{}, false, err
		}
		if !ok {
			return Value{}, false, c.fail(UnexpectedCharacter)
		}
		items = append(items, v)
	}
}

// value parses an inline array or a primitive.
func (c *cursor) value() (Value, bool, error) {
	if v, ok, err := c.inlineArray(); err != nil || ok {
		return v, ok, err
	}
	return c.primitive()
}

// indentions consumes exactly depth units of style, or nothing.
func (c *cursor) indentions(style Indention, depth int) bool {
	unit := style.Unit()
	c.mark()
	for i := 0; i < depth; i++ {
		if !c.have(unit) {
			c.restore()
			return false
		}
	}
	c.commit()
	return true
}
