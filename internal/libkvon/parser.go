// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Line-driven KVON parser.
// Lines are consumed strictly in order. Each line's indentation picks the
// context it belongs to; the context's kind picks the grammar for the
// rest of the line.

package libkvon

import "strings"

// Parser holds the state carried from line to line: the established
// indentation style, the current line number and the context stack.
type Parser struct {
	indent indentState
	line   int
	stack  stack
}

// NewParser returns a parser positioned before the first line.
func NewParser() *Parser {
	p := &Parser{}
	p.Reset()
	return p
}

// Reset discards all state so the parser can read a new document.
func (p *Parser) Reset() {
	p.indent = indentState{}
	p.line = 0
	p.stack = stack{newObjectFrame(0, "")}
}

// Style returns the established indentation style, if any.
func (p *Parser) Style() (Indention, bool) {
	return p.indent.style, p.indent.set
}

// Line returns the number of lines fed so far.
func (p *Parser) Line() int {
	return p.line
}

// Depth returns the depth of the innermost open context.
func (p *Parser) Depth() int {
	return p.stack.top().depth()
}

// Feed parses the next line. A trailing carriage return is ignored.
func (p *Parser) Feed(line string) error {
	p.line++
	c := newCursor(p.line, strings.TrimSuffix(line, "\r"))
	return p.processLine(c)
}

// Finish collapses every open context and returns the root object.
func (p *Parser) Finish() (Value, error) {
	if err := p.stack.collapse(0); err != nil {
		return Value{}, err
	}
	return p.stack.top().finish(), nil
}

// Parse decodes a complete document.
func Parse(text string) (Value, error) {
	p := NewParser()
	for _, line := range strings.Split(text, "\n") {
		if err := p.Feed(line); err != nil {
			return Value{}, err
		}
	}
	return p.Finish()
}

func (p *Parser) processLine(c *cursor) error {
	if taken, err := p.textLine(c); err != nil || taken {
		return err
	}

	if c.atEndOrComment() {
		return nil
	}

	tabs, spaces := c.countWhitespace()
	depth, err := p.indent.depth(c, tabs, spaces)
	if err != nil {
		return err
	}
	if depth > p.stack.top().depth() {
		return c.fail(InvalidIndention)
	}
	if err := p.stack.collapse(depth); err != nil {
		return err
	}

	switch top := p.stack.top().(type) {
	case *objectFrame:
		err = p.objectLine(c, top, depth)
	case *arrayFrame:
		err = p.arrayLine(c, top, depth)
	case *textFrame:
		// Unreachable: textLine either took the line or popped the block.
		err = errTextParent
	}
	if err != nil {
		return err
	}
	return c.expectEnd()
}

// textLine appends the line to an open multi-line string if it carries
// the block's indentation. Otherwise the block is closed and the line is
// left for the regular grammar.
func (p *Parser) textLine(c *cursor) (bool, error) {
	block, ok := p.stack.top().(*textFrame)
	if !ok {
		return false, nil
	}

	if p.indent.set {
		if !c.indentions(p.indent.style, block.indent) {
			return false, p.stack.pop()
		}
	} else if c.have("\t") {
		p.indent.style, p.indent.set = Tabs(), true
	} else {
		tabs, spaces := c.countWhitespace()
		if tabs > 0 && spaces > 0 {
			return false, c.fail(MixedTabsAndSpaces)
		}
		if spaces == 0 {
			return false, p.stack.pop()
		}
		p.indent.style, p.indent.set = Spaces(spaces), true
	}

	block.push(c.consumeRest())
	return true, nil
}

// objectLine handles `key`, `key:`, `key:--` and `key: value`.
func (p *Parser) objectLine(c *cursor, obj *objectFrame, depth int) error {
	key, err := c.key()
	if err != nil {
		return err
	}
	c.skipWhitespace()

	if c.have(":--") {
		if err := c.expectEnd(); err != nil {
			return err
		}
		obj.setPending(key)
		p.stack.push(newArrayFrame(depth + 1))
		return nil
	}

	if c.have(":") {
		c.skipWhitespace()
		obj.setPending(key)
		if c.atEndOrComment() {
			p.stack.push(newObjectFrame(depth+1, ""))
			return nil
		}
		v, ok, err := c.value()
		switch {
		case err != nil:
			return err
		case ok:
			obj.attach(v)
		case c.have("|"):
			p.stack.push(newTextFrame(depth + 1))
		default:
			return c.fail(UnexpectedCharacter)
		}
		return nil
	}

	if err := c.expectEnd(); err != nil {
		return err
	}
	obj.put(key, None())
	return nil
}

// arrayLine handles `--`, `-`, `- key:`, `- key: value`, `- |` and flow
// sequences such as `- 1 2 [3 4]`.
func (p *Parser) arrayLine(c *cursor, arr *arrayFrame, depth int) error {
	if c.have("--") {
		if err := c.expectEnd(); err != nil {
			return err
		}
		p.stack.push(newArrayFrame(depth + 1))
		return nil
	}

	if !c.have("-") {
		return c.expected("-")
	}
	c.skipWhitespace()

	if c.atEndOrComment() {
		p.stack.push(newObjectFrame(depth+1, ""))
		return nil
	}

	key, ok, err := c.keyWithColon()
	if err != nil {
		return err
	}
	if ok {
		return p.singleKeyElement(c, arr, key, depth)
	}

	if c.have("|") {
		p.stack.push(newTextFrame(depth + 1))
		return nil
	}

	for {
		c.skipWhitespace()
		if c.atEndOrComment() {
			return nil
		}
		v, ok, err := c.value()
		if err != nil {
			return err
		}
		if !ok {
			return c.fail(UnexpectedCharacter)
		}
		arr.push(v)
	}
}

// singleKeyElement handles an array element written as `- key: ...`.
func (p *Parser) singleKeyElement(c *cursor, arr *arrayFrame, key string, depth int) error {
	c.skipWhitespace()
	if c.atEndOrComment() {
		p.stack.push(newObjectFrame(depth+1, key), newObjectFrame(depth+1, ""))
		return nil
	}

	v, ok, err := c.value()
	switch {
	case err != nil:
		return err
	case ok:
		arr.push(Object(map[string]Value{key: v}))
	case c.have("|"):
		p.stack.push(newObjectFrame(depth+1, key), newTextFrame(depth+1))
	default:
		return c.fail(UnexpectedCharacter)
	}
	return nil
}
