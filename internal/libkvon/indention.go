// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Indentation styles and the document-wide detection rules.

package libkvon

import (
	"strconv"
	"strings"
)

// Indention is a document's indentation convention: one tab per level, or
// a fixed number of spaces per level. The zero value is Tabs.
type Indention struct {
	spaces int
}

// Tabs returns the one-tab-per-level style.
func Tabs() Indention { return Indention{} }

// Spaces returns the n-spaces-per-level style. Widths below one are
// treated as Tabs.
func Spaces(n int) Indention {
	if n < 1 {
		return Indention{}
	}
	return Indention{spaces: n}
}

// IsTabs reports whether i is the Tabs style.
func (i Indention) IsTabs() bool { return i.spaces == 0 }

// IsSpaces reports whether i is a Spaces style.
func (i Indention) IsSpaces() bool { return i.spaces > 0 }

// Width is the number of spaces in one indent unit, or 0 for Tabs.
func (i Indention) Width() int { return i.spaces }

// Unit is the text of a single indent level.
func (i Indention) Unit() string {
	if i.IsTabs() {
		return "\t"
	}
	return strings.Repeat(" ", i.spaces)
}

func (i Indention) String() string {
	if i.IsTabs() {
		return "tabs"
	}
	return "spaces(" + strconv.Itoa(i.spaces) + ")"
}

// indentState tracks the style established by the first indented line.
type indentState struct {
	style Indention
	set   bool
}

// depth resolves a line's leading whitespace tallies into an indent level,
// establishing the document style on the first indented line.
func (s *indentState) depth(c *cursor, tabs, spaces int) (int, error) {
	if tabs == 0 && spaces == 0 {
		return 0, nil
	}
	if tabs > 0 && spaces > 0 {
		return 0, c.fail(MixedTabsAndSpaces)
	}

	if !s.set {
		if spaces > 0 {
			s.style, s.set = Spaces(spaces), true
			return 1, nil
		}
		if tabs > 1 {
			return 0, c.fail(MultipleTabIndent)
		}
		s.style, s.set = Tabs(), true
		return 1, nil
	}

	if s.style.IsTabs() {
		if spaces > 0 {
			return 0, c.inconsistent(s.style, Spaces(spaces))
		}
		return tabs, nil
	}

	if tabs > 0 {
		return 0, c.inconsistent(s.style, Tabs())
	}
	if spaces%s.style.spaces != 0 {
		return 0, c.fail(SpacesNotMultipleOfIndent)
	}
	return spaces / s.style.spaces, nil
}
