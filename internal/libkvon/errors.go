// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Error types for KVON parsing.
// Every parser error is fatal and carries the line/column where it occurred.

package libkvon

import (
	"fmt"
)

// ErrorKind classifies a parser failure. It implements error so callers can
// test for a kind with errors.Is.
type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota + 1
	UnclosedString
	Expected
	InconsistentIndention
	InvalidIndention
	MultipleTabIndent
	MixedTabsAndSpaces
	SpacesNotMultipleOfIndent
)

var kindMessages = map[ErrorKind]string{
	UnexpectedCharacter:       "unexpected character",
	UnclosedString:            "unclosed string",
	Expected:                  "expected token",
	InconsistentIndention:     "inconsistent indention",
	InvalidIndention:          "invalid indention",
	MultipleTabIndent:         "first indented line uses more than one tab",
	MixedTabsAndSpaces:        "mixed tabs and spaces in indention",
	SpacesNotMultipleOfIndent: "spaces are not a multiple of the indention width",
}

func (k ErrorKind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) Error() string {
	return "kvon: " + k.String()
}

// Mark is a position in the source document.
type Mark struct {
	Line   int // The position line (1-indexed).
	Column int // The position column (0-indexed internally, displayed as 1-indexed).
}

func (m Mark) String() string {
	if m.Line == 0 {
		return "<unknown position>"
	}
	return fmt.Sprintf("line %d, column %d", m.Line, m.Column+1)
}

// ParserError reports the first grammar or indentation violation found.
type ParserError struct {
	Mark Mark
	Text string // The raw source line.
	Kind ErrorKind

	// Token is set for Expected.
	Token string
	// Want and Got are set for InconsistentIndention.
	Want, Got Indention
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("kvon: %s: %s", e.Mark, e.Message())
}

// Message describes the failure without its position.
func (e *ParserError) Message() string {
	switch e.Kind {
	case Expected:
		return fmt.Sprintf("%s %q", e.Kind.String(), e.Token)
	case InconsistentIndention:
		return fmt.Sprintf("%s: expected %s, found %s", e.Kind.String(), e.Want, e.Got)
	}
	return e.Kind.String()
}

func (e *ParserError) Unwrap() error {
	return e.Kind
}
