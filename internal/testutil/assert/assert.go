// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package assert provides assertion functions for the internal tests.
//
// It keeps the internal packages free of a testing framework dependency.
package assert

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
)

type miniTB interface {
	Helper()
	Fatalf(string, ...any)
}

// equaler is satisfied by the KVON value tree.
type equaler[T any] interface {
	Equal(T) bool
}

func formatSuffix(msgFormat string, args ...any) string {
	if msgFormat == "" {
		return ""
	}
	return " - " + fmt.Sprintf(msgFormat, args...)
}

// Equal asserts that two comparable values are equal.
func Equal(tb miniTB, want, got any) {
	tb.Helper()
	Equalf(tb, want, got, "")
}

// Equalf asserts that two comparable values are equal, and reports a message if they are not.
func Equalf(tb miniTB, want, got any, msgFormat string, args ...any) {
	tb.Helper()
	if got != want {
		tb.Fatalf("got %v; want %v%s", got, want, formatSuffix(msgFormat, args...))
	}
}

// DeepEqual asserts that two values are deeply equal.
func DeepEqual(tb miniTB, want, got any) {
	tb.Helper()
	if !reflect.DeepEqual(got, want) {
		tb.Fatalf("got %+v; want %+v", got, want)
	}
}

// Same asserts that two values report themselves equal through their
// Equal method. Use it for value trees whose maps make DeepEqual noisy.
func Same[T equaler[T]](tb miniTB, want, got T) {
	tb.Helper()
	Samef(tb, want, got, "")
}

// Samef is Same with a message.
func Samef[T equaler[T]](tb miniTB, want, got T, msgFormat string, args ...any) {
	tb.Helper()
	if !want.Equal(got) {
		tb.Fatalf("got %v; want %v%s", got, want, formatSuffix(msgFormat, args...))
	}
}

// ErrorMatches asserts that an error matches a regular expression.
func ErrorMatches(tb miniTB, pattern string, err error) {
	tb.Helper()
	if err == nil {
		tb.Fatalf("got nil; want error matching %q", pattern)
		return
	}
	re, reErr := regexp.Compile(pattern)
	if reErr != nil {
		tb.Fatalf("invalid regexp %q: %v", pattern, reErr)
		return
	}
	if !re.MatchString(err.Error()) {
		tb.Fatalf("error %q does not match %q", err.Error(), pattern)
	}
}

// ErrorIs asserts that errors.Is(got, want) holds.
func ErrorIs(tb miniTB, got, want error) {
	tb.Helper()
	if !errors.Is(got, want) {
		tb.Fatalf("got %v; want error wrapping %v", got, want)
	}
}

// ErrorAs asserts that an error can be assigned to target by errors.As.
func ErrorAs(tb miniTB, err error, target any) {
	tb.Helper()
	if errors.As(err, target) {
		return
	}
	tb.Fatalf("got %#v; want %s", err, reflect.TypeOf(target).Elem())
}

// NoError asserts that an error is nil.
func NoError(tb miniTB, err error) {
	tb.Helper()
	NoErrorf(tb, err, "")
}

// NoErrorf asserts that an error is nil, and reports a message if it is not.
func NoErrorf(tb miniTB, err error, msgFormat string, args ...any) {
	tb.Helper()
	if err != nil {
		tb.Fatalf("unexpected error: %v%s", err, formatSuffix(msgFormat, args...))
	}
}

// True asserts that a value is true.
func True(tb miniTB, got bool) {
	tb.Helper()
	Truef(tb, got, "")
}

// Truef asserts that a value is true, and reports a message if it is not.
func Truef(tb miniTB, got bool, msgFormat string, args ...any) {
	tb.Helper()
	if !got {
		tb.Fatalf("got false; want true%s", formatSuffix(msgFormat, args...))
	}
}

// False asserts that a value is false.
func False(tb miniTB, got bool) {
	tb.Helper()
	if got {
		tb.Fatalf("got true; want false")
	}
}
