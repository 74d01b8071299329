// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

package datatest

import (
	"testing"
)

// TestHandler is a function that runs a single test case.
type TestHandler func(t *testing.T, tc map[string]any)

// RunFile loads filename and runs every case through the handler
// registered for its type.
func RunFile(t *testing.T, filename string, handlers map[string]TestHandler) {
	t.Helper()

	cases, err := LoadTestCasesFromFile(filename)
	if err != nil {
		t.Fatalf("Failed to load test cases: %v", err)
	}
	if len(cases) == 0 {
		t.Fatalf("No test cases in %s", filename)
	}

	for _, tc := range cases {
		name, _ := tc["name"].(string)
		if name == "" {
			name = "unnamed"
		}
		testType, _ := tc["type"].(string)
		handler, ok := handlers[testType]
		if !ok {
			t.Fatalf("Test case %q has unknown type %q", name, testType)
		}
		t.Run(name, func(t *testing.T) {
			handler(t, tc)
		})
	}
}

// Decode unmarshals tc into target, failing the test on error.
func Decode(t *testing.T, tc map[string]any, target any) {
	t.Helper()
	if err := UnmarshalTestCase(tc, target); err != nil {
		t.Fatalf("Malformed test case: %v", err)
	}
}
