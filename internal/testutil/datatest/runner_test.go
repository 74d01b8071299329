// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

package datatest

import (
	"os"
	"path/filepath"
	"testing"

	"go.kvon.dev/kvon/internal/testutil/assert"
)

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	src := `
- decode: {name: one, n: 1}
- decode: {name: two, n: 2}
- encode: {name: three, n: 3}
`
	assert.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	var ran []string
	sum := 0
	count := func(t *testing.T, tc map[string]any) {
		var c struct {
			Type string `yaml:"type"`
			Name string `yaml:"name"`
			N    int    `yaml:"n"`
		}
		Decode(t, tc, &c)
		ran = append(ran, c.Type+"/"+c.Name)
		sum += c.N
	}
	RunFile(t, path, map[string]TestHandler{"decode": count, "encode": count})

	assert.DeepEqual(t, []string{"decode/one", "decode/two", "encode/three"}, ran)
	assert.Equal(t, 6, sum)
}
