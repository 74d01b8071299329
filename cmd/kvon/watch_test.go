// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.kvon.dev/kvon/internal/testutil/assert"
)

func TestFileWatcher(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "doc.kvon")
	other := filepath.Join(dir, "other.kvon")
	assert.NoError(t, os.WriteFile(watched, []byte("a: 1\n"), 0o644))

	w, err := newFileWatcher([]string{watched})
	assert.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(name string, err error) {
			if err == nil {
				changed <- name
			}
		})
	}()

	assert.NoError(t, os.WriteFile(other, []byte("b: 1\n"), 0o644))
	assert.NoError(t, os.WriteFile(watched, []byte("a: 2\n"), 0o644))

	select {
	case name := <-changed:
		assert.Equal(t, watched, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestFileWatcherMissingDir(t *testing.T) {
	_, err := newFileWatcher([]string{filepath.Join(t.TempDir(), "missing", "doc.kvon")})
	assert.ErrorMatches(t, "failed to watch directory", err)
}
