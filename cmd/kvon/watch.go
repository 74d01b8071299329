// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// fileWatcher reports changes to a fixed set of files. It watches their
// directories rather than the files themselves so that atomic
// replacement (write to temp, rename) is seen as well.
type fileWatcher struct {
	w     *fsnotify.Watcher
	files map[string]string // cleaned path -> name as given
}

func newFileWatcher(names []string) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	fw := &fileWatcher{w: w, files: make(map[string]string)}
	dirs := make(map[string]bool)
	for _, name := range names {
		fw.files[filepath.Clean(name)] = name
		dir := filepath.Dir(name)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to watch directory %q: %w", dir, err)
		}
		dirs[dir] = true
	}
	return fw, nil
}

// Run calls notify for each write, create or rename of a watched file,
// and for each watcher error, until ctx is done or the watcher is closed.
func (fw *fileWatcher) Run(ctx context.Context, notify func(name string, err error)) error {
	for {
		select {
		case event, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			name, watched := fw.files[filepath.Clean(event.Name)]
			if !watched {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				notify(name, nil)
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			notify("", err)
		case <-ctx.Done():
			return nil
		}
	}
}

func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}
