// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/urfave/cli/v2"

	"go.kvon.dev/kvon"
)

// checkInput validates one document. Syntax errors are reported to the
// app's stdout as file:line:column: message and make ok false; a non-nil
// error means the input could not be read.
func checkInput(cCtx *cli.Context, name string) (ok bool, err error) {
	data, err := readInput(cCtx, name)
	if err != nil {
		return false, err
	}
	_, err = kvon.Parse(string(data))
	if err == nil {
		return true, nil
	}

	var perr *kvon.ParserError
	if !errors.As(err, &perr) {
		return false, err
	}
	fmt.Fprintf(cCtx.App.Writer, "%s:%d:%d: %s\n",
		displayName(name), perr.Mark.Line, perr.Mark.Column+1, perr.Message())
	return false, nil
}

// watchAndCheck re-checks each file whenever it changes, until the app's
// context is cancelled.
func watchAndCheck(cCtx *cli.Context, names []string) error {
	for _, name := range names {
		if name == "-" {
			return errors.New("--watch needs file arguments")
		}
	}

	logger := log.New(cCtx.App.ErrWriter, "kvon: ", log.LstdFlags)
	w, err := newFileWatcher(names)
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Printf("watching %d file(s)", len(names))
	return w.Run(cCtx.Context, func(name string, err error) {
		if err != nil {
			logger.Printf("watch error: %v", err)
			return
		}
		ok, err := checkInput(cCtx, name)
		switch {
		case err != nil:
			logger.Printf("%s: %v", name, err)
		case ok:
			logger.Printf("%s: ok", name)
		}
	})
}
