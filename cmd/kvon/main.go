// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary formats, validates and converts KVON documents. Input is read
// from the named files, or from stdin when no file or "-" is given.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/urfave/cli/v2"

	"go.kvon.dev/kvon"
)

// version is the current version of the kvon CLI tool.
const version = "0.1.0"

// errCheckFailed is returned when at least one checked document is invalid.
// The problems themselves have already been reported.
var errCheckFailed = errors.New("check failed")

func main() {
	log.SetFlags(0)
	log.SetPrefix("kvon: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newApp(os.Stdin, os.Stdout, os.Stderr).RunContext(ctx, os.Args)
	if errors.Is(err, errCheckFailed) {
		stop()
		os.Exit(1)
	}
	if err != nil {
		stop()
		log.Fatal(err)
	}
}

// newApp builds the command tree around the given standard streams.
func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "kvon",
		Usage:     "format, validate and convert KVON documents",
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"C"},
				Usage:   "load encoding options from a KVON `FILE`",
				EnvVars: []string{"KVON_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			fmtCommand(),
			checkCommand(),
			convertCommand(),
		},
		// Errors are reported by main so tests can run the app in-process.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func indentFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "indent",
		Aliases: []string{"i"},
		Usage:   "indent with `STYLE`: tabs or a number of spaces",
	}
}

// encodeOptions merges the config file, if any, with the --indent flag.
func encodeOptions(cCtx *cli.Context) ([]kvon.Option, error) {
	var opts []kvon.Option
	if path := cCtx.String("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		opt, err := kvon.OptsKVON(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		opts = append(opts, opt)
	}
	if cCtx.IsSet("indent") {
		opt, err := parseIndent(cCtx.String("indent"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

func parseIndent(s string) (kvon.Option, error) {
	if s == "tabs" {
		return kvon.WithTabs(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid indent %q: want tabs or a positive number", s)
	}
	return kvon.WithSpaces(n), nil
}

// inputNames returns the file arguments, or stdin.
func inputNames(cCtx *cli.Context) []string {
	if cCtx.NArg() == 0 {
		return []string{"-"}
	}
	return cCtx.Args().Slice()
}

func fmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "re-encode documents in canonical form",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			indentFlag(),
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "write the result back to each file instead of stdout",
			},
		},
		Action: func(cCtx *cli.Context) error {
			opts, err := encodeOptions(cCtx)
			if err != nil {
				return err
			}
			write := cCtx.Bool("write")
			for _, name := range inputNames(cCtx) {
				if write && name == "-" {
					return errors.New("--write needs file arguments")
				}
				data, err := readInput(cCtx, name)
				if err != nil {
					return err
				}
				v, err := kvon.Parse(string(data))
				if err != nil {
					return fmt.Errorf("%s: %w", displayName(name), err)
				}
				out, err := kvon.Marshal(v, opts...)
				if err != nil {
					return err
				}
				if write {
					if err := writeOutput(name, out); err != nil {
						return err
					}
					continue
				}
				if _, err := cCtx.App.Writer.Write(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "validate documents and report the first error in each",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "re-check files whenever they change",
			},
		},
		Action: func(cCtx *cli.Context) error {
			names := inputNames(cCtx)
			failed := false
			for _, name := range names {
				ok, err := checkInput(cCtx, name)
				if err != nil {
					return err
				}
				failed = failed || !ok
			}

			if cCtx.Bool("watch") {
				return watchAndCheck(cCtx, names)
			}
			if failed {
				return errCheckFailed
			}
			return nil
		},
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert between KVON, JSON, JSONC, YAML and TOML",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "from",
				Aliases: []string{"f"},
				Usage:   "input `FORMAT`: kvon, json, jsonc, yaml or toml (default: from the file extension, else kvon)",
			},
			&cli.StringFlag{
				Name:    "to",
				Aliases: []string{"t"},
				Usage:   "output `FORMAT`: kvon, json, yaml or toml",
				Value:   "json",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "indent JSON output",
			},
			indentFlag(),
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() > 1 {
				return errors.New("convert takes at most one file")
			}
			name := inputNames(cCtx)[0]

			from := cCtx.String("from")
			if from == "" {
				from = formatFromName(name)
			}
			data, err := readInput(cCtx, name)
			if err != nil {
				return err
			}
			v, err := decodeAs(from, data)
			if err != nil {
				return fmt.Errorf("%s: %w", displayName(name), err)
			}

			opts, err := encodeOptions(cCtx)
			if err != nil {
				return err
			}
			out, err := encodeAs(cCtx.String("to"), v, cCtx.Bool("pretty"), opts)
			if err != nil {
				return err
			}
			_, err = cCtx.App.Writer.Write(out)
			return err
		},
	}
}
