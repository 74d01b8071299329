// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Indent Comparison encodes one document with tabs and with
// several space widths.

package main

import (
	"fmt"
	"os"
	"strconv"

	"go.kvon.dev/kvon"
)

type Config struct {
	Name     string            `kvon:"name"`
	Version  string            `kvon:"version"`
	Server   ServerConfig      `kvon:"server"`
	Tags     []string          `kvon:"tags"`
	Metadata map[string]string `kvon:"metadata"`
	Motd     string            `kvon:"motd"`
}

type ServerConfig struct {
	Host  string `kvon:"host"`
	Port  int    `kvon:"port"`
	Debug bool   `kvon:"debug"`
}

func main() {
	cfg := Config{
		Name:    "myapp",
		Version: "1.0.0",
		Server: ServerConfig{
			Host:  "localhost",
			Port:  8080,
			Debug: true,
		},
		Tags: []string{"web", "api", "production"},
		Metadata: map[string]string{
			"owner": "platform-team",
			"env":   "prod",
		},
		Motd: "Welcome!\nIt's a multi-line string.",
	}

	// Check if a space count was provided as command-line argument
	if len(os.Args) > 1 {
		spaces, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid indent value %q (must be a number)\n", os.Args[1])
			os.Exit(1)
		}

		out, err := kvon.Marshal(&cfg, kvon.WithSpaces(spaces))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Example: Encoder with %d-space indent\n\n", spaces)
		fmt.Print(string(out))
		return
	}

	styles := []struct {
		label string
		opt   kvon.Option
	}{
		{"tabs", kvon.Default},
		{"2 spaces", kvon.Compact},
		{"4 spaces", kvon.WithSpaces(4)},
	}
	for _, style := range styles {
		out, err := kvon.Marshal(&cfg, style.opt)
		if err != nil {
			panic(err)
		}
		fmt.Printf("=== %s ===\n%s\n", style.label, out)
	}
}
