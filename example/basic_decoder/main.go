// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Basic Decoder demonstrates simple KVON decoding into structs.

package main

import (
	"fmt"
	"strings"

	"go.kvon.dev/kvon"
)

type Config struct {
	Name    string   `kvon:"name"`
	Version float64  `kvon:"version"`
	Tags    []string `kvon:"tags"`
	Servers []struct {
		Host string `kvon:"host"`
		Port int    `kvon:"port"`
	} `kvon:"servers"`
}

func main() {
	fmt.Println("Example 1: Basic Decoder - Single Document")

	kvonData := `name: 'myapp'
version: 1.5
tags: ['web' 'api']
servers:--
	- host: 'localhost'
	-
		host: 'example.org'
		port: 8443
`

	var cfg Config
	dec := kvon.NewDecoder(strings.NewReader(kvonData))
	if err := dec.Decode(&cfg); err != nil {
		panic(err)
	}

	fmt.Printf("Loaded: %+v\n", cfg)
}
