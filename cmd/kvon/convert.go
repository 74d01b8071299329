// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Conversion between KVON and the other configuration formats.

package main

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"go.kvon.dev/kvon"
)

// decodeAs parses data written in format into a KVON value.
func decodeAs(format string, data []byte) (kvon.Value, error) {
	var doc any
	switch format {
	case "kvon":
		return kvon.Parse(string(data))
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return kvon.Value{}, err
		}
	case "jsonc":
		std, err := hujson.Standardize(data)
		if err != nil {
			return kvon.Value{}, err
		}
		if err := json.Unmarshal(std, &doc); err != nil {
			return kvon.Value{}, err
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return kvon.Value{}, err
		}
	case "toml":
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return kvon.Value{}, err
		}
		doc = m
	default:
		return kvon.Value{}, fmt.Errorf("unknown input format %q", format)
	}
	return kvon.ValueOf(normalize(doc))
}

// normalize replaces values that only have a textual form, such as
// timestamps, with their text.
func normalize(doc any) any {
	switch doc := doc.(type) {
	case map[string]any:
		for k, v := range doc {
			doc[k] = normalize(v)
		}
	case []any:
		for i, v := range doc {
			doc[i] = normalize(v)
		}
	case encoding.TextMarshaler:
		if text, err := doc.MarshalText(); err == nil {
			return string(text)
		}
	}
	return doc
}

// encodeAs renders v in format. opts apply to KVON output only; pretty
// applies to JSON only.
func encodeAs(format string, v kvon.Value, pretty bool, opts []kvon.Option) ([]byte, error) {
	switch format {
	case "kvon":
		return kvon.Marshal(v, opts...)
	case "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(v.Interface()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "yaml":
		return yaml.Marshal(v.Interface())
	case "toml":
		if v.Kind != kvon.ObjectKind {
			return nil, fmt.Errorf("cannot encode %s as a TOML document", v.Kind)
		}
		return toml.Marshal(v.Interface())
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
