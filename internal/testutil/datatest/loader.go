// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package datatest provides utilities for data-driven testing with YAML
// case files.
package datatest

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadTestCasesFromFile reads a YAML file holding a list of cases and
// normalizes each entry written in type-as-key form.
func LoadTestCasesFromFile(filename string) ([]map[string]any, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var raw []any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	result := make([]map[string]any, 0, len(raw))
	for i, item := range raw {
		rawCase, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: case %d: expected a mapping, got %T", filename, i, item)
		}
		result = append(result, NormalizeTypeAsKey(rawCase))
	}
	return result, nil
}

// UnmarshalTestCase populates target from a case map, matching fields by
// their yaml tag. Keys without a matching field are an error so that typos
// in case files do not silently drop checks.
//
// Example:
//
//	type Case struct {
//	    Name string `yaml:"name"`
//	    Text string `yaml:"text"`
//	}
//	var tc Case
//	err := datatest.UnmarshalTestCase(m, &tc)
func UnmarshalTestCase(tc map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(tc)
}

// NormalizeTypeAsKey converts maps with type as key to standard format.
// Example: {"decode": {"text": "x"}} -> {"type": "decode", "text": "x"}
func NormalizeTypeAsKey(itemMap map[string]any) map[string]any {
	if len(itemMap) != 1 {
		return itemMap
	}
	if _, hasType := itemMap["type"]; hasType {
		return itemMap
	}
	for key, value := range itemMap {
		subMap, ok := value.(map[string]any)
		if !ok || !IsTypeConstant(key) {
			continue
		}
		newMap := map[string]any{"type": key}
		for k, v := range subMap {
			newMap[k] = v
		}
		return newMap
	}
	return itemMap
}

// IsTypeConstant checks if a string looks like a type constant:
// UPPERCASE_WITH_UNDERSCORES or lowercase-with-hyphens.
func IsTypeConstant(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '_' || c == '-' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
