// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

package kvon

import (
	"errors"
	"fmt"
)

// Option configures decoding and encoding.
type Option func(*options) error

type options struct {
	indention        Indention
	tagName          string
	knownFields      bool
	weaklyTypedInput bool
}

func defaultOptions() options {
	return options{
		indention: Tabs(),
		tagName:   "kvon",
	}
}

func applyOptions(opts ...Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}

// Options combines multiple options into a single Option. Later options
// override earlier ones.
//
// Example:
//
//	opts := kvon.Options(kvon.Compact, kvon.WithKnownFields(true))
//	kvon.Marshal(&data, opts)
func Options(opts ...Option) Option {
	return func(o *options) error {
		for _, opt := range opts {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// Default indents with one tab per level.
var Default = Options(WithTabs())

// Compact indents with two spaces per level.
var Compact = Options(WithSpaces(2))

// WithIndention sets the style used when encoding.
func WithIndention(style Indention) Option {
	return func(o *options) error {
		o.indention = style
		return nil
	}
}

// WithTabs encodes with one tab per level.
func WithTabs() Option {
	return WithIndention(Tabs())
}

// WithSpaces encodes with n spaces per level. n must be positive.
func WithSpaces(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return fmt.Errorf("kvon: cannot indent with %d spaces", n)
		}
		o.indention = Spaces(n)
		return nil
	}
}

// WithTagName sets the struct tag consulted when mapping struct fields.
// The default is "kvon".
func WithTagName(name string) Option {
	return func(o *options) error {
		if name == "" {
			return errors.New("kvon: empty struct tag name")
		}
		o.tagName = name
		return nil
	}
}

// WithKnownFields enables or disables strict field checking when
// unmarshaling into structs.
//
// When enabled, keys that do not correspond to any field in the target
// struct are an error.
func WithKnownFields(knownFields bool) Option {
	return func(o *options) error {
		o.knownFields = knownFields
		return nil
	}
}

// WithWeaklyTypedInput allows lenient conversions when unmarshaling, such
// as the text '42' into an int field or a number into a string field.
func WithWeaklyTypedInput(weak bool) Option {
	return func(o *options) error {
		o.weaklyTypedInput = weak
		return nil
	}
}

// OptsKVON parses a KVON document holding option settings and returns an
// Option that can be combined with other options using Options().
//
// The document can specify any of these fields:
//   - indent ('tabs' or a positive number of spaces)
//   - tag-name (text)
//   - known-fields (boolean)
//   - weakly-typed-input (boolean)
//
// Only fields present in the document override other options.
//
// Example:
//
//	opts, err := kvon.OptsKVON("indent: 4\nknown-fields: true")
//	kvon.Marshal(&data, kvon.Options(kvon.Default, opts))
func OptsKVON(text string) (Option, error) {
	var cfg struct {
		Indent           any     `kvon:"indent"`
		TagName          *string `kvon:"tag-name"`
		KnownFields      *bool   `kvon:"known-fields"`
		WeaklyTypedInput *bool   `kvon:"weakly-typed-input"`
	}
	if err := Unmarshal([]byte(text), &cfg, WithKnownFields(true)); err != nil {
		return nil, err
	}

	var optList []Option
	switch indent := cfg.Indent.(type) {
	case nil:
	case string:
		if indent != "tabs" {
			return nil, fmt.Errorf("kvon: invalid indent %q", indent)
		}
		optList = append(optList, WithTabs())
	case float64:
		if indent != float64(int(indent)) {
			return nil, fmt.Errorf("kvon: invalid indent %v", indent)
		}
		optList = append(optList, WithSpaces(int(indent)))
	default:
		return nil, fmt.Errorf("kvon: invalid indent %v", indent)
	}
	if cfg.TagName != nil {
		optList = append(optList, WithTagName(*cfg.TagName))
	}
	if cfg.KnownFields != nil {
		optList = append(optList, WithKnownFields(*cfg.KnownFields))
	}
	if cfg.WeaklyTypedInput != nil {
		optList = append(optList, WithWeaklyTypedInput(*cfg.WeaklyTypedInput))
	}

	// Validate now so a bad document fails here rather than at first use.
	if _, err := applyOptions(optList...); err != nil {
		return nil, err
	}
	return Options(optList...), nil
}
