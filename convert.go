// Copyright 2026 The go-kvon Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Conversion between Go values and the KVON value tree.

package kvon

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var (
	valueType       = reflect.TypeOf(Value{})
	unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
)

// ValueOf converts a Go value into a KVON value. It accepts Value, nil,
// booleans, every integer and float kind, strings, slices, arrays, maps
// with string keys, pointers, structs and Marshaler implementations.
// Struct fields are keyed by their `kvon` tag, falling back to the field
// name.
func ValueOf(in any) (Value, error) {
	return defaultOptions().valueOf(in)
}

func (o options) valueOf(in any) (Value, error) {
	v, err := o.convert(in)
	if err != nil {
		return Value{}, fmt.Errorf("kvon: %w", err)
	}
	return v, nil
}

func (o options) convert(in any) (Value, error) {
	switch in := in.(type) {
	case nil:
		return None(), nil
	case Value:
		return in, nil
	case *Value:
		if in == nil {
			return None(), nil
		}
		return *in, nil
	}

	rv := reflect.ValueOf(in)
	if m, ok := in.(Marshaler); ok {
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return None(), nil
		}
		return m.MarshalKVON()
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return None(), nil
		}
		return o.convert(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("cannot encode number %v", f)
		}
		return Number(f), nil
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			item, err := o.convert(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = item
		}
		return Array(items...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf("cannot encode map with %s keys", rv.Type().Key())
		}
		entries := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			if err := checkKey(k); err != nil {
				return Value{}, err
			}
			item, err := o.convert(iter.Value().Interface())
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			entries[k] = item
		}
		return Object(entries), nil
	case reflect.Struct:
		entries := map[string]Value{}
		if err := o.structEntries(rv, entries); err != nil {
			return Value{}, err
		}
		return Object(entries), nil
	}
	return Value{}, fmt.Errorf("cannot encode value of type %T", in)
}

// checkKey rejects keys that no KVON line can hold.
func checkKey(k string) error {
	if strings.ContainsAny(k, "\r\n") {
		return fmt.Errorf("cannot encode key %q", k)
	}
	return nil
}

// checkKeys applies checkKey to every object key in v, which may have
// been built by hand rather than through ValueOf.
func checkKeys(v Value) error {
	switch v.Kind {
	case ArrayKind:
		for _, item := range v.Array {
			if err := checkKeys(item); err != nil {
				return err
			}
		}
	case ObjectKind:
		for k, item := range v.Object {
			if err := checkKey(k); err != nil {
				return err
			}
			if err := checkKeys(item); err != nil {
				return err
			}
		}
	}
	return nil
}

// structEntries adds the exported fields of rv to entries, keyed by the
// configured tag. Untagged embedded structs are flattened, `-` skips a
// field and the omitempty flag skips zero values.
func (o options) structEntries(rv reflect.Value, entries map[string]Value) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, flags, _ := strings.Cut(field.Tag.Get(o.tagName), ",")
		if name == "-" {
			continue
		}
		fv := rv.Field(i)
		if name == "" && field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := o.structEntries(fv, entries); err != nil {
				return err
			}
			continue
		}
		if name == "" {
			name = field.Name
		}
		if err := checkKey(name); err != nil {
			return err
		}
		if flags == "omitempty" && fv.IsZero() {
			continue
		}
		v, err := o.convert(fv.Interface())
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		entries[name] = v
	}
	return nil
}

// assign stores v into out.
func (o options) assign(v Value, out any) error {
	switch out := out.(type) {
	case *Value:
		*out = v
		return nil
	case *any:
		*out = v.Interface()
		return nil
	case Unmarshaler:
		return out.UnmarshalKVON(v)
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("kvon: cannot unmarshal into non-pointer %T", out)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          o.tagName,
		ErrorUnused:      o.knownFields,
		Squash:           true,
		WeaklyTypedInput: o.weaklyTypedInput,
		DecodeHook:       o.decodeHook,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(v.Interface()); err != nil {
		return fmt.Errorf("kvon: %w", err)
	}
	return nil
}

// decodeHook lets nested Value fields and Unmarshaler implementations
// receive the tree rather than plain Go values.
func (o options) decodeHook(from, to reflect.Value) (any, error) {
	if !from.IsValid() {
		return nil, nil
	}
	if !to.IsValid() {
		return from.Interface(), nil
	}
	target := to.Type()
	switch {
	case target == valueType:
		return o.valueOf(from.Interface())
	case reflect.PointerTo(target).Implements(unmarshalerType):
		v, err := o.valueOf(from.Interface())
		if err != nil {
			return nil, err
		}
		ptr := reflect.New(target)
		if err := ptr.Interface().(Unmarshaler).UnmarshalKVON(v); err != nil {
			return nil, err
		}
		return ptr.Elem().Interface(), nil
	}
	return from.Interface(), nil
}
