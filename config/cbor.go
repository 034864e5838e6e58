/*
Copyright (c) The acdp Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// wireValue is the shape a Config's Fields map encodes to: a CBOR map
// from field name to its raw value, plus the global schema name (spec
// §4.6: "1. str global_name. 2. Map {field_name -> value}").
type wireValue struct {
	GlobalName string                     `cbor:"1,keyasint,omitempty"`
	Fields     map[string]cbor.RawMessage `cbor:"2,keyasint,omitempty"`
}

// Encode serializes c as a self-describing CBOR item: the global name
// followed by a field-name -> value map, in the order spec §4.6
// prescribes.
func (c *Config) Encode() (cbor.RawMessage, error) {
	fields := make(map[string]cbor.RawMessage, len(c.Fields))
	for _, f := range c.Fields {
		raw, err := cbor.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("config: encode field %q: %w", f.Name, err)
		}
		fields[f.Name] = raw
	}
	raw, err := cbor.Marshal(wireValue{GlobalName: c.GlobalName, Fields: fields})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Decode reads a Config from a CBOR item previously produced by Encode.
// If the registry already knows GlobalName, each field's declared type
// is validated against that schema (spec §7 "Schema mismatch" rejects
// the message on disagreement). If the name is unknown, Decode enters
// creative mode: it walks the field map once to infer each value's type
// from its CBOR major type, registers the inferred schema, then binds
// the typed values (spec §4.6, §8 property 5).
func Decode(raw cbor.RawMessage, reg *Registry) (*Config, error) {
	var wv wireValue
	if err := cbor.Unmarshal(raw, &wv); err != nil {
		return nil, fmt.Errorf("config: decode envelope: %w", err)
	}

	cfg := &Config{GlobalName: wv.GlobalName}

	schema, known := reg.Lookup(wv.GlobalName)
	if !known {
		schema = Schema{GlobalName: wv.GlobalName, Types: make(map[string]FieldType, len(wv.Fields))}
		for name, raw := range wv.Fields {
			schema.Types[name] = inferType(raw)
		}
		if err := reg.Register(schema); err != nil {
			return nil, err
		}
	}

	// Field iteration order in a Go map is not stable; Fields is sorted
	// by name so repeated decodes of the same wire bytes produce
	// byte-identical Config values for round-trip comparisons.
	names := make([]string, 0, len(wv.Fields))
	for name := range wv.Fields {
		names = append(names, name)
	}
	sortStrings(names)

	for _, name := range names {
		raw := wv.Fields[name]
		typ, ok := schema.Types[name]
		if !ok {
			return nil, fmt.Errorf("config: field %q not declared in schema %q", name, wv.GlobalName)
		}
		val, err := bindValue(typ, raw)
		if err != nil {
			return nil, fmt.Errorf("config: field %q: %w", name, err)
		}
		cfg.Fields = append(cfg.Fields, Field{Name: name, Type: typ, Value: val})
	}

	return cfg, nil
}

// inferType infers a FieldType from a raw CBOR item's major type (spec
// §4.6: "inferring types from CBOR major-type - uint/nint -> integer,
// text -> string, true/false -> boolean, float -> float").
func inferType(raw cbor.RawMessage) FieldType {
	if len(raw) == 0 {
		return FieldString
	}
	majorType := raw[0] >> 5
	switch majorType {
	case 0, 1: // unsigned int, negative int
		return FieldInt
	case 3: // text string
		return FieldString
	case 7: // floats and simple values (bool, null, ...)
		additional := raw[0] & 0x1f
		if additional == 20 || additional == 21 {
			return FieldBool
		}
		return FieldFloat
	default:
		return FieldString
	}
}

func bindValue(typ FieldType, raw cbor.RawMessage) (interface{}, error) {
	switch typ {
	case FieldBool:
		var v bool
		err := cbor.Unmarshal(raw, &v)
		return v, err
	case FieldInt:
		var v int64
		err := cbor.Unmarshal(raw, &v)
		return v, err
	case FieldFloat:
		var v float64
		err := cbor.Unmarshal(raw, &v)
		return v, err
	case FieldString, FieldFile:
		var v string
		err := cbor.Unmarshal(raw, &v)
		return v, err
	default:
		return nil, fmt.Errorf("unknown field type %v", typ)
	}
}
