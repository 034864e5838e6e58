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

// Package config implements the embedded configuration object (spec
// §4.6): a (name, ordered typed fields) pair carried inside Inspector
// OPEN/SET_CONFIG messages, together with the process-wide schema
// registry that lets a decoder who has never heard of a given schema
// still recover it from the wire ("creative mode").
//
// Grounded on _examples/original_source/util/cfg.c's suscan_config_t /
// suscan_config_desc_t and its global, mutex-guarded descriptor list.
package config

import "fmt"

// FieldType is the type tag of one configuration field.
type FieldType int

const (
	FieldBool FieldType = iota
	FieldInt
	FieldFloat
	FieldString
	FieldFile
)

func (t FieldType) String() string {
	switch t {
	case FieldBool:
		return "bool"
	case FieldInt:
		return "int"
	case FieldFloat:
		return "float"
	case FieldString:
		return "string"
	case FieldFile:
		return "file"
	default:
		return "unknown"
	}
}

// Field is one named, typed value inside a Config.
type Field struct {
	Name  string
	Type  FieldType
	Value interface{}
}

// Config is a (global_name, ordered field set) pair: the embedded
// configuration object spec §4.6 describes.
type Config struct {
	GlobalName string
	Fields     []Field
}

// New builds an empty Config under the given schema name.
func New(globalName string) *Config {
	return &Config{GlobalName: globalName}
}

// Set appends or overwrites a field by name, preserving first-seen order
// for new fields.
func (c *Config) Set(name string, typ FieldType, value interface{}) {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			c.Fields[i].Type = typ
			c.Fields[i].Value = value
			return
		}
	}
	c.Fields = append(c.Fields, Field{Name: name, Type: typ, Value: value})
}

// Get looks up a field by name.
func (c *Config) Get(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Schema returns the field-name -> type map of c, the shape a Schema
// carries in the registry. The map does not keep c's field order.
func (c *Config) Schema() Schema {
	s := Schema{GlobalName: c.GlobalName, Types: make(map[string]FieldType, len(c.Fields))}
	for _, f := range c.Fields {
		s.Types[f.Name] = f.Type
	}
	return s
}

// Validate checks every field of c against a known schema, rejecting the
// message (spec §7 "Schema mismatch") if any declared type disagrees.
func (c *Config) Validate(s Schema) error {
	for _, f := range c.Fields {
		want, ok := s.Types[f.Name]
		if !ok {
			return fmt.Errorf("config: field %q not present in schema %q", f.Name, s.GlobalName)
		}
		if want != f.Type {
			return fmt.Errorf("config: field %q type mismatch: schema wants %s, got %s", f.Name, want, f.Type)
		}
	}
	return nil
}
