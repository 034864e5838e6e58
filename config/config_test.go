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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSetGetPreservesOrder(t *testing.T) {
	c := New("demo.psk")
	c.Set("bw", FieldFloat, 1200.0)
	c.Set("enabled", FieldBool, true)
	c.Set("bw", FieldFloat, 2400.0) // overwrite, should not reorder

	require.Len(t, c.Fields, 2)
	assert.Equal(t, "bw", c.Fields[0].Name)
	assert.Equal(t, 2400.0, c.Fields[0].Value)
	assert.Equal(t, "enabled", c.Fields[1].Name)

	f, ok := c.Get("enabled")
	require.True(t, ok)
	assert.Equal(t, true, f.Value)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestConfigValidateRejectsTypeMismatch(t *testing.T) {
	c := New("demo.psk")
	c.Set("bw", FieldFloat, 1200.0)
	schema := Schema{GlobalName: "demo.psk", Types: map[string]FieldType{"bw": FieldInt}}
	err := c.Validate(schema)
	require.Error(t, err)
}

func TestConfigValidateAcceptsMatchingSchema(t *testing.T) {
	c := New("demo.psk")
	c.Set("bw", FieldFloat, 1200.0)
	require.NoError(t, c.Validate(c.Schema()))
}

func TestRegistryRejectsConflictingSchema(t *testing.T) {
	r := NewRegistry()
	s1 := Schema{GlobalName: "x", Types: map[string]FieldType{"a": FieldInt}}
	s2 := Schema{GlobalName: "x", Types: map[string]FieldType{"a": FieldString}}

	require.NoError(t, r.Register(s1))
	err := r.Register(s2)
	require.ErrorIs(t, err, ErrSchemaExists)
}

func TestRegistryIdenticalReregistrationIsNoop(t *testing.T) {
	r := NewRegistry()
	s := Schema{GlobalName: "x", Types: map[string]FieldType{"a": FieldInt}}
	require.NoError(t, r.Register(s))
	require.NoError(t, r.Register(s))
}

func TestConfigEncodeDecodeRoundTrip(t *testing.T) {
	r := NewRegistry()
	c := New("demo.psk")
	c.Set("bw", FieldFloat, 1200.5)
	c.Set("enabled", FieldBool, true)
	c.Set("label", FieldString, "hi")

	raw, err := c.Encode()
	require.NoError(t, err)

	got, err := Decode(raw, r)
	require.NoError(t, err)
	assert.Equal(t, c.GlobalName, got.GlobalName)

	f, ok := got.Get("bw")
	require.True(t, ok)
	assert.Equal(t, FieldFloat, f.Type)
	assert.Equal(t, 1200.5, f.Value)

	schema, ok := r.Lookup("demo.psk")
	require.True(t, ok)
	assert.Equal(t, FieldBool, schema.Types["enabled"])
}

func TestConfigDecodeCreativeModeIdempotence(t *testing.T) {
	r := NewRegistry()
	c := New("unknown.schema")
	c.Set("rate", FieldInt, int64(9600))
	raw, err := c.Encode()
	require.NoError(t, err)

	_, err = Decode(raw, r)
	require.NoError(t, err)
	// Decoding the same unknown schema again must not collide with itself.
	_, err = Decode(raw, r)
	require.NoError(t, err)
}
