package config

import (
	"errors"
	"time"

	"github.com/spf13/cast"
)

// ErrInvalidKey is returned by Set when given an empty key.
var ErrInvalidKey = errors.New("config: key must not be empty")

// ── Store ─────────────────────────────────────────────────────────────────────

// Store is an insertion-ordered mapping from string keys to arbitrary values.
// It backs per-type constructor configuration and the merged configuration
// view the resolver computes over a type's ancestor chain.
//
// Overwriting an existing key keeps the key's original position; iteration
// always yields entries in first-insertion order.
type Store struct {
	keys   []string
	values map[string]any
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// ── Mutation ──────────────────────────────────────────────────────────────────

// Set inserts or overwrites an entry. The empty key is rejected with
// ErrInvalidKey.
func (s *Store) Set(key string, value any) error {
	if key == "" {
		return ErrInvalidKey
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
	return nil
}

// With is the chaining form of Set, for bootstrap literals:
//
//	config.NewStore().With("host", "smtp.example.com").With("port", 587)
//
// It panics on an empty key — misuse here is a programming error.
func (s *Store) With(key string, value any) *Store {
	if err := s.Set(key, value); err != nil {
		panic(err)
	}
	return s
}

// Delete removes an entry if present; absent keys are a no-op.
func (s *Store) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Merge folds other's entries into s in other's iteration order,
// overwriting same-named keys.
func (s *Store) Merge(other *Store) {
	if other == nil {
		return
	}
	other.Each(func(key string, value any) bool {
		_ = s.Set(key, value)
		return true
	})
}

// ── Access ────────────────────────────────────────────────────────────────────

// Get returns the stored value, or nil if the key is absent.
// Callers that need to distinguish "absent" from "stored nil" use Lookup.
func (s *Store) Get(key string) any { return s.values[key] }

// Lookup returns the stored value and whether the key is present.
func (s *Store) Lookup(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.keys) }

// Keys returns the keys in insertion order.
func (s *Store) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Each calls fn for every entry in insertion order until fn returns false.
// Iteration is restartable: two passes without intervening mutation yield
// the same sequence.
func (s *Store) Each(fn func(key string, value any) bool) {
	for _, k := range s.keys {
		if !fn(k, s.values[k]) {
			return
		}
	}
}

// ── Typed access ──────────────────────────────────────────────────────────────
//
// Values arriving from YAML or the environment are loosely typed; these
// getters coerce with spf13/cast and return the zero value for absent keys.

func (s *Store) GetString(key string) string { return cast.ToString(s.values[key]) }

func (s *Store) GetInt(key string) int { return cast.ToInt(s.values[key]) }

func (s *Store) GetBool(key string) bool { return cast.ToBool(s.values[key]) }

func (s *Store) GetFloat(key string) float64 { return cast.ToFloat64(s.values[key]) }

func (s *Store) GetDuration(key string) time.Duration { return cast.ToDuration(s.values[key]) }

func (s *Store) GetStringSlice(key string) []string { return cast.ToStringSlice(s.values[key]) }
