package kv

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

const (
	// Delimiter separates a key from its value inside a serialized record.
	Delimiter = ':'
	// Separator frames every serialized record.
	Separator = '\x00'
)

// Store is an insertion-ordered string map with dirty tracking.
// The zero value is ready to use.
type Store struct {
	data  map[string]string
	keys  []string
	dirty bool
}

// New returns an empty store.
func New() *Store {
	return &Store{data: make(map[string]string)}
}

// Validate reports whether key and value can be stored and serialized.
func Validate(key, value string) error {
	if strings.IndexByte(key, Delimiter) >= 0 || strings.IndexByte(key, Separator) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if strings.IndexByte(value, Separator) >= 0 {
		return fmt.Errorf("%w: value of %q contains a separator byte", ErrInvalidValue, key)
	}
	return nil
}

// Put stores value under key and marks the store dirty.
func (s *Store) Put(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	s.set(key, value)
	s.dirty = true
	return nil
}

// Load stores value under key without marking the store dirty.
// It is meant for rehydrating state from an incoming cookie.
func (s *Store) Load(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	s.set(key, value)
	return nil
}

// PutAll stores every pair of m. Keys are added in sorted order so the
// resulting layout does not depend on map iteration.
func (s *Store) PutAll(m map[string]string) error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := s.Put(k, m[k]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) PutInt(key string, v int) error {
	return s.Put(key, strconv.Itoa(v))
}

func (s *Store) PutBool(key string, v bool) error {
	return s.Put(key, strconv.FormatBool(v))
}

func (s *Store) Get(key string) (string, bool) {
	if s.data == nil {
		return "", false
	}
	v, ok := s.data[key]
	return v, ok
}

// GetInt returns the value under key parsed as int.
// The second result is false when the key is missing or not a number.
func (s *Store) GetInt(key string) (int, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *Store) GetBool(key string) (bool, bool) {
	v, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// Remove deletes key. The store becomes dirty only if the key existed.
func (s *Store) Remove(key string) {
	if !s.ContainsKey(key) {
		return
	}
	s.unset(key)
	s.dirty = true
}

// Clear deletes all keys. The store becomes dirty only if it was not empty.
func (s *Store) Clear() {
	if len(s.keys) == 0 {
		return
	}
	s.data = make(map[string]string)
	s.keys = s.keys[:0]
	s.dirty = true
}

func (s *Store) ContainsKey(key string) bool {
	_, ok := s.Get(key)
	return ok
}

func (s *Store) Len() int {
	return len(s.keys)
}

func (s *Store) IsEmpty() bool {
	return len(s.keys) == 0
}

// Keys returns the keys in insertion order.
func (s *Store) Keys() []string {
	return slices.Clone(s.keys)
}

// Each calls fn for every pair in insertion order.
func (s *Store) Each(fn func(key, value string)) {
	for _, k := range s.keys {
		fn(k, s.data[k])
	}
}

// Map returns a copy of the underlying data.
func (s *Store) Map() map[string]string {
	return maps.Clone(s.data)
}

// Dirty reports whether the content was changed through Put, Remove or Clear.
func (s *Store) Dirty() bool {
	return s.dirty
}

// MarkDirty flags the store as changed.
func (s *Store) MarkDirty() {
	s.dirty = true
}

// Equal reports whether both stores hold the same pairs, regardless of order.
func (s *Store) Equal(other *Store) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.keys) != len(other.keys) {
		return false
	}
	return maps.Equal(s.data, other.data)
}

// Unset removes key without touching the dirty flag.
func (s *Store) Unset(key string) {
	if s.ContainsKey(key) {
		s.unset(key)
	}
}

func (s *Store) set(key, value string) {
	if s.data == nil {
		s.data = make(map[string]string)
	}
	if _, exists := s.data[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.data[key] = value
}

func (s *Store) unset(key string) {
	delete(s.data, key)
	if i := slices.Index(s.keys, key); i >= 0 {
		s.keys = slices.Delete(s.keys, i, i+1)
	}
}
