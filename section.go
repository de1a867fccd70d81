// FILE: lixenwraith/ini/section.go
package ini

import (
	"fmt"
	"iter"
	"sort"
	"time"
)

// Section is a named group of key/value pairs. Keys are unique within a
// section and iterate in sorted order. Sections are created only by a parse.
type Section struct {
	name   string
	values map[string]Value
	keys   []string // sorted
}

func newSection(name string) *Section {
	return &Section{
		name:   name,
		values: make(map[string]Value),
	}
}

// Name returns the section name.
func (s *Section) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Value returns the stored value for key.
func (s *Section) Value(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is defined in the section.
func (s *Section) Has(key string) bool {
	_, ok := s.Value(key)
	return ok
}

// Len returns the number of keys.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns the key names in sorted order.
func (s *Section) Keys() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.keys...)
}

// All iterates over (key, value) pairs in key order.
func (s *Section) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if s == nil {
			return
		}
		for _, k := range s.keys {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}

// insert adds a key that must not exist yet.
func (s *Section) insert(key string, v Value) bool {
	if _, exists := s.values[key]; exists {
		return false
	}
	s.values[key] = v
	i := sort.SearchStrings(s.keys, key)
	s.keys = append(s.keys, "")
	copy(s.keys[i+1:], s.keys[i:])
	s.keys[i] = key
	return true
}

// Get returns the value of key converted to T, or def when the key is
// absent or its value is empty. A nil section yields def.
func Get[T any](s *Section, key string, def T) (T, error) {
	v, ok := s.Value(key)
	if !ok {
		return def, nil
	}
	out, err := AsDefault(v, def)
	if err != nil {
		return def, fmt.Errorf("section %q key %q: %w", s.name, key, err)
	}
	return out, nil
}

// lookup converts the value of a key that must exist.
func lookup[T any](s *Section, key string) (T, error) {
	var zero T
	v, ok := s.Value(key)
	if !ok {
		return zero, fmt.Errorf("key not found: %s.%s", s.Name(), key)
	}
	out, err := As[T](v)
	if err != nil {
		return zero, fmt.Errorf("section %q key %q: %w", s.name, key, err)
	}
	return out, nil
}

// String retrieves a string value, with quotes and escapes resolved.
func (s *Section) String(key string) (string, error) {
	return lookup[string](s, key)
}

// Int64 retrieves an int64 value.
func (s *Section) Int64(key string) (int64, error) {
	return lookup[int64](s, key)
}

// Float64 retrieves a float64 value.
func (s *Section) Float64(key string) (float64, error) {
	return lookup[float64](s, key)
}

// Bool retrieves a boolean value. Accepts the forms of strconv.ParseBool.
func (s *Section) Bool(key string) (bool, error) {
	return lookup[bool](s, key)
}

// Duration retrieves a time.Duration value such as "1m30s".
func (s *Section) Duration(key string) (time.Duration, error) {
	return lookup[time.Duration](s, key)
}

// Strings retrieves an array literal as a list of strings.
func (s *Section) Strings(key string) ([]string, error) {
	return lookup[[]string](s, key)
}
