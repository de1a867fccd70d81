// FILE: lixenwraith/ini/registry.go
package ini

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
)

// ConverterFunc turns trimmed value text into a value of a registered type.
type ConverterFunc func(s string) (any, error)

// Registry maps target types to converters supplied by the embedding
// application, for types whose definitions it cannot change. Registrations
// should happen before values are read; changing the registry invalidates
// cached conversion plans of every Converter using it.
type Registry struct {
	converters map[reflect.Type]ConverterFunc
	mutex      sync.RWMutex
	gen        atomic.Uint64
}

// DefaultRegistry is consulted by As, AsDefault, Get and the other package
// level conversion functions. It starts with the built-in converters.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a registry holding the built-in converters.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	registerBuiltins(r)
	return r
}

// NewEmptyRegistry creates a registry with no converters at all.
func NewEmptyRegistry() *Registry {
	return &Registry{converters: make(map[reflect.Type]ConverterFunc)}
}

// RegisterType makes fn the converter for t. It replaces any previous
// converter for the same type.
func (r *Registry) RegisterType(t reflect.Type, fn ConverterFunc) error {
	if t == nil {
		return fmt.Errorf("converter type cannot be nil")
	}
	if fn == nil {
		return fmt.Errorf("converter for %v cannot be nil", t)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.converters[t] = fn
	r.gen.Add(1)
	return nil
}

// Unregister removes the converter for t.
func (r *Registry) Unregister(t reflect.Type) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.converters[t]; !exists {
		return fmt.Errorf("no converter registered for %v", t)
	}
	delete(r.converters, t)
	r.gen.Add(1)
	return nil
}

// Lookup returns the converter registered for t.
func (r *Registry) Lookup(t reflect.Type) (ConverterFunc, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	fn, ok := r.converters[t]
	return fn, ok
}

// Types returns the registered types ordered by name.
func (r *Registry) Types() []reflect.Type {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	types := make([]reflect.Type, 0, len(r.converters))
	for t := range r.converters {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })
	return types
}

func (r *Registry) generation() uint64 { return r.gen.Load() }

// Register adds a typed converter for T to r.
func Register[T any](r *Registry, fn func(s string) (T, error)) error {
	if fn == nil {
		return fmt.Errorf("converter for %v cannot be nil", reflect.TypeFor[T]())
	}
	return r.RegisterType(reflect.TypeFor[T](), func(s string) (any, error) {
		return fn(s)
	})
}

// RegisterConverter adds a typed converter for T to DefaultRegistry.
func RegisterConverter[T any](fn func(s string) (T, error)) error {
	return Register(DefaultRegistry, fn)
}
