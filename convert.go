// FILE: lixenwraith/ini/convert.go
package ini

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// NoDefault is implemented by types whose zero value is not a meaningful
// default. Converting an empty value to such a type without an explicit
// default fails with ErrMissingDefault.
type NoDefault interface {
	NoDefault()
}

// strategy identifies how a target type is produced from raw text. The
// constants are listed in resolution order.
type strategy int

const (
	strategyString strategy = iota
	strategyValue
	strategyPrimitive
	strategyText
	strategyFactory
	strategyRegistry
	strategyPointer
	strategySequence
)

func (s strategy) String() string {
	switch s {
	case strategyString:
		return "string"
	case strategyValue:
		return "value"
	case strategyPrimitive:
		return "primitive"
	case strategyText:
		return "text-unmarshaler"
	case strategyFactory:
		return "factory"
	case strategyRegistry:
		return "registry"
	case strategyPointer:
		return "pointer"
	case strategySequence:
		return "sequence"
	default:
		return "unknown"
	}
}

var (
	stringType          = reflect.TypeFor[string]()
	valueType           = reflect.TypeFor[Value]()
	errorType           = reflect.TypeFor[error]()
	noDefaultType       = reflect.TypeFor[NoDefault]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// plan is the resolved conversion for one target type.
type plan struct {
	typ       reflect.Type
	strategy  strategy
	elem      *plan         // pointer and sequence targets
	factory   reflect.Value // FromString method value
	converter ConverterFunc
	noDefault bool
	gen       uint64
}

// Converter resolves and applies conversion strategies. Resolution happens
// once per target type and is cached; a Converter is safe for concurrent use.
type Converter struct {
	registry *Registry
	cache    sync.Map // reflect.Type -> *plan
}

// NewConverter creates a conversion engine backed by the given registry.
// A nil registry means DefaultRegistry.
func NewConverter(registry *Registry) *Converter {
	if registry == nil {
		registry = DefaultRegistry
	}
	return &Converter{registry: registry}
}

var defaultConverter = NewConverter(DefaultRegistry)

// Registry returns the registry consulted for external converters.
func (c *Converter) Registry() *Registry { return c.registry }

// Supports reports whether t can be produced from text, without reading any
// data. It returns an error wrapping ErrNoConversion when no strategy applies.
func (c *Converter) Supports(t reflect.Type) error {
	_, err := c.resolve(t)
	return err
}

// Convert converts raw into a value of type t.
func (c *Converter) Convert(raw string, t reflect.Type) (any, error) {
	out, err := c.convert(raw, t)
	if err != nil {
		return nil, err
	}
	return out.Interface(), nil
}

// ConvertWith converts raw to T using c. An empty raw value yields T's zero
// value, or ErrMissingDefault when T implements NoDefault.
func ConvertWith[T any](c *Converter, raw string) (T, error) {
	var zero T
	out, err := c.convert(raw, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	res, _ := out.Interface().(T)
	return res, nil
}

// Convert converts raw to T with the default engine.
func Convert[T any](raw string) (T, error) {
	return ConvertWith[T](defaultConverter, raw)
}

// Supports reports whether T has a conversion strategy in the default engine.
func Supports[T any]() error {
	return defaultConverter.Supports(reflect.TypeFor[T]())
}

func (c *Converter) convert(raw string, t reflect.Type) (reflect.Value, error) {
	p, err := c.resolve(t)
	if err != nil {
		return reflect.Value{}, err
	}
	return c.run(p, raw)
}

// run applies p, handling the empty value first.
func (c *Converter) run(p *plan, raw string) (reflect.Value, error) {
	if isEmptyLiteral(raw) {
		if p.noDefault {
			return reflect.Value{}, &ConversionError{Type: p.typ, Err: ErrMissingDefault}
		}
		return reflect.Zero(p.typ), nil
	}
	return c.apply(p, raw)
}

func (c *Converter) resolve(t reflect.Type) (*plan, error) {
	if t == nil {
		return nil, &ConversionError{Err: fmt.Errorf("%w: nil type", ErrNoConversion)}
	}
	gen := c.registry.generation()
	if cached, ok := c.cache.Load(t); ok {
		if p := cached.(*plan); p.gen == gen {
			return p, nil
		}
	}
	p, err := c.build(t, gen, make(map[reflect.Type]*plan))
	if err != nil {
		return nil, err
	}
	c.cache.Store(t, p)
	return p, nil
}

// build selects the first applicable strategy for t. pending holds plans
// under construction so self-referential types resolve.
func (c *Converter) build(t reflect.Type, gen uint64, pending map[reflect.Type]*plan) (*plan, error) {
	if p, ok := pending[t]; ok {
		return p, nil
	}
	if cached, ok := c.cache.Load(t); ok {
		if p := cached.(*plan); p.gen == gen {
			return p, nil
		}
	}

	p := &plan{
		typ:       t,
		gen:       gen,
		noDefault: t.Implements(noDefaultType) || reflect.PointerTo(t).Implements(noDefaultType),
	}
	pending[t] = p

	switch {
	case t == stringType:
		p.strategy = strategyString
		return p, nil
	case t == valueType:
		p.strategy = strategyValue
		return p, nil
	case isPredeclared(t):
		p.strategy = strategyPrimitive
		return p, nil
	}

	if t.Kind() != reflect.Interface {
		if reflect.PointerTo(t).Implements(textUnmarshalerType) {
			p.strategy = strategyText
			return p, nil
		}
		if m, ok := factoryMethod(t); ok {
			p.strategy = strategyFactory
			p.factory = m
			return p, nil
		}
	}

	if fn, ok := c.registry.Lookup(t); ok {
		p.strategy = strategyRegistry
		p.converter = fn
		return p, nil
	}

	switch t.Kind() {
	case reflect.Ptr:
		elem, err := c.build(t.Elem(), gen, pending)
		if err != nil {
			return nil, noConversion(t, err)
		}
		p.strategy = strategyPointer
		p.elem = elem
		return p, nil
	case reflect.Slice, reflect.Array:
		elem, err := c.build(t.Elem(), gen, pending)
		if err != nil {
			return nil, noConversion(t, err)
		}
		p.strategy = strategySequence
		p.elem = elem
		return p, nil
	}

	// Named types of a basic kind with no hook of their own parse like
	// their underlying type.
	if isBasicKind(t.Kind()) {
		p.strategy = strategyPrimitive
		return p, nil
	}

	return nil, noConversion(t, nil)
}

func noConversion(t reflect.Type, cause error) error {
	if cause == nil {
		return &ConversionError{Type: t, Err: ErrNoConversion}
	}
	return &ConversionError{Type: t, Err: fmt.Errorf("%w: element: %w", ErrNoConversion, cause)}
}

func (c *Converter) apply(p *plan, raw string) (reflect.Value, error) {
	switch p.strategy {
	case strategyString:
		return reflect.ValueOf(unwrapString(raw)), nil

	case strategyValue:
		return reflect.ValueOf(NewValue(raw)), nil

	case strategyPrimitive:
		return parsePrimitive(p.typ, raw)

	case strategyText:
		out := reflect.New(p.typ)
		u := out.Interface().(encoding.TextUnmarshaler)
		if err := u.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
			return reflect.Value{}, notConvertible(p.typ, raw, err)
		}
		return out.Elem(), nil

	case strategyFactory:
		res := p.factory.Call([]reflect.Value{reflect.ValueOf(strings.TrimSpace(raw))})
		if err, _ := res[1].Interface().(error); err != nil {
			return reflect.Value{}, notConvertible(p.typ, raw, err)
		}
		return res[0], nil

	case strategyRegistry:
		v, err := p.converter(strings.TrimSpace(raw))
		if err != nil {
			return reflect.Value{}, notConvertible(p.typ, raw, err)
		}
		return assignable(p.typ, raw, v)

	case strategyPointer:
		ev, err := c.run(p.elem, raw)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(p.elem.typ)
		out.Elem().Set(ev)
		return out, nil

	case strategySequence:
		return c.applySequence(p, raw)
	}
	return reflect.Value{}, noConversion(p.typ, nil)
}

func (c *Converter) applySequence(p *plan, raw string) (reflect.Value, error) {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return reflect.Value{}, notConvertible(p.typ, raw, errors.New("not an array literal"))
	}
	tokens, err := splitArray(s[1 : len(s)-1])
	if err != nil {
		return reflect.Value{}, notConvertible(p.typ, raw, err)
	}

	var out reflect.Value
	if p.typ.Kind() == reflect.Array {
		if len(tokens) != p.typ.Len() {
			return reflect.Value{}, notConvertible(p.typ, raw,
				fmt.Errorf("expected %d elements, got %d", p.typ.Len(), len(tokens)))
		}
		out = reflect.New(p.typ).Elem()
	} else {
		out = reflect.MakeSlice(p.typ, 0, len(tokens))
	}

	for i, tok := range tokens {
		ev, err := c.run(p.elem, tok)
		if err != nil {
			return reflect.Value{}, notConvertible(p.typ, raw, fmt.Errorf("element %d: %w", i, err))
		}
		if p.typ.Kind() == reflect.Array {
			out.Index(i).Set(ev)
		} else {
			out = reflect.Append(out, ev)
		}
	}
	return out, nil
}

// assignable checks a registry converter's result against the target type.
func assignable(t reflect.Type, raw string, v any) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, notConvertible(t, raw, errors.New("converter returned nil"))
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, notConvertible(t, raw, fmt.Errorf("converter returned %T", v))
	}
	out := reflect.New(t).Elem()
	out.Set(rv)
	return out, nil
}

// parsePrimitive parses the trimmed text into a value of t's basic kind.
// The whole text must be consumed.
func parsePrimitive(t reflect.Type, raw string) (reflect.Value, error) {
	s := strings.TrimSpace(raw)
	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		out.SetString(unwrapString(raw))
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return reflect.Value{}, notConvertible(t, raw, err)
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, notConvertible(t, raw, err)
		}
		out.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, notConvertible(t, raw, err)
		}
		out.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return reflect.Value{}, notConvertible(t, raw, err)
		}
		out.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		x, err := strconv.ParseComplex(s, t.Bits())
		if err != nil {
			return reflect.Value{}, notConvertible(t, raw, err)
		}
		out.SetComplex(x)
	default:
		return reflect.Value{}, noConversion(t, nil)
	}
	return out, nil
}

// factoryMethod finds a FromString(string) (T, error) method in t's value
// method set and binds it to t's zero value.
func factoryMethod(t reflect.Type) (reflect.Value, bool) {
	m, ok := t.MethodByName("FromString")
	if !ok {
		return reflect.Value{}, false
	}
	ft := m.Type // receiver is the first input
	if ft.NumIn() != 2 || ft.In(1) != stringType || ft.NumOut() != 2 ||
		ft.Out(0) != t || ft.Out(1) != errorType {
		return reflect.Value{}, false
	}
	return reflect.Zero(t).Method(m.Index), true
}

func isBasicKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// isPredeclared reports whether t is one of the language's own basic types
// rather than a named type defined on top of one.
func isPredeclared(t reflect.Type) bool {
	return t.PkgPath() == "" && t.Name() != "" && isBasicKind(t.Kind())
}
