// FILE: lixenwraith/ini/value.go
package ini

import (
	"fmt"
	"reflect"
)

// Value is the unconverted text stored for one key. Conversion to a concrete
// type is deferred until the value is read with As, AsDefault or Decode.
// A Value is immutable; the zero Value is empty.
type Value struct {
	raw string
}

// NewValue wraps raw text without interpreting it.
func NewValue(raw string) Value {
	return Value{raw: raw}
}

// Raw returns the stored text exactly as captured.
func (v Value) Raw() string { return v.raw }

// IsEmpty reports whether the value has no content: the key had no
// right-hand side, or the right-hand side was an empty quoted literal.
func (v Value) IsEmpty() bool { return isEmptyLiteral(v.raw) }

// String returns the value as text, with quotes and escapes resolved.
func (v Value) String() string {
	if v.IsEmpty() {
		return ""
	}
	return unwrapString(v.raw)
}

// Decode converts the value into the variable pointed to by target.
// An empty value stores the zero value of the target type, or fails with
// ErrMissingDefault if that type implements NoDefault.
func (v Value) Decode(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}
	out, err := defaultConverter.convert(v.raw, rv.Elem().Type())
	if err != nil {
		return err
	}
	rv.Elem().Set(out)
	return nil
}

// As converts v to T. An empty value yields T's zero value unless T
// implements NoDefault, in which case ErrMissingDefault is returned.
func As[T any](v Value) (T, error) {
	return ConvertWith[T](defaultConverter, v.raw)
}

// AsDefault converts v to T, returning def without any conversion when v is
// empty.
func AsDefault[T any](v Value, def T) (T, error) {
	if v.IsEmpty() {
		return def, nil
	}
	return ConvertWith[T](defaultConverter, v.raw)
}

// MustAs is like As but panics on error.
func MustAs[T any](v Value) T {
	out, err := As[T](v)
	if err != nil {
		panic(fmt.Sprintf("ini: %v", err))
	}
	return out
}
