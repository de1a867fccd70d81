// FILE: lixenwraith/ini/scan.go
package ini

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag read by Scan.
const TagName = "ini"

// Scan decodes the section's keys into the struct pointed to by target.
// Fields are matched by their `ini` tag, or case-insensitively by name, and
// every value is converted with the default engine.
func (s *Section) Scan(target any) error {
	data := make(map[string]any, s.Len())
	for key, v := range s.All() {
		data[key] = v
	}
	if err := decode(data, target); err != nil {
		return fmt.Errorf("decode failed for section %q: %w", s.Name(), err)
	}
	return nil
}

// Scan decodes the whole document into the struct pointed to by target.
// Each section maps to a nested struct field; fields of absent sections are
// left unchanged.
func (f *File) Scan(target any) error {
	data := make(map[string]any, f.Len())
	for name, s := range f.All() {
		section := make(map[string]any, s.Len())
		for key, v := range s.All() {
			section[key] = v
		}
		data[name] = section
	}
	if err := decode(data, target); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}

func decode(data map[string]any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		TagName:    TagName,
		DecodeHook: valueDecodeHook(defaultConverter),
		ZeroFields: true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	return decoder.Decode(data)
}

// valueDecodeHook converts stored values into the field type being decoded.
// Values headed for interface fields are passed on as Value.
func valueDecodeHook(c *Converter) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f != valueType {
			return data, nil
		}
		v := data.(Value)
		if t.Kind() == reflect.Interface {
			return v, nil
		}
		return c.Convert(v.Raw(), t)
	}
}
