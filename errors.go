// FILE: lixenwraith/ini/errors.go
package ini

import (
	"errors"
	"fmt"
	"reflect"
)

// Build errors. Every error returned by a parse carries one of these as its
// Kind and can be matched with errors.Is.
var (
	ErrUnparsableLine    = errors.New("failed to parse line")
	ErrKeyOutsideSection = errors.New("out of section declaration")
	ErrDuplicateSection  = errors.New("double definition of section")
	ErrDuplicateKey      = errors.New("double definition of value")
)

// Conversion errors.
var (
	ErrNotConvertible = errors.New("could not convert to type")
	ErrNoConversion   = errors.New("no conversion available for type")
	ErrMissingDefault = errors.New("no default value")
)

// Input errors.
var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrFileSize       = errors.New("configuration file exceeds maximum size")
	ErrLineSize       = errors.New("line exceeds maximum length")
)

// ParseError reports the first structural failure of a build, positioned at
// the 1-based source line.
type ParseError struct {
	Line    int
	Kind    error
	Section string
	Key     string
	Text    string
}

func (e *ParseError) Error() string {
	prefix := fmt.Sprintf("line %d: ", e.Line)
	switch e.Kind {
	case ErrUnparsableLine:
		return prefix + fmt.Sprintf("%v '%s'", e.Kind, e.Text)
	case ErrDuplicateSection:
		return prefix + fmt.Sprintf("%v '%s'", e.Kind, e.Section)
	case ErrDuplicateKey:
		return prefix + fmt.Sprintf("%v '%s' in section '%s'", e.Kind, e.Key, e.Section)
	default:
		return prefix + e.Kind.Error()
	}
}

func (e *ParseError) Unwrap() error { return e.Kind }

// ConversionError reports a failed conversion of a stored value.
type ConversionError struct {
	Type reflect.Type
	Raw  string
	Err  error
}

func (e *ConversionError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("convert to %v: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("convert %q to %v: %v", e.Raw, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// IsParseError reports whether err is a build error and returns it.
func IsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func notConvertible(t reflect.Type, raw string, cause error) error {
	if cause == nil {
		return &ConversionError{Type: t, Raw: raw, Err: ErrNotConvertible}
	}
	if errors.Is(cause, ErrNotConvertible) || errors.Is(cause, ErrNoConversion) || errors.Is(cause, ErrMissingDefault) {
		return &ConversionError{Type: t, Raw: raw, Err: cause}
	}
	return &ConversionError{Type: t, Raw: raw, Err: fmt.Errorf("%w: %w", ErrNotConvertible, cause)}
}
