// FILE: lixenwraith/ini/parser_test.go
package ini

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = "[ Section1 ]\n" +
	";first section\n" +
	"value1 = 123\n" +
	"value2 = 12.5\n" +
	"\n" +
	"value3 = string\n" +
	"[Section_2 ]\n" +
	";second section\n" +
	"  value_1: 21\n" +
	"value_2:= 5.25\n" +
	"value___3 = sssssss; aaaaaaaa\n" +
	"[last_section]\n" +
	"str := \"test string\"\n" +
	"mult=several words string\n" +
	";empty: \n" +
	"enum = test_enum::three   \n" +
	"arr : [1, 2, 3, \"string\"]"

// TestParseDocument tests a full document with every syntax form
func TestParseDocument(t *testing.T) {
	f, err := ParseString(sampleDocument)
	require.NoError(t, err)
	assert.Equal(t, []string{"Section1", "Section_2", "last_section"}, f.Names())

	section1, ok := f.Section("Section1")
	require.True(t, ok)
	assert.Equal(t, int64(123), mustGet[int64](t, section1, "value1"))
	assert.Equal(t, 12.5, mustGet[float64](t, section1, "value2"))
	assert.Equal(t, "string", mustGet[string](t, section1, "value3"))

	missing, err := Get(section1, "value5", "nothing")
	require.NoError(t, err)
	assert.Equal(t, "nothing", missing)

	section2, ok := f.Section("Section_2")
	require.True(t, ok)
	assert.Equal(t, 21, mustGet[int](t, section2, "value_1"))
	assert.Equal(t, 5.25, mustGet[float64](t, section2, "value_2"))
	assert.Equal(t, "sssssss", mustGet[string](t, section2, "value___3"))

	section3, ok := f.Section("last_section")
	require.True(t, ok)
	assert.Equal(t, "test string", mustGet[string](t, section3, "str"))
	assert.Equal(t, "several words string", mustGet[string](t, section3, "mult"))
	assert.False(t, section3.Has("empty"))
	assert.Equal(t, enumThree, mustGet[testEnum](t, section3, "enum"))

	arr := mustGet[[]Value](t, section3, "arr")
	require.Len(t, arr, 4)
	assert.Equal(t, 1, MustAs[int](arr[0]))
	assert.Equal(t, 2, MustAs[int](arr[1]))
	assert.Equal(t, 3, MustAs[int](arr[2]))
	assert.Equal(t, "string", MustAs[string](arr[3]))
}

func mustGet[T any](t *testing.T, s *Section, key string) T {
	t.Helper()
	v, ok := s.Value(key)
	require.True(t, ok, "key %q missing", key)
	out, err := As[T](v)
	require.NoError(t, err)
	return out
}

// TestScenarios tests the documented behaviors end to end
func TestScenarios(t *testing.T) {
	t.Run("IntWithDefault", func(t *testing.T) {
		f, err := ParseString("[Sec]\nk = 5\n")
		require.NoError(t, err)
		s, _ := f.Section("Sec")
		k, err := Get(s, "k", 0)
		require.NoError(t, err)
		assert.Equal(t, 5, k)
	})

	t.Run("KeyOutsideSection", func(t *testing.T) {
		_, err := ParseString("k = 5\n")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrKeyOutsideSection)
		pe, ok := IsParseError(err)
		require.True(t, ok)
		assert.Equal(t, 1, pe.Line)
	})

	t.Run("DuplicateSection", func(t *testing.T) {
		_, err := ParseString("[Sec]\n[Sec]\n")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateSection)
		pe, ok := IsParseError(err)
		require.True(t, ok)
		assert.Equal(t, 2, pe.Line)
		assert.Equal(t, "Sec", pe.Section)
		assert.Equal(t, "line 2: double definition of section 'Sec'", err.Error())
	})

	t.Run("ArrayAsStringsOrValues", func(t *testing.T) {
		f, err := ParseString("[S]\narr = [1, 2, \"x y\"]\n")
		require.NoError(t, err)
		s, _ := f.Section("S")

		strs, err := Get[[]string](s, "arr", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "x y"}, strs)

		vals, err := Get[[]Value](s, "arr", nil)
		require.NoError(t, err)
		require.Len(t, vals, 3)
		assert.Equal(t, 1, MustAs[int](vals[0]))
		assert.Equal(t, "x y", MustAs[string](vals[2]))
		_, err = As[int](vals[2])
		assert.ErrorIs(t, err, ErrNotConvertible)
	})

	t.Run("EmptyValue", func(t *testing.T) {
		f, err := ParseString("[S]\nv = \n")
		require.NoError(t, err)
		s, _ := f.Section("S")

		got, err := Get(s, "v", -1)
		require.NoError(t, err)
		assert.Equal(t, -1, got)

		v, ok := s.Value("v")
		require.True(t, ok)
		assert.True(t, v.IsEmpty())

		zero, err := As[int](v)
		require.NoError(t, err)
		assert.Equal(t, 0, zero)

		_, err = As[required](v)
		assert.ErrorIs(t, err, ErrMissingDefault)
	})
}

// TestParseErrors tests positioned build errors
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    error
		line    int
		section string
		key     string
		text    string
		message string
	}{
		{"Unparsable", "[S]\n???", ErrUnparsableLine, 2, "", "", "???", "line 2: failed to parse line '???'"},
		{"KeyOutside", "; header\n\nk = 1", ErrKeyOutsideSection, 3, "", "k", "", "line 3: out of section declaration"},
		{"DuplicateKey", "[S]\na = 1\na = 2", ErrDuplicateKey, 3, "S", "a", "", "line 3: double definition of value 'a' in section 'S'"},
		{"DuplicateSectionLater", "[A]\n[B]\nx = 1\n[A]", ErrDuplicateSection, 4, "A", "", "", "line 4: double definition of section 'A'"},
		{"FailFast", "[S]\nbad line\n[S]", ErrUnparsableLine, 2, "", "", "bad line", "line 2: failed to parse line 'bad line'"},
		{"TrailingAfterHeader", "[S] x", ErrUnparsableLine, 1, "", "", "[S] x", "line 1: failed to parse line '[S] x'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind))

			pe, ok := IsParseError(err)
			require.True(t, ok)
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.section, pe.Section)
			assert.Equal(t, tt.key, pe.Key)
			assert.Equal(t, tt.text, pe.Text)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

// TestParseReplacesContent tests that a parse discards previous content
func TestParseReplacesContent(t *testing.T) {
	p := NewParser()
	f := NewFile()

	require.NoError(t, p.Parse(splitLines("[A]\nx = 1"), f))
	assert.True(t, f.Has("A"))

	require.NoError(t, p.Parse(splitLines("[B]\ny = 2"), f))
	assert.False(t, f.Has("A"))
	assert.Equal(t, []string{"B"}, f.Names())

	// A failed parse leaves the document empty
	err := p.Parse(splitLines("[C]\nz = 3\n[C]"), f)
	require.Error(t, err)
	assert.Equal(t, 0, f.Len())
	assert.False(t, f.Has("B"))
	assert.False(t, f.Has("C"))

	assert.Error(t, p.Parse(splitLines("[A]"), nil))
}

// TestParseDeterministic tests that the same input builds equal documents
func TestParseDeterministic(t *testing.T) {
	f1, err := ParseString(sampleDocument)
	require.NoError(t, err)
	f2, err := ParseLines(strings.Split(sampleDocument, "\n"))
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
}

// TestParseUniqueness tests that sections and keys never repeat
func TestParseUniqueness(t *testing.T) {
	f, err := ParseString(sampleDocument)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for name, s := range f.All() {
		assert.False(t, seen[name], "section %s repeated", name)
		seen[name] = true

		keys := make(map[string]bool)
		for key := range s.All() {
			assert.False(t, keys[key], "key %s repeated in %s", key, name)
			keys[key] = true
		}
		assert.Len(t, keys, s.Len())
	}
	assert.Len(t, seen, f.Len())
}

func TestParseEmptyInput(t *testing.T) {
	f, err := ParseString("")
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())

	f, err = ParseLines([]string{"", "  ", "; only comments"})
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())
}

// TestParserLogging tests debug events emitted during a parse
func TestParserLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	p := NewParser().WithLogger(logger)

	f := NewFile()
	require.NoError(t, p.Parse(splitLines("[A]\nx = 1\ny = 2\n[B]"), f))
	out := buf.String()
	assert.Contains(t, out, `"component":"ini"`)
	assert.Contains(t, out, `"section":"A"`)
	assert.Contains(t, out, `"sections":2`)
	assert.Contains(t, out, `"keys":2`)
	assert.Contains(t, out, "Parse complete")

	buf.Reset()
	require.Error(t, p.Parse(splitLines("oops"), f))
	assert.Contains(t, buf.String(), "Parse aborted")
}
