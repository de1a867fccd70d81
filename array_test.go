// FILE: lixenwraith/ini/array_test.go
package ini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenize tests splitting of array literal interiors
func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		interior string
		expected []string
	}{
		{"Empty", "", []string{}},
		{"Blank", "   ", []string{}},
		{"Numbers", "1,2, 3", []string{"1", "2", "3"}},
		{"SpacesAreContent", "string, two strings", []string{"string", "two strings"}},
		{"Quoted", `1, 2, "x y"`, []string{"1", "2", "x y"}},
		{"QuotedComma", `"a, b", c`, []string{"a, b", "c"}},
		{"EscapedQuotes", `"commas \"inside commas\" string"`, []string{`commas "inside commas" string`}},
		{"EmptyQuoted", `"", a`, []string{"", "a"}},
		{"SkipsEmpty", "1,,2, ", []string{"1", "2"}},
		{"Newlines", "1\n2", []string{"1", "2"}},
		{"Nested", "[1, 2], [3]", []string{"[1, 2]", "[3]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.interior)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, interior := range []string{`"open`, `1, "two`, "]", "[1, 2"} {
		t.Run(interior, func(t *testing.T) {
			_, err := Tokenize(interior)
			assert.Error(t, err)
		})
	}
}

// TestSplitArrayKeepsRawTokens tests that element tokens keep their quotes
// for the element conversion
func TestSplitArrayKeepsRawTokens(t *testing.T) {
	tokens, err := splitArray(` 21 , "x, y", \q `)
	require.NoError(t, err)
	assert.Equal(t, []string{"21", `"x, y"`, `\q`}, tokens)
}

// TestUnwrapString tests quote and escape handling of string values
func TestUnwrapString(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"  plain  ", "plain"},
		{"several words string", "several words string"},
		{`"test string"`, "test string"},
		{`  "padded"  `, "padded"},
		{`"a \"b\" c"`, `a "b" c`},
		{`"some \"string"`, `some "string`},
		{`"a\\b"`, `a\b`},
		{`"\n"`, "n"},
		{`C:\path\file`, `C:\path\file`},
		{`"a" "b"`, `"a" "b"`},
		{`"`, `"`},
		{`""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, unwrapString(tt.raw))
		})
	}
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Section_2"))
	assert.True(t, IsValidName("_x"))
	assert.False(t, IsValidName(""))
	assert.False(t, IsValidName("2nd"))
	assert.False(t, IsValidName("a-b"))
	assert.False(t, IsValidName("a.b"))
}
