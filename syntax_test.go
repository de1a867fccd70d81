// FILE: lixenwraith/ini/syntax_test.go
package ini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClassify tests line classification and token capture
func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		kind     LineKind
		key      string
		operator string
		value    string
		comment  string
	}{
		{"Empty", "", LineBlank, "", "", "", ""},
		{"Whitespace", " \t ", LineBlank, "", "", "", ""},
		{"Comment", "; first section", LineComment, "", "", "", ""},
		{"IndentedComment", "\t ;empty: ", LineComment, "", "", "", ""},
		{"Section", "[Section1]", LineSection, "Section1", "", "", ""},
		{"SectionInnerSpaces", "[ Section1 ]", LineSection, "Section1", "", "", ""},
		{"SectionIndented", "  [_private]", LineSection, "_private", "", "", ""},
		{"Equals", "value1 = 123", LineKeyValue, "value1", "=", "123", ""},
		{"Colon", "  value_1: 21", LineKeyValue, "value_1", ":", "21", ""},
		{"ColonEquals", "value_2:= 5.25", LineKeyValue, "value_2", ":=", "5.25", ""},
		{"NoSpaces", "k=5", LineKeyValue, "k", "=", "5", ""},
		{"TrailingComment", "value___3 = sssssss; aaaaaaaa", LineKeyValue, "value___3", "=", "sssssss", "; aaaaaaaa"},
		{"TrailingSpaces", "enum = test_enum::three   ", LineKeyValue, "enum", "=", "test_enum::three", ""},
		{"Words", "mult=several words string", LineKeyValue, "mult", "=", "several words string", ""},
		{"Quoted", `str := "test string"`, LineKeyValue, "str", ":=", `"test string"`, ""},
		{"Array", `arr : [1, 2, 3, "string"]`, LineKeyValue, "arr", ":", `[1, 2, 3, "string"]`, ""},
		{"EmptyValue", "v = ", LineKeyValue, "v", "=", "", ""},
		{"EmptyValueComment", "v = ; nothing", LineKeyValue, "v", "=", "", "; nothing"},
		{"DigitLeadingKey", "1abc = 3", LineMalformed, "", "", "", ""},
		{"DigitLeadingSection", "[1abc]", LineMalformed, "", "", "", ""},
		{"EmptySection", "[]", LineMalformed, "", "", "", ""},
		{"NoOperator", "just some text", LineMalformed, "", "", "", ""},
		{"DashedKey", "my-key = 1", LineMalformed, "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := Classify(tt.line)
			assert.Equal(t, tt.kind, line.Kind, "kind of %q", tt.line)
			assert.Equal(t, tt.key, line.Name)
			assert.Equal(t, tt.operator, line.Operator)
			assert.Equal(t, tt.value, line.Value)
			assert.Equal(t, tt.comment, line.Comment)
		})
	}
}

// TestClassifySectionBeforeKeyValue tests that header syntax wins
func TestClassifySectionBeforeKeyValue(t *testing.T) {
	assert.Equal(t, LineSection, Classify("[key]").Kind)
	assert.Equal(t, LineKeyValue, Classify("key = [value]").Kind)
}

func TestLineKindString(t *testing.T) {
	assert.Equal(t, "section", LineSection.String())
	assert.Equal(t, "key/value", LineKeyValue.String())
	assert.Equal(t, "malformed", LineMalformed.String())
}
