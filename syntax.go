// FILE: lixenwraith/ini/syntax.go
package ini

import (
	"regexp"
	"strings"
)

// LineKind is the structural class of a single input line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineComment
	LineSection
	LineKeyValue
	LineMalformed
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineSection:
		return "section"
	case LineKeyValue:
		return "key/value"
	default:
		return "malformed"
	}
}

var (
	reComment = regexp.MustCompile(`^\s*;.*$`)
	reSection = regexp.MustCompile(`^\s*\[\s*([A-Za-z_][A-Za-z0-9_]*)\s*\]$`)
	// The value group is optional so that "key =" stores an empty value, and
	// may be a single character ("k=5").
	reKeyValue = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*(:=|:|=)\s*([^;]*[^;\s])?\s*(;.*)?$`)
)

// Line is a classified input line and its captured tokens.
type Line struct {
	Kind LineKind
	// Name is the section name for LineSection and the key for LineKeyValue.
	Name string
	// Operator is one of ":", "=" or ":=". All three are equivalent.
	Operator string
	// Value is the right-hand side with any trailing comment removed.
	Value string
	// Comment is the discarded trailing comment, including the ';'.
	Comment string
}

// Classify determines the kind of a single line of text. The line must not
// contain its terminator. Classification never fails; lines matching no rule
// are reported as LineMalformed.
func Classify(text string) Line {
	if strings.TrimSpace(text) == "" {
		return Line{Kind: LineBlank}
	}
	if reComment.MatchString(text) {
		return Line{Kind: LineComment}
	}
	if m := reSection.FindStringSubmatch(text); m != nil {
		return Line{Kind: LineSection, Name: m[1]}
	}
	if m := reKeyValue.FindStringSubmatch(text); m != nil {
		return Line{
			Kind:     LineKeyValue,
			Name:     m[1],
			Operator: m[2],
			Value:    m[3],
			Comment:  m[4],
		}
	}
	return Line{Kind: LineMalformed}
}
