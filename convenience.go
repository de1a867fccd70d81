// FILE: lixenwraith/ini/convenience.go
package ini

import (
	"fmt"
	"iter"
)

// Parse builds a new document from a sequence of lines with default options.
func Parse(lines iter.Seq[string]) (*File, error) {
	f := NewFile()
	if err := NewParser().Parse(lines, f); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseLines builds a new document from lines that are already split.
func ParseLines(lines []string) (*File, error) {
	return Parse(sliceLines(lines))
}

// ParseString builds a new document from text, splitting it on newlines.
func ParseString(text string) (*File, error) {
	return Parse(splitLines(text))
}

// Load reads and parses a file with default options.
func Load(path string) (*File, error) {
	f := NewFile()
	if err := NewParser().ParseFile(path, f); err != nil {
		return nil, err
	}
	return f, nil
}

// MustLoad is like Load but panics on error
func MustLoad(path string) *File {
	f, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("ini load failed: %v", err))
	}
	return f
}
