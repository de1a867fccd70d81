// FILE: lixenwraith/ini/file.go
package ini

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// File is a parsed document: sections keyed by unique, case-sensitive name,
// iterated in sorted order. A File is filled by a single parse and is
// read-only afterwards, so concurrent reads need no locking. Parsing again
// into the same File replaces its whole content; callers that rebuild a File
// shared with readers must serialize that themselves.
type File struct {
	sections map[string]*Section
	names    []string // sorted
}

// NewFile creates an empty document.
func NewFile() *File {
	return &File{sections: make(map[string]*Section)}
}

// Section returns the section with the given name.
func (f *File) Section(name string) (*Section, bool) {
	if f == nil {
		return nil, false
	}
	s, ok := f.sections[name]
	return s, ok
}

// Has reports whether a section with the given name exists.
func (f *File) Has(name string) bool {
	_, ok := f.Section(name)
	return ok
}

// Len returns the number of sections.
func (f *File) Len() int {
	if f == nil {
		return 0
	}
	return len(f.names)
}

// Names returns the section names in sorted order.
func (f *File) Names() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.names...)
}

// All iterates over (name, section) pairs in name order.
func (f *File) All() iter.Seq2[string, *Section] {
	return func(yield func(string, *Section) bool) {
		if f == nil {
			return
		}
		for _, name := range f.names {
			if !yield(name, f.sections[name]) {
				return
			}
		}
	}
}

// Lookup converts the value of key in section to T, returning def when the
// section or key is absent or the value is empty.
func Lookup[T any](f *File, section, key string, def T) (T, error) {
	s, _ := f.Section(section)
	return Get(s, key, def)
}

// Debug returns a human-readable listing of all sections and raw values.
func (f *File) Debug() string {
	var b strings.Builder
	b.WriteString("Document Debug Info:\n")
	b.WriteString(fmt.Sprintf("Sections: %d\n", f.Len()))
	for name, s := range f.All() {
		b.WriteString(fmt.Sprintf("  [%s] (%d keys)\n", name, s.Len()))
		for key, v := range s.All() {
			if v.IsEmpty() {
				b.WriteString(fmt.Sprintf("    %s: <empty>\n", key))
				continue
			}
			b.WriteString(fmt.Sprintf("    %s: %q\n", key, v.Raw()))
		}
	}
	return b.String()
}

// reset discards all content.
func (f *File) reset() {
	f.sections = make(map[string]*Section)
	f.names = nil
}

// addSection creates a section that must not exist yet.
func (f *File) addSection(name string) (*Section, bool) {
	if f.sections == nil {
		f.sections = make(map[string]*Section)
	}
	if _, exists := f.sections[name]; exists {
		return nil, false
	}
	s := newSection(name)
	f.sections[name] = s
	i := sort.SearchStrings(f.names, name)
	f.names = append(f.names, "")
	copy(f.names[i+1:], f.names[i:])
	f.names[i] = name
	return s, true
}
