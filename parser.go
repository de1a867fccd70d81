// FILE: lixenwraith/ini/parser.go
package ini

import (
	"fmt"
	"iter"

	"github.com/rs/zerolog"
)

// Default input limits.
const (
	DefaultMaxFileSize   int64 = 10 << 20 // 10 MiB
	DefaultMaxLineLength       = 64 << 10 // 64 KiB
)

// Parser builds documents from lines of text. Configure it with the With*
// methods before use; a configured Parser may be reused.
type Parser struct {
	logger        zerolog.Logger
	maxFileSize   int64
	maxLineLength int
}

// NewParser creates a parser with default limits and logging disabled.
func NewParser() *Parser {
	return &Parser{
		logger:        zerolog.Nop(),
		maxFileSize:   DefaultMaxFileSize,
		maxLineLength: DefaultMaxLineLength,
	}
}

// WithLogger sets the logger receiving debug events about the build.
func (p *Parser) WithLogger(logger zerolog.Logger) *Parser {
	p.logger = logger.With().Str("component", "ini").Logger()
	return p
}

// WithMaxFileSize limits the size of files read by ParseFile. Zero or a
// negative size disables the limit.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// WithMaxLineLength limits the length of lines read by ParseReader and
// ParseFile.
func (p *Parser) WithMaxLineLength(n int) *Parser {
	if n > 0 {
		p.maxLineLength = n
	}
	return p
}

// Parse consumes lines in order, numbering them from 1, and fills f.
// Any previous content of f is discarded. The first structural error aborts
// the parse and leaves f empty; the error is a *ParseError.
func (p *Parser) Parse(lines iter.Seq[string], f *File) error {
	if f == nil {
		return fmt.Errorf("parse target must be non-nil *File")
	}

	doc := NewFile()
	if err := p.build(lines, doc); err != nil {
		f.reset()
		p.logger.Debug().Err(err).Msg("Parse aborted")
		return err
	}

	*f = *doc
	p.logger.Debug().
		Int("sections", f.Len()).
		Int("keys", countKeys(f)).
		Msg("Parse complete")
	return nil
}

func (p *Parser) build(lines iter.Seq[string], f *File) error {
	var current *Section
	lineNo := 0

	for text := range lines {
		lineNo++
		line := Classify(text)

		switch line.Kind {
		case LineBlank, LineComment:
			continue

		case LineSection:
			s, ok := f.addSection(line.Name)
			if !ok {
				return &ParseError{Line: lineNo, Kind: ErrDuplicateSection, Section: line.Name}
			}
			current = s
			p.logger.Debug().Int("line", lineNo).Str("section", line.Name).Msg("Section declared")

		case LineKeyValue:
			if current == nil {
				return &ParseError{Line: lineNo, Kind: ErrKeyOutsideSection, Key: line.Name}
			}
			if !current.insert(line.Name, NewValue(line.Value)) {
				return &ParseError{Line: lineNo, Kind: ErrDuplicateKey, Section: current.name, Key: line.Name}
			}

		default:
			return &ParseError{Line: lineNo, Kind: ErrUnparsableLine, Text: text}
		}
	}
	return nil
}

func countKeys(f *File) int {
	n := 0
	for _, s := range f.All() {
		n += s.Len()
	}
	return n
}
