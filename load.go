// FILE: lixenwraith/ini/load.go
package ini

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"
)

// ParseReader reads lines from r and parses them into f. Line terminators
// ("\n" or "\r\n") are removed before classification.
func (p *Parser) ParseReader(r io.Reader, f *File) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(4096, p.maxLineLength)), p.maxLineLength)

	if err := p.Parse(scanLines(scanner), f); err != nil {
		return err
	}
	if err := scanner.Err(); err != nil {
		f.reset()
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("%w: limit %d bytes", ErrLineSize, p.maxLineLength)
		}
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// ParseFile reads and parses the file at path into f. A missing file
// returns ErrConfigNotFound.
func (p *Parser) ParseFile(path string, f *File) error {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to stat config file '%s': %w", path, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("config path '%s' is a directory", path)
	}

	if p.maxFileSize > 0 && fileInfo.Size() > p.maxFileSize {
		return fmt.Errorf("%w: '%s' is %d bytes, limit %d", ErrFileSize, path, fileInfo.Size(), p.maxFileSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file '%s': %w", path, err)
	}
	defer file.Close()

	// Use LimitedReader in case the file grew after the stat
	var reader io.Reader = file
	if p.maxFileSize > 0 {
		reader = io.LimitReader(file, p.maxFileSize)
	}

	if err := p.ParseReader(reader, f); err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	p.logger.Debug().Str("path", path).Msg("Config file loaded")
	return nil
}

// scanLines yields the scanner's lines without trailing carriage returns.
// The sequence stops early on a scanner error; callers check scanner.Err.
func scanLines(scanner *bufio.Scanner) iter.Seq[string] {
	return func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(strings.TrimSuffix(scanner.Text(), "\r")) {
				return
			}
		}
	}
}

// splitLines splits text into lines on "\n", dropping "\r" before it.
// A trailing newline does not produce an extra empty line.
func splitLines(text string) iter.Seq[string] {
	text = strings.TrimSuffix(text, "\n")
	return func(yield func(string) bool) {
		if text == "" {
			return
		}
		for line := range strings.SplitSeq(text, "\n") {
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

// sliceLines yields the given lines unchanged.
func sliceLines(lines []string) iter.Seq[string] {
	return slices.Values(lines)
}
