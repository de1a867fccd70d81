// FILE: lixenwraith/ini/array.go
package ini

import (
	"errors"
	"strings"
)

// Tokenize splits the interior of an array literal (the text between the
// outer brackets) into element tokens. Elements are separated by commas or
// newlines; spaces inside an element are kept. Quoted elements lose their
// quotes and have their escapes resolved. An empty interior yields no tokens.
func Tokenize(interior string) ([]string, error) {
	raw, err := splitArray(interior)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, len(raw))
	for i, tok := range raw {
		tokens[i] = unwrapString(tok)
	}
	return tokens, nil
}

// splitArray splits an array interior into raw element tokens, trimmed but
// otherwise untouched, so each can be converted as a value of its own.
// Separators inside quotes or nested brackets are content.
func splitArray(s string) ([]string, error) {
	var (
		tokens  []string
		cur     strings.Builder
		inQuote bool
		quoted  bool
		depth   int
	)

	flush := func() {
		tok := strings.TrimSpace(cur.String())
		if tok != "" || quoted {
			tokens = append(tokens, tok)
		}
		cur.Reset()
		quoted = false
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inQuote {
			cur.WriteByte(ch)
			switch ch {
			case '\\':
				if i+1 < len(s) {
					i++
					cur.WriteByte(s[i])
				}
			case '"':
				inQuote = false
			}
			continue
		}

		switch ch {
		case '"':
			inQuote = true
			quoted = true
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, errors.New("unbalanced ']' in array literal")
			}
		case ',', '\n':
			if depth == 0 {
				flush()
				continue
			}
		}
		cur.WriteByte(ch)
	}

	if inQuote {
		return nil, errors.New("unterminated quoted string in array literal")
	}
	if depth != 0 {
		return nil, errors.New("unbalanced '[' in array literal")
	}
	flush()
	return tokens, nil
}
