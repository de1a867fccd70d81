// FILE: lixenwraith/ini/helper.go
package ini

import "strings"

// isQuotedLiteral reports whether s (already trimmed) is a single
// double-quoted literal. Interior quotes must be escaped with a backslash.
func isQuotedLiteral(s string) bool {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return false
	}
	inner := s[1 : len(s)-1]
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '\\':
			i++ // escaped character, whatever it is
		case '"':
			return false
		}
	}
	return true
}

// unescape drops every backslash and keeps the character following it, so
// `\"` becomes `"` and `\\` becomes `\`. A lone trailing backslash is dropped.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			if i < len(s) {
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// unwrapString returns the textual content of a raw value: the unescaped
// contents of a quoted literal, or the trimmed text otherwise.
func unwrapString(raw string) string {
	s := strings.TrimSpace(raw)
	if isQuotedLiteral(s) {
		return unescape(s[1 : len(s)-1])
	}
	return s
}

// isEmptyLiteral reports whether raw holds no value: nothing at all, or an
// explicitly empty quoted literal.
func isEmptyLiteral(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || s == `""`
}

// IsValidName checks that s can name a section or key: an ASCII letter or
// underscore followed by letters, digits and underscores.
func IsValidName(s string) bool {
	if len(s) == 0 {
		return false
	}
	if !isAlpha(rune(s[0])) && s[0] != '_' {
		return false
	}
	for _, r := range s[1:] {
		if !isAlpha(r) && !isNumeric(r) && r != '_' {
			return false
		}
	}
	return true
}

// isAlpha checks if a character is a letter (A-Z, a-z)
func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isNumeric checks if a character is a digit (0-9)
func isNumeric(c rune) bool {
	return c >= '0' && c <= '9'
}
