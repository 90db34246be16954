package domain

import (
	"strings"
	"unicode"
)

// TitleCase uppercases the first letter of every word and lowercases the
// rest, so "flat black" and "FLAT BLACK" both store as "Flat Black".
// Words are separated by whitespace; punctuation inside a word is kept.
func TitleCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			startOfWord = true
			b.WriteRune(r)
		case startOfWord:
			startOfWord = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// SentenceCase uppercases only the first character and leaves the rest
// untouched. Used for free-form notes.
func SentenceCase(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
