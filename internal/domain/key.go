package domain

import (
	"strings"
	"unicode"
)

// MatchKey builds the key used to compare paints across spelling variants.
// Brand and code are uppercased and joined with an underscore, and every
// whitespace, slash, dot, and hyphen is stripped, so "Tamiya"+"XF-1" and
// "tamiya"+"xf 1" collapse to the same key. Returns "" when either part
// is blank; a blank key never matches anything.
func MatchKey(brand, code string) string {
	brand = strings.TrimSpace(brand)
	code = strings.TrimSpace(code)
	if brand == "" || code == "" {
		return ""
	}

	raw := strings.ToUpper(brand + "_" + code)
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) || r == '/' || r == '.' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StorageKey builds the catalog document identifier for a brand+code pair.
// Unlike MatchKey it substitutes whitespace, slashes, and dots with
// underscores instead of stripping them, and keeps hyphens, so distinct
// codes stay distinct on disk while remaining safe as a key.
func StorageKey(brand, code string) string {
	raw := strings.ToUpper(brand + "_" + code)
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) || r == '/' || r == '.' {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CleanCode strips whitespace, dots, and hyphens from a product code.
// Detection is skipped while the cleaned code is empty, so typing "xf-"
// does not fire a lookup before a meaningful character arrives.
func CleanCode(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if unicode.IsSpace(r) || r == '.' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
