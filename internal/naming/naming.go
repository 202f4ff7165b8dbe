// Package naming turns raw schema strings into identifiers the generated code can use.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// identifierCategories are the Unicode general categories allowed in an identifier.
var identifierCategories = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo,
	unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Cf,
}

// Sanitize strips quotes and every rune outside the identifier categories.
// Sanitize(Sanitize(s)) == Sanitize(s) for every s.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r == '"' {
			continue
		}
		if unicode.IsOneOf(identifierCategories, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TrimPrefix removes s up to and including the first case-insensitive occurrence
// of prefix. It returns s unchanged when prefix does not occur.
func TrimPrefix(s, prefix string) string {
	if prefix == "" {
		return s
	}
	idx := indexFold(s, prefix)
	if idx < 0 {
		return s
	}
	return s[idx+matchLen(s[idx:], prefix):]
}

// TrimSuffix removes s from the last case-insensitive occurrence of suffix onward.
// A match at index 0 is ignored so the whole string is never erased.
func TrimSuffix(s, suffix string) string {
	if suffix == "" {
		return s
	}
	idx := lastIndexFold(s, suffix)
	if idx < 1 {
		return s
	}
	return s[:idx]
}

// indexFold returns the byte offset of the first case-insensitive match of sub in s.
func indexFold(s, sub string) int {
	for i := range s {
		if hasPrefixFold(s[i:], sub) {
			return i
		}
	}
	return -1
}

func lastIndexFold(s, sub string) int {
	last := -1
	for i := range s {
		if hasPrefixFold(s[i:], sub) {
			last = i
		}
	}
	return last
}

func hasPrefixFold(s, prefix string) bool {
	return matchLen(s, prefix) >= 0
}

// matchLen reports how many bytes of s match prefix rune by rune ignoring case,
// or -1 when s does not start with prefix.
func matchLen(s, prefix string) int {
	n := 0
	for _, pr := range prefix {
		if n >= len(s) {
			return -1
		}
		sr, size := utf8.DecodeRuneInString(s[n:])
		if !equalFoldRune(sr, pr) {
			return -1
		}
		n += size
	}
	return n
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	return unicode.ToUpper(a) == unicode.ToUpper(b) || unicode.ToLower(a) == unicode.ToLower(b)
}

// IsIdentifier reports whether s is non-empty, already sanitized and does not
// start with a digit.
func IsIdentifier(s string) bool {
	if s == "" || Sanitize(s) != s {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return !unicode.IsDigit(r)
}
