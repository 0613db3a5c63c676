// Package validate holds the pure normalization and format rules applied
// to every user-submitted identity field before it reaches the store.
package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Name trims and capitalizes: first letter upper, rest lower.
func Name(value string) string {
	return capitalize(strings.TrimSpace(value))
}

// Email is always stored lowercase.
func Email(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Phone is trimmed only; no reformatting.
func Phone(value string) string {
	return strings.TrimSpace(value)
}

// Word is the storage casing for categorical fields
// (gender, role, admission type, title).
func Word(value string) string {
	return capitalize(strings.TrimSpace(value))
}

// RegNo is trimmed and upper-cased.
func RegNo(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
