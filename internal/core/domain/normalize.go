package domain

import (
	"strings"
	"unicode"
)

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// All lookups and uniqueness checks operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeDisplayName trims, lower-cases, then capitalizes the first letter
// of each space-separated word. Interior whitespace runs are preserved, so
// "john   SMITH" becomes "John   Smith". Idempotent.
func NormalizeDisplayName(name string) string {
	words := strings.Split(strings.ToLower(strings.TrimSpace(name)), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
