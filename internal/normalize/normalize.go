// Package normalize provides the two text transforms used for author names
// and book titles. The storage form is canonical for uniqueness comparison
// and persistence; the display form is for presentation only. They are not
// inverses: the storage form permanently drops '?' and '!'.
package normalize

import (
	"strings"
	"unicode"
)

// ForStorage lowercases the text, trims surrounding whitespace, removes the
// literal characters '?' and '!', and collapses interior whitespace runs
// (including tabs and newlines) to a single space. Idempotent.
func ForStorage(text string) string {
	lowered := strings.ToLower(text)
	stripped := strings.Map(func(r rune) rune {
		if r == '?' || r == '!' {
			return -1
		}
		return r
	}, lowered)

	return strings.Join(strings.Fields(stripped), " ")
}

// Email canonicalizes an email address for lookup and storage.
func Email(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// ForDisplay trims surrounding whitespace, collapses interior whitespace
// runs to a single space, and title-cases each word (first rune upper, the
// rest lower). Idempotent.
func ForDisplay(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}
