package classifier

import (
	"sort"
	"strings"
)

// UniqueWords splits content on whitespace and returns the distinct tokens
// in sorted order. Tokens are kept verbatim: no lowercasing, no stemming,
// no punctuation stripping.
func UniqueWords(content string) []string {
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(content) {
		seen[w] = struct{}{}
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
