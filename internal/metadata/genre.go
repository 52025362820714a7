package metadata

import (
	"regexp"
	"strings"
)

// Age recommendation categories ("6 bis 9 Jahre", "9 - 12 Years") are
// navigation aids in the catalog, not genres.
var ageCategoryPattern = regexp.MustCompile(`(?i)\d+\s*(?:bis|-)\s*\d+\s*(?:Jahre|Year|Age)`)

// SplitGenres splits a compound category string into discrete genre tokens.
// Tokens are separated by "/" or ",", trimmed, and empty or age-range tokens
// are dropped. Order is preserved and no deduplication happens.
func SplitGenres(category string) []string {
	tokens := strings.FieldsFunc(category, func(r rune) bool {
		return r == '/' || r == ','
	})

	genres := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" || ageCategoryPattern.MatchString(token) {
			continue
		}
		genres = append(genres, token)
	}
	return genres
}
