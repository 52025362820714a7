// Package metadata turns raw Storytel catalog records into the normalized
// metadata shape consumed by Audiobookshelf.
package metadata

import (
	"regexp"
	"strings"
)

// Position tells whether a rule strips a leading or trailing construct.
type Position string

// Rule positions.
const (
	Prefix Position = "prefix"
	Suffix Position = "suffix"
)

// Rule is one entry in the ordered title cleanup table. The match, if any,
// is replaced with Replacement (empty for every current rule) before the
// next rule runs.
type Rule struct {
	Locale      string
	Position    Position
	Pattern     *regexp.Regexp
	Replacement string
}

// seriesMarker builds a prefix rule stripping constructs like
// "Der Bergdoktor, Folge 217: " down to the bare episode title.
func seriesMarker(locale, word string) Rule {
	return Rule{
		Locale:   locale,
		Position: Prefix,
		Pattern:  regexp.MustCompile(`(?i)^.*?,\s*` + word + `\s*\d+:\s*`),
	}
}

// abridgement builds a suffix rule stripping "(Unabridged)" style markers.
func abridgement(locale, words string) Rule {
	return Rule{
		Locale:   locale,
		Position: Suffix,
		Pattern:  regexp.MustCompile(`(?i)\s*\((?:` + words + `)\)\s*$`),
	}
}

// trailingPart builds a suffix rule stripping ", Teil 2" style markers.
func trailingPart(locale, word string) Rule {
	return Rule{
		Locale:   locale,
		Position: Suffix,
		Pattern:  regexp.MustCompile(`(?i),\s*` + word + `\s+\d+$`),
	}
}

// cleanupRules is applied in order, regardless of the active request locale:
// the catalog mixes languages freely, so a German record can surface in a
// Swedish search and vice versa. Locale tags are documentation, not filters.
var cleanupRules = []Rule{
	// Episode/volume/part markers: "<series>, <word> <n>: <title>"
	seriesMarker("de", "Folge"),
	seriesMarker("de", "Band"),
	seriesMarker("de", "Teil"),
	seriesMarker("de", "Buch"),
	seriesMarker("en", "Volume"),
	seriesMarker("en", "Book"),
	seriesMarker("en", "Part"),
	seriesMarker("en", "Episode"),
	seriesMarker("sv", "Del"),
	seriesMarker("sv", "Avsnitt"),
	seriesMarker("fi", "Osa"),
	seriesMarker("fi", "Jakso"),
	seriesMarker("nl", "Deel"),
	seriesMarker("fr", "Tome"),
	seriesMarker("fr", "Partie"),
	seriesMarker("es", "Parte"),
	seriesMarker("es", "Libro"),
	seriesMarker("es", "Volumen"),

	// Dash-numbered episodes: "<series> - <n>: <title>"
	{Locale: "*", Position: Prefix, Pattern: regexp.MustCompile(`(?i)^.*?\s+-\s+\d+:\s*`)},

	// Abridgement markers.
	abridgement("de", "Ungekürzt|Gekürzt"),
	abridgement("en", "Unabridged|Abridged"),
	abridgement("sv", "Oavkortad|Förkortad"),
	abridgement("no", "Uforkortet|Forkortet"),
	abridgement("fi", "Lyhentämätön|Lyhennetty"),
	abridgement("nl", "Onverkort|Verkort"),
	abridgement("fr", "Version intégrale|Version abrégée"),
	abridgement("es", "Versión completa|Versión resumida"),

	// Trailing part markers: "<title>, Teil 2"
	trailingPart("de", "Teil"),
	trailingPart("en", "Part"),
	trailingPart("sv", "Del"),
	trailingPart("fi", "Osa"),

	// Trailing series references: "<title> - Foo-Reihe 3"
	{Locale: "de", Position: Suffix, Pattern: regexp.MustCompile(`(?i)-\s*.*?(?:Reihe|Serie)\s+\d+$`)},
	{Locale: "en", Position: Suffix, Pattern: regexp.MustCompile(`(?i)-\s*.*?Series\s+\d+$`)},
}

// CleanTitle strips series markers, episode numbering and abridgement
// suffixes from a raw catalog title by applying the cleanup table in order.
// Applying it to an already clean title is a no-op.
func CleanTitle(title string) string {
	for _, rule := range cleanupRules {
		title = rule.Pattern.ReplaceAllString(title, rule.Replacement)
	}
	return strings.TrimSpace(title)
}
