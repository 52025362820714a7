package metadata

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Subtitles shorter than this many characters are assumed to be stray
// suffixes rather than real subtitles.
const minSubtitleLength = 3

// SplitTitle derives the display title and subtitle from a raw catalog
// title. When the record names a series and a sequence, the subtitle is the
// series position and any embedded series reference is cut out of the title;
// otherwise a subtitle is inferred from the first ":" or "-" separator.
func SplitTitle(raw, seriesName, sequence string) (string, string) {
	title := CleanTitle(raw)

	if seriesName != "" && sequence != "" {
		subtitle := seriesName + " " + sequence

		if strings.Contains(title, seriesName) {
			// "Book Title - Mystery Series 3" → "Book Title". A separator
			// before the series name is required: when the title merely
			// starts with the series name nothing is cut.
			pattern := regexp.MustCompile(`^(.+?)[-,]\s*` + regexp.QuoteMeta(seriesName))
			if m := pattern.FindStringSubmatch(title); m != nil {
				title = strings.TrimSpace(m[1])
			}
		}

		// Truncation can expose markers the first pass could not see.
		title = CleanTitle(title)
		return title, subtitle
	}

	if idx := strings.IndexAny(title, ":-"); idx >= 0 {
		rest := strings.TrimSpace(title[idx+1:])
		if utf8.RuneCountInString(rest) >= minSubtitleLength {
			return strings.TrimSpace(title[:idx]), rest
		}
	}

	return title, ""
}
