package metadata

import (
	"strings"

	"github.com/shelfbridge/storytel-provider/internal/storytel"
)

const (
	defaultFallbackLanguage = "de"
	defaultCoverOrigin      = "https://storytel.com"

	millisPerMinute = 60_000
)

// Assembler merges the cleaned title and subtitle with the remaining record
// fields into one normalized BookMetadata.
type Assembler struct {
	fallbackLanguage string
	coverOrigin      string
}

// NewAssembler creates an Assembler. Empty arguments select the catalog
// defaults (language "de", origin "https://storytel.com").
func NewAssembler(fallbackLanguage, coverOrigin string) Assembler {
	if fallbackLanguage == "" {
		fallbackLanguage = defaultFallbackLanguage
	}
	if coverOrigin == "" {
		coverOrigin = defaultCoverOrigin
	}
	return Assembler{
		fallbackLanguage: fallbackLanguage,
		coverOrigin:      strings.TrimSuffix(coverOrigin, "/"),
	}
}

// Assemble converts a raw catalog detail record into normalized metadata.
// It returns nil for records that are not usable matches: a missing book
// wrapper, or a record with neither an audio nor a text edition. When both
// editions exist, audio edition fields win.
func (a Assembler) Assemble(details *storytel.BookDetails) *BookMetadata {
	if details == nil || details.SLB == nil || details.SLB.Book == nil {
		return nil
	}
	slb := details.SLB
	if !slb.HasEdition() {
		return nil
	}
	book := slb.Book

	var seriesName string
	if len(book.Series) > 0 {
		seriesName = strings.TrimSpace(book.Series[0].Name)
	}
	sequence := book.SeriesOrder.String()

	title, subtitle := SplitTitle(book.Name, seriesName, sequence)

	meta := &BookMetadata{
		Title:    title,
		Subtitle: subtitle,
		Author:   strings.TrimSpace(book.AuthorsAsString),
		Language: a.language(book.Language),
		Cover:    a.upgradeCoverURL(book.LargeCover),
	}

	if seriesName != "" && sequence != "" {
		meta.Series = []SeriesSequence{{Series: seriesName, Sequence: sequence}}
	}

	if book.Category != nil {
		if genres := SplitGenres(book.Category.Title); len(genres) > 0 {
			meta.Genres = genres
			// Tags mirror genres; call sites treat them as the same set.
			meta.Tags = append([]string(nil), genres...)
		}
	}

	switch {
	case slb.ABook != nil:
		ab := slb.ABook
		if ab.Length > 0 {
			meta.Duration = int(ab.Length / millisPerMinute)
		}
		meta.Narrator = strings.TrimSpace(ab.NarratorAsString)
		meta.Description = strings.TrimSpace(ab.Description)
		meta.Publisher = publisherName(ab.Publisher)
		meta.PublishedYear = publishedYear(ab.ReleaseDateFormat)
		meta.ISBN = ab.ISBN.String()
	case slb.EBook != nil:
		eb := slb.EBook
		meta.Description = strings.TrimSpace(eb.Description)
		meta.Publisher = publisherName(eb.Publisher)
		meta.PublishedYear = publishedYear(eb.ReleaseDateFormat)
		meta.ISBN = eb.ISBN.String()
	}

	return meta
}

func (a Assembler) language(lang *storytel.Language) string {
	if lang != nil {
		if iso := strings.TrimSpace(lang.IsoValue); iso != "" {
			return iso
		}
	}
	return a.fallbackLanguage
}

// upgradeCoverURL turns a relative cover path into an absolute URL pointing
// at the higher resolution asset variant.
func (a Assembler) upgradeCoverURL(path string) string {
	if path == "" {
		return ""
	}
	return a.coverOrigin + strings.Replace(path, "320x320", "640x640", 1)
}

func publisherName(p *storytel.Publisher) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.Name)
}

func publishedYear(releaseDate string) string {
	if len(releaseDate) < 4 {
		return ""
	}
	return releaseDate[:4]
}
