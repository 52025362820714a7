package storytel

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexString decodes JSON values that the catalog serves inconsistently as
// either strings or numbers (series order, ISBN).
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the decoded value with surrounding whitespace removed.
func (f FlexString) String() string {
	return strings.TrimSpace(string(f))
}

// SearchResponse is the payload of the search.action endpoint. Only the
// candidate identifiers are consumed; everything else comes from the detail
// endpoint.
type SearchResponse struct {
	Books []SearchHit `json:"books"`
}

// SearchHit is a single search candidate.
type SearchHit struct {
	Book *SearchBook `json:"book"`
}

// SearchBook carries the catalog identifier of a candidate.
type SearchBook struct {
	ID int64 `json:"id"`
}

// BookDetails is the payload of the getBookInfoForContent.action endpoint.
type BookDetails struct {
	SLB *SLB `json:"slb"`
}

// SLB wraps the shared book record with its optional audio and text editions.
type SLB struct {
	Book  *Book      `json:"book"`
	ABook *AudioBook `json:"abook"`
	EBook *TextBook  `json:"ebook"`
}

// Book holds the edition-independent fields of a catalog record.
type Book struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	AuthorsAsString string     `json:"authorsAsString"`
	Language        *Language  `json:"language"`
	Category        *Category  `json:"category"`
	Series          []Series   `json:"series"`
	SeriesOrder     FlexString `json:"seriesOrder"`
	LargeCover      string     `json:"largeCover"`
}

// Language is the catalog's language descriptor.
type Language struct {
	IsoValue string `json:"isoValue"`
}

// Category is the catalog's genre descriptor.
type Category struct {
	Title string `json:"title"`
}

// Series is one series membership of a book.
type Series struct {
	Name string `json:"name"`
}

// Publisher is the catalog's publisher descriptor.
type Publisher struct {
	Name string `json:"name"`
}

// AudioBook is the audio edition of a record.
type AudioBook struct {
	Length            int64      `json:"length"` // milliseconds
	NarratorAsString  string     `json:"narratorAsString"`
	Description       string     `json:"description"`
	Publisher         *Publisher `json:"publisher"`
	ReleaseDateFormat string     `json:"releaseDateFormat"`
	ISBN              FlexString `json:"isbn"`
}

// TextBook is the text (ebook) edition of a record.
type TextBook struct {
	Description       string     `json:"description"`
	Publisher         *Publisher `json:"publisher"`
	ReleaseDateFormat string     `json:"releaseDateFormat"`
	ISBN              FlexString `json:"isbn"`
}

// HasEdition reports whether the record carries at least one usable edition.
// Records without any edition are not valid matches.
func (s *SLB) HasEdition() bool {
	return s != nil && (s.ABook != nil || s.EBook != nil)
}

// CandidateIDs extracts the catalog identifiers from search hits, skipping
// hits without a usable identifier, capped at limit (0 means no cap).
func (r *SearchResponse) CandidateIDs(limit int) []string {
	if r == nil {
		return nil
	}

	ids := make([]string, 0, len(r.Books))
	for _, hit := range r.Books {
		if hit.Book == nil || hit.Book.ID == 0 {
			continue
		}
		if limit > 0 && len(ids) >= limit {
			break
		}
		ids = append(ids, strconv.FormatInt(hit.Book.ID, 10))
	}
	return ids
}
