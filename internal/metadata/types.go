package metadata

// SearchResult is the response shape the Audiobookshelf custom provider API
// expects. Matches is always serialized, even when empty.
type SearchResult struct {
	Matches []BookMetadata `json:"matches"`
}

// SeriesSequence names one series membership together with the position of
// the book inside it.
type SeriesSequence struct {
	Series   string `json:"series"`
	Sequence string `json:"sequence"`
}

// BookMetadata is one normalized match. Fields without a meaningful value
// are omitted from the serialized output entirely; consumers treat the key
// set as significant.
type BookMetadata struct {
	Title         string           `json:"title"`
	Subtitle      string           `json:"subtitle,omitempty"`
	Author        string           `json:"author"`
	Narrator      string           `json:"narrator,omitempty"`
	Language      string           `json:"language"`
	Genres        []string         `json:"genres,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	Series        []SeriesSequence `json:"series,omitempty"`
	Cover         string           `json:"cover,omitempty"`
	Duration      int              `json:"duration,omitempty"` // whole minutes, audio editions only
	Description   string           `json:"description,omitempty"`
	Publisher     string           `json:"publisher,omitempty"`
	PublishedYear string           `json:"publishedYear,omitempty"`
	ISBN          string           `json:"isbn,omitempty"`
}
