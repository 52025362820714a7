package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		seriesName   string
		sequence     string
		wantTitle    string
		wantSubtitle string
	}{
		{
			name:         "series name embedded after separator",
			title:        "Mystery Series - Mystery Series 3: The Vanishing",
			seriesName:   "Mystery Series",
			sequence:     "3",
			wantTitle:    "Mystery Series",
			wantSubtitle: "Mystery Series 3",
		},
		{
			name:         "series name absent from title",
			title:        "Der Superpapagei (Ungekürzt)",
			seriesName:   "Die drei ???",
			sequence:     "1",
			wantTitle:    "Der Superpapagei",
			wantSubtitle: "Die drei ??? 1",
		},
		{
			name:       "series name as plain prefix is kept",
			title:      "Mystery Series 3: The Vanishing",
			seriesName: "Mystery Series",
			sequence:   "3",
			// No separator before the series name, so nothing is cut.
			wantTitle:    "Mystery Series 3: The Vanishing",
			wantSubtitle: "Mystery Series 3",
		},
		{
			name:         "truncation exposes residual marker",
			title:        "Projekt X (Ungekürzt) - Zukunft 2",
			seriesName:   "Zukunft",
			sequence:     "2",
			wantTitle:    "Projekt X",
			wantSubtitle: "Zukunft 2",
		},
		{
			name:         "colon subtitle without series",
			title:        "Projekt Mars: Die Ankunft",
			wantTitle:    "Projekt Mars",
			wantSubtitle: "Die Ankunft",
		},
		{
			name:         "dash subtitle without series",
			title:        "Leben - Ein Reisebericht",
			wantTitle:    "Leben",
			wantSubtitle: "Ein Reisebericht",
		},
		{
			name:      "short right segment is not a subtitle",
			title:     "Hitchhiker: 42",
			wantTitle: "Hitchhiker: 42",
		},
		{
			name:      "abridgement suffix only",
			title:     "Der Schwarm (Ungekürzt)",
			wantTitle: "Der Schwarm",
		},
		{
			name:      "sequence without series name",
			title:     "Alleingang",
			sequence:  "2",
			wantTitle: "Alleingang",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, subtitle := SplitTitle(tt.title, tt.seriesName, tt.sequence)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantSubtitle, subtitle)
		})
	}
}
