package search

import (
	"strings"

	"github.com/poiesic/cinemind/catalog"
	"github.com/poiesic/cinemind/core"
)

// Apply narrows the catalog to the entries satisfying every active filter
// field. Absent fields constrain nothing; a zero Filters value passes the
// whole catalog through. Matches keep catalog order and carry no score.
func Apply(cat *catalog.Catalog, filters core.Filters) []core.Match {
	matches := make([]core.Match, 0)
	for i, entry := range cat.Entries() {
		if matchesFilters(entry, filters) {
			matches = append(matches, core.Match{Index: i, Entry: entry})
		}
	}
	return matches
}

func matchesFilters(entry core.Entry, filters core.Filters) bool {
	if filters.Type != core.MediaTypeAny && !strings.EqualFold(entry.Type, filters.Type.String()) {
		return false
	}
	if filters.Country != "" && !containsFold(entry.Country, filters.Country) {
		return false
	}
	if filters.Genre != "" && !containsFold(entry.Genres, filters.Genre) {
		return false
	}
	if filters.ReleaseYear != "" && entry.ReleaseYear != filters.ReleaseYear {
		return false
	}
	return true
}

// containsFold reports whether substr occurs in s, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
