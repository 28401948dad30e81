package search

import (
	"testing"

	"github.com/poiesic/cinemind/catalog"
	"github.com/poiesic/cinemind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterTestCatalog() *catalog.Catalog {
	return catalog.New([]core.Entry{
		{Title: "A", Description: "Action flick", Type: "Movie", Country: "United States", Genres: "Action", ReleaseYear: "2010"},
		{Title: "B", Description: "Drama series", Type: "TV Show", Country: "United Kingdom", Genres: "Drama", ReleaseYear: "2015"},
		{Title: "C", Description: "Indian comedy", Type: "Movie", Country: "India, United States", Genres: "Comedies, Dramas", ReleaseYear: "2015"},
		{Title: "D", Description: "Space documentary", Type: "TV Show", Country: "", Genres: "Documentaries, Sci-Fi", ReleaseYear: ""},
	})
}

func titles(matches []core.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Entry.Title
	}
	return out
}

func TestApply(t *testing.T) {
	cat := filterTestCatalog()

	t.Run("zero filters pass everything through in order", func(t *testing.T) {
		matches := Apply(cat, core.Filters{})
		assert.Equal(t, []string{"A", "B", "C", "D"}, titles(matches))
	})

	t.Run("type matches exactly, ignoring case", func(t *testing.T) {
		matches := Apply(cat, core.Filters{Type: core.MediaTypeMovie})
		assert.Equal(t, []string{"A", "C"}, titles(matches))

		matches = Apply(cat, core.Filters{Type: core.MediaTypeTVShow})
		assert.Equal(t, []string{"B", "D"}, titles(matches))
	})

	t.Run("country matches as substring, ignoring case", func(t *testing.T) {
		matches := Apply(cat, core.Filters{Country: "united states"})
		assert.Equal(t, []string{"A", "C"}, titles(matches))

		matches = Apply(cat, core.Filters{Country: "India"})
		assert.Equal(t, []string{"C"}, titles(matches))
	})

	t.Run("genre matches as substring within the genre list", func(t *testing.T) {
		matches := Apply(cat, core.Filters{Genre: "Drama"})
		assert.Equal(t, []string{"B", "C"}, titles(matches))

		matches = Apply(cat, core.Filters{Genre: "sci-fi"})
		assert.Equal(t, []string{"D"}, titles(matches))
	})

	t.Run("release year matches literally", func(t *testing.T) {
		matches := Apply(cat, core.Filters{ReleaseYear: "2015"})
		assert.Equal(t, []string{"B", "C"}, titles(matches))
	})

	t.Run("active filters are ANDed", func(t *testing.T) {
		matches := Apply(cat, core.Filters{
			Type:        core.MediaTypeMovie,
			ReleaseYear: "2015",
		})
		assert.Equal(t, []string{"C"}, titles(matches))
	})

	t.Run("no survivors yields an empty slice", func(t *testing.T) {
		matches := Apply(cat, core.Filters{Country: "Atlantis"})
		require.NotNil(t, matches)
		assert.Empty(t, matches)
	})

	t.Run("empty entry fields never satisfy active filters", func(t *testing.T) {
		matches := Apply(cat, core.Filters{ReleaseYear: "2010"})
		assert.Equal(t, []string{"A"}, titles(matches))
	})

	t.Run("matches carry their catalog index", func(t *testing.T) {
		matches := Apply(cat, core.Filters{Genre: "Drama"})
		require.Len(t, matches, 2)
		assert.Equal(t, 1, matches[0].Index)
		assert.Equal(t, 2, matches[1].Index)
	})
}
