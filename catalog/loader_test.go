package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `title,description,type,country,listed_in,release_year
Chef's Table,Profiles of renowned chefs,TV Show,United States,Documentaries,2019
3 Idiots,Two friends search for a lost companion,Movie,India,"Comedies, Dramas",2009
Okja,A girl risks everything for her friend,Movie,"South Korea, United States","Action, Dramas",2017
`

func TestReadCSV(t *testing.T) {
	t.Run("parses entries in file order", func(t *testing.T) {
		entries, err := ReadCSV(strings.NewReader(sampleCSV))
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, "Chef's Table", entries[0].Title)
		assert.Equal(t, "TV Show", entries[0].Type)
		assert.Equal(t, "3 Idiots", entries[1].Title)
		assert.Equal(t, "Comedies, Dramas", entries[1].Genres)
		assert.Equal(t, "Okja", entries[2].Title)
		assert.Equal(t, "South Korea, United States", entries[2].Country)
		assert.Equal(t, "2017", entries[2].ReleaseYear)
	})

	t.Run("accepts header in any case and order", func(t *testing.T) {
		csv := "Release_Year,TITLE,Description,Type,Country,Listed_In\n" +
			"1994,Forrest Gump,A man recounts his life,Movie,United States,Dramas\n"
		entries, err := ReadCSV(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Forrest Gump", entries[0].Title)
		assert.Equal(t, "1994", entries[0].ReleaseYear)
	})

	t.Run("defaults missing cells to empty strings", func(t *testing.T) {
		csv := "title,description,type,country,listed_in,release_year\nSolo Row\n"
		entries, err := ReadCSV(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Solo Row", entries[0].Title)
		assert.Empty(t, entries[0].Description)
		assert.Empty(t, entries[0].Country)
	})

	t.Run("rejects missing required columns", func(t *testing.T) {
		csv := "title,type,country,listed_in,release_year\nNo Description,Movie,France,Dramas,2001\n"
		_, err := ReadCSV(strings.NewReader(csv))
		require.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "description")
	})

	t.Run("rejects empty source", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""))
		require.ErrorIs(t, err, ErrEmptySource)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		csv := "title,description,type,country,listed_in,release_year\n" +
			"  Padded Title  ,  padded description ,,,,\n"
		entries, err := ReadCSV(strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, "Padded Title", entries[0].Title)
		assert.Equal(t, "padded description", entries[0].Description)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("loads entries from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.csv")
		require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

		entries, err := LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})
}
