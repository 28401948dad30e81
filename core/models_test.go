package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("Inception A mind-bending heist thriller")
		b := IDFromContent("Inception A mind-bending heist thriller")
		assert.Equal(t, a, b)
	})

	t.Run("different content different ID", func(t *testing.T) {
		a := IDFromContent("Inception")
		b := IDFromContent("The Crown")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		a := IDFromContent("")
		b := IDFromContent("")
		assert.Equal(t, a, b)
	})
}

func TestMediaTypeString(t *testing.T) {
	assert.Equal(t, "Movie", MediaTypeMovie.String())
	assert.Equal(t, "TV Show", MediaTypeTVShow.String())
	assert.Equal(t, "", MediaTypeAny.String())
}

func TestFiltersIsZero(t *testing.T) {
	t.Run("zero filters", func(t *testing.T) {
		assert.True(t, Filters{}.IsZero())
	})

	t.Run("type set", func(t *testing.T) {
		assert.False(t, Filters{Type: MediaTypeMovie}.IsZero())
	})

	t.Run("country set", func(t *testing.T) {
		assert.False(t, Filters{Country: "India"}.IsZero())
	})

	t.Run("genre set", func(t *testing.T) {
		assert.False(t, Filters{Genre: "Drama"}.IsZero())
	})

	t.Run("year set", func(t *testing.T) {
		assert.False(t, Filters{ReleaseYear: "2015"}.IsZero())
	})
}
