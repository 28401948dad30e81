package chat

import (
	"strings"
	"testing"

	"github.com/poiesic/cinemind/core"
	"github.com/stretchr/testify/assert"
)

func matchesFor(entries ...core.Entry) []core.Match {
	matches := make([]core.Match, len(entries))
	for i, entry := range entries {
		matches[i] = core.Match{Index: i, Entry: entry}
	}
	return matches
}

func TestBuildPrompt(t *testing.T) {
	t.Run("empty results state that nothing matched", func(t *testing.T) {
		prompt := BuildPrompt("a 1950 anime western", nil)
		assert.Contains(t, prompt, "a 1950 anime western")
		assert.Contains(t, prompt, "no matching results")
	})

	t.Run("states the assistant role and the query", func(t *testing.T) {
		prompt := BuildPrompt("something fun", matchesFor(
			core.Entry{Title: "Okja", Description: "A girl and her friend", ReleaseYear: "2017"},
		))
		assert.Contains(t, prompt, "helpful media catalog assistant")
		assert.Contains(t, prompt, "something fun")
	})

	t.Run("formats entries as bulleted lines", func(t *testing.T) {
		prompt := BuildPrompt("anything", matchesFor(
			core.Entry{Title: "Okja", Description: "A girl and her friend", ReleaseYear: "2017"},
		))
		assert.Contains(t, prompt, "- **Okja** (2017): A girl and her friend")
	})

	t.Run("lists at most three entries", func(t *testing.T) {
		prompt := BuildPrompt("anything", matchesFor(
			core.Entry{Title: "One", ReleaseYear: "2001"},
			core.Entry{Title: "Two", ReleaseYear: "2002"},
			core.Entry{Title: "Three", ReleaseYear: "2003"},
			core.Entry{Title: "Four", ReleaseYear: "2004"},
			core.Entry{Title: "Five", ReleaseYear: "2005"},
		))

		assert.Equal(t, 3, strings.Count(prompt, "- **"))
		assert.Contains(t, prompt, "**One**")
		assert.Contains(t, prompt, "**Two**")
		assert.Contains(t, prompt, "**Three**")
		assert.NotContains(t, prompt, "**Four**")
	})

	t.Run("asks for a short reply", func(t *testing.T) {
		prompt := BuildPrompt("anything", matchesFor(core.Entry{Title: "One"}))
		assert.Contains(t, prompt, "Give a short natural reply")
	})
}
