package chat

import (
	"fmt"
	"strings"

	"github.com/poiesic/cinemind/core"
)

// promptEntryLimit caps how many matches appear in the prompt, regardless of
// how many the pipeline selected.
const promptEntryLimit = 3

// BuildPrompt renders the generator prompt for a query and its selected
// catalog matches. An empty result set produces a message saying the catalog
// had nothing matching; otherwise the prompt states the assistant's role,
// restates the query, lists at most the first three matches, and asks for a
// short grounded reply.
func BuildPrompt(query string, results []core.Match) string {
	if len(results) == 0 {
		return fmt.Sprintf("User asked: '%s'\nThere were no matching results in the catalog.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a helpful media catalog assistant. User asked: %q.\n", query)
	b.WriteString("Based on the catalog, here are some matching titles:\n\n")
	for i, match := range results {
		if i == promptEntryLimit {
			break
		}
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", match.Entry.Title, match.Entry.ReleaseYear, match.Entry.Description)
	}
	b.WriteString("\nGive a short natural reply to the user.")
	return b.String()
}
