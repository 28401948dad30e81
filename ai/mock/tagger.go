package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/cinemind/ai"
)

// MockEntityTagger is a test double for ai.EntityTagger.
// It allows custom behavior injection via function fields.
// Calls may arrive concurrently; the call count is synchronized.
type MockEntityTagger struct {
	// TagFunc is called by Tag if set.
	// If nil, uses a default gazetteer lookup over known country names.
	TagFunc func(ctx context.Context, text string) ([]ai.Entity, error)

	mu        sync.Mutex
	callCount int
}

// countryGazetteer lists country mentions the default tagger recognizes.
// Keys are lowercase; matching is token-based, so "south korea" is found
// in "movies from south korea" but "us" is not found inside "trust".
var countryGazetteer = []string{
	"india", "japan", "france", "spain", "mexico", "canada", "brazil",
	"germany", "italy", "nigeria", "egypt", "turkey", "argentina",
	"south korea", "united states", "united kingdom", "usa", "uk",
}

// NewMockEntityTagger creates a mock tagger with default gazetteer behavior.
// Note: Returns concrete type to allow test assertions via GetMockTagger().
func NewMockEntityTagger() *MockEntityTagger {
	return &MockEntityTagger{}
}

// Tag recognizes entities in text.
// Default behavior: scans for known country names and reports each
// occurrence as a GPE entity, in order of appearance.
func (m *MockEntityTagger) Tag(ctx context.Context, text string) ([]ai.Entity, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.TagFunc != nil {
		return m.TagFunc(ctx, text)
	}

	lowered := strings.ToLower(text)
	type hit struct {
		pos  int
		name string
	}
	var hits []hit
	for _, name := range countryGazetteer {
		idx := 0
		for {
			pos := strings.Index(lowered[idx:], name)
			if pos < 0 {
				break
			}
			pos += idx
			if isTokenBoundary(lowered, pos, len(name)) {
				hits = append(hits, hit{pos: pos, name: name})
			}
			idx = pos + len(name)
		}
	}

	// Report in order of appearance
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			if hits[j].pos < hits[i].pos {
				hits[i], hits[j] = hits[j], hits[i]
			}
		}
	}

	entities := make([]ai.Entity, 0, len(hits))
	for _, h := range hits {
		entities = append(entities, ai.Entity{
			Text:  text[h.pos : h.pos+len(h.name)],
			Label: ai.LabelGPE,
		})
	}
	return entities, nil
}

// isTokenBoundary reports whether s[pos:pos+n] is delimited by non-letters.
func isTokenBoundary(s string, pos, n int) bool {
	if pos > 0 {
		prev := s[pos-1]
		if prev >= 'a' && prev <= 'z' {
			return false
		}
	}
	if end := pos + n; end < len(s) {
		next := s[end]
		if next >= 'a' && next <= 'z' {
			return false
		}
	}
	return true
}

// CallCount returns the number of times Tag was called.
func (m *MockEntityTagger) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockEntityTagger) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.TagFunc = nil
}
