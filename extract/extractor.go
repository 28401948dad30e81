// Package extract derives structured catalog filters from free-text queries.
package extract

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/poiesic/cinemind/ai"
	"github.com/poiesic/cinemind/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// yearPattern matches standalone 4-digit years from 1900 through 2099.
var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// genreVocabulary is the fixed set of genre tokens recognized in queries.
var genreVocabulary = map[string]struct{}{
	"action":      {},
	"comedy":      {},
	"drama":       {},
	"horror":      {},
	"romance":     {},
	"thriller":    {},
	"documentary": {},
	"sci-fi":      {},
	"crime":       {},
	"kids":        {},
	"family":      {},
	"anime":       {},
}

// Extractor turns a free-text query into core.Filters using lexical rules
// plus a named-entity tagger for place detection.
type Extractor struct {
	tagger ai.EntityTagger
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor creates a filter extractor backed by the given entity tagger.
func NewExtractor(tagger ai.EntityTagger, opts ...Option) (*Extractor, error) {
	if tagger == nil {
		return nil, ErrTaggerRequired
	}

	e := &Extractor{
		tagger: tagger,
		logger: slog.Default().With("component", "extractor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Extract derives filters from the query:
//
//   - ReleaseYear: first standalone 19xx/20xx token, kept as its literal text.
//   - Country: the title-cased text of each geo-political entity the tagger
//     reports; when several occur, the last mention wins.
//   - Genre: tokens matched against a fixed vocabulary, title-cased; the last
//     mention wins here too.
//   - Type: a query containing "movie" resolves to Movie even when "show" or
//     "series" also appear; otherwise "show"/"series" resolves to TV Show.
//
// Tagger failures propagate; the lexical fields never fail.
func (e *Extractor) Extract(ctx context.Context, query string) (core.Filters, error) {
	lowered := strings.ToLower(query)

	var filters core.Filters
	filters.ReleaseYear = yearPattern.FindString(query)

	entities, err := e.tagger.Tag(ctx, lowered)
	if err != nil {
		return core.Filters{}, err
	}
	for _, entity := range entities {
		if entity.Label == ai.LabelGPE {
			filters.Country = titleCase(entity.Text)
		}
	}

	for _, token := range tokenize(lowered) {
		if _, ok := genreVocabulary[token]; ok {
			filters.Genre = titleCase(token)
		}
	}

	switch {
	case strings.Contains(lowered, "movie"):
		filters.Type = core.MediaTypeMovie
	case strings.Contains(lowered, "show"), strings.Contains(lowered, "series"):
		filters.Type = core.MediaTypeTVShow
	}

	e.logger.Debug("extracted filters",
		"type", filters.Type.String(),
		"country", filters.Country,
		"genre", filters.Genre,
		"year", filters.ReleaseYear)

	return filters, nil
}

// tokenize splits a lowercased query into word tokens. Hyphens are kept
// inside tokens so vocabulary entries like "sci-fi" survive splitting.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.Trim(field, "-")
		if field != "" {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

// titleCase capitalizes each word, hyphen-separated parts included
// ("sci-fi" becomes "Sci-Fi", "south korea" becomes "South Korea").
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
