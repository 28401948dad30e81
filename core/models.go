package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier derived from content.
// It is used to key cached embedding vectors.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// MediaType identifies the kind of catalog entry a query is constrained to.
type MediaType int

const (
	// MediaTypeAny imposes no type constraint.
	MediaTypeAny MediaType = iota
	// MediaTypeMovie constrains to movies.
	MediaTypeMovie
	// MediaTypeTVShow constrains to TV shows.
	MediaTypeTVShow
)

// String returns the catalog's spelling of the media type.
// MediaTypeAny renders as the empty string.
func (t MediaType) String() string {
	switch t {
	case MediaTypeMovie:
		return "Movie"
	case MediaTypeTVShow:
		return "TV Show"
	default:
		return ""
	}
}

// Entry is a single record in the media catalog.
// All fields are text-normalized by the loader; missing source values are
// the empty string. Entries are never mutated after the catalog is built.
type Entry struct {
	Title       string
	Description string
	Type        string // "Movie" or "TV Show"
	Country     string
	Genres      string // comma-separated genre list (the source's listed_in column)
	ReleaseYear string // 4-digit year as text
}

// Filters is the structured predicate set derived from a free-text query.
// Zero values mean "unconstrained": no predicate is applied for that field.
type Filters struct {
	Type        MediaType
	Country     string
	Genre       string
	ReleaseYear string // 4-digit year as text
}

// IsZero reports whether no predicate is active.
func (f Filters) IsZero() bool {
	return f.Type == MediaTypeAny && f.Country == "" && f.Genre == "" && f.ReleaseYear == ""
}

// Match is a retrieval result. Index is the entry's position in the
// original catalog order; Score is the cosine similarity for semantic
// matches and zero for structured-filter matches.
type Match struct {
	Index int
	Entry Entry
	Score float32
}
