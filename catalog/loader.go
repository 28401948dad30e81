package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/cinemind/core"
)

// Column names expected in the source, after normalization.
const (
	columnTitle       = "title"
	columnDescription = "description"
	columnType        = "type"
	columnCountry     = "country"
	columnGenres      = "listed_in"
	columnReleaseYear = "release_year"
)

var requiredColumns = []string{
	columnTitle,
	columnDescription,
	columnType,
	columnCountry,
	columnGenres,
	columnReleaseYear,
}

// ReadCSV parses catalog entries from a CSV source.
//
// Column names are normalized (lowercased, whitespace-trimmed) before
// matching; extra columns are ignored. Missing cell values default to the
// empty string. Entries are returned in file order, which becomes the
// catalog order.
func ReadCSV(r io.Reader) ([]core.Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may be ragged; missing cells default to ""

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptySource
		}
		return nil, err
	}

	// Normalize column names and index them
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	cell := func(row []string, name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var entries []core.Entry
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		entry := core.Entry{
			Title:       cell(row, columnTitle),
			Description: cell(row, columnDescription),
			Type:        cell(row, columnType),
			Country:     cell(row, columnCountry),
			Genres:      cell(row, columnGenres),
			ReleaseYear: cell(row, columnReleaseYear),
		}
		// Diagnostics only; malformed entries stay in the catalog.
		if err := core.ValidateEntry(&entry); err != nil {
			slog.Debug("catalog entry failed validation", "row", len(entries)+1, "err", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// LoadFile reads catalog entries from a CSV file on disk.
func LoadFile(path string) ([]core.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return entries, nil
}
