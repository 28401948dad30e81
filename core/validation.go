// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateEntry validates a catalog Entry according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - ReleaseYear, when present, must be a 4-digit string
//
// NOT validated (the loader defaults them to empty strings):
//   - Description, Type, Country, Genres
//
// A failing entry is still queryable; validation exists so callers can
// report suspect source rows, not reject them.
func ValidateEntry(entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if entry.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyTitle)
	}

	if entry.ReleaseYear != "" && !IsValidYear(entry.ReleaseYear) {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrInvalidYear)
	}

	return nil
}

// IsValidYear reports whether s is exactly four ASCII digits.
func IsValidYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
