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


package catalog

import "errors"

var (
	// ErrMissingColumn is returned when the source is missing a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmptySource is returned when the source has no header row.
	ErrEmptySource = errors.New("source has no header row")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrVectorCountMismatch is returned when the embedder returns the wrong
	// number of vectors for a batch.
	ErrVectorCountMismatch = errors.New("embedder returned wrong number of vectors")
)
