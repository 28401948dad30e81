// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package search selects catalog entries for a query.
//
// Selection is two-staged: Apply narrows the catalog with the structured
// filters derived from the query, and when that yields nothing the Ranker
// falls back to semantic similarity over the embedding vectors. Filtered
// results keep catalog order; ranked results are ordered by descending
// similarity with ties broken by ascending catalog index.
package search
