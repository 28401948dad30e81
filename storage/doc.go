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


// Package storage defines the embedding-cache abstraction and its wire format.
//
// The cache is strictly an optimization: the catalog pipeline works without
// one, and a cache miss simply means the entry is embedded again. Vectors are
// keyed by core.ID values derived from the embedding model identity and the
// entry text, so switching models never serves stale vectors.
//
// The storage/badger sub-package provides the BadgerDB-backed implementation.
package storage
