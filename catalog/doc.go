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

// Package catalog loads media entries from CSV sources and holds them,
// together with their embedding vectors, as an immutable in-memory catalog.
//
// Entries keep their source-file order; every lookup elsewhere in the system
// identifies an entry by its catalog index, so order stability is load-bearing.
package catalog
