// Copyright 2025 Dachico Labs
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

// Package match implements the tiered clause resolution strategy. Tiers run
// in fixed priority: curated exact overrides and name-index hits, semantic
// alias containment, inverted-index keyword overlap, and finally a fuzzy
// scan blending title and content similarity. Low-scoring accepted matches
// additionally get a coverage gap hint comparing both contents.
package match
