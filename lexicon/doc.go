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


// Package lexicon holds the data-driven matching policy: controlled
// vocabulary, semantic aliases, keyword extraction groups, exact overrides,
// penalty phrases, noise phrases, and thresholds.
//
// The tables are deliberately declarative (maps, not code branches) so
// matching behavior can be tuned through the JSON config file without code
// changes. All tables iterate in insertion order; substring-containment
// lookups resolve to the first match, which keeps runs deterministic.
package lexicon
