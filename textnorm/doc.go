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


// Package textnorm canonicalizes raw clause text for comparison.
//
// It provides the normalized and cleaned forms the index and matcher work
// with: case-folded whitespace-collapsed names, title forms with noise
// phrases and bracketed qualifiers stripped, content forms with digits and
// whitespace removed, bracketed-qualifier extraction, and the CJK-fraction
// heuristic that decides whether a title needs translation.
package textnorm
