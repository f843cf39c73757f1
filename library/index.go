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

// Package library precomputes the lookup structures the matcher needs over
// a clause catalogue: normalized name forms, an inverted keyword index, and
// penalty flags. The index is immutable once built, so concurrent matching
// needs no locking.
package library

import (
	"log/slog"
	"sort"

	"github.com/dachico/clausematch/core"
	"github.com/dachico/clausematch/lexicon"
	"github.com/dachico/clausematch/textnorm"
)

// Forms holds the precomputed name variants of one catalogue record.
type Forms struct {
	Normalized string
	Cleaned    string
	Original   string
}

// Index is a read-only view over a clause catalogue, prepared for matching.
type Index struct {
	records   []core.LibraryRecord
	forms     []Forms
	keywords  [][]string
	penalized []bool

	byNormalizedName map[string]int
	byKeyword        map[string][]int
}

// BuildIndex prepares an index over records. Records with a blank name are
// skipped. Keyword sets and penalty flags come from the lexicon; name forms
// come from the normalizer.
func BuildIndex(records []core.LibraryRecord, lex *lexicon.Lexicon, norm *textnorm.Normalizer, logger *slog.Logger) *Index {
	if logger == nil {
		logger = slog.Default()
	}

	idx := &Index{
		byNormalizedName: make(map[string]int),
		byKeyword:        make(map[string][]int),
	}

	skipped := 0
	for _, rec := range records {
		if err := core.ValidateLibraryRecord(&rec); err != nil {
			skipped++
			continue
		}

		i := len(idx.records)
		idx.records = append(idx.records, rec)

		forms := Forms{
			Normalized: norm.Normalize(rec.Name),
			Cleaned:    norm.CleanTitle(rec.Name),
			Original:   rec.Name,
		}
		idx.forms = append(idx.forms, forms)

		// Later records overwrite when two names normalize identically.
		idx.byNormalizedName[forms.Normalized] = i
		if forms.Cleaned != forms.Normalized {
			idx.byNormalizedName[forms.Cleaned] = i
		}

		kws := lex.ExtractKeywords(rec.Name)
		idx.keywords = append(idx.keywords, kws)
		for _, kw := range kws {
			idx.byKeyword[kw] = append(idx.byKeyword[kw], i)
		}

		idx.penalized = append(idx.penalized, lex.IsPenalized(rec.Name))
	}

	logger.Info("library index built",
		"records", len(idx.records),
		"skipped", skipped,
		"keywords", len(idx.byKeyword))
	return idx
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Record returns the record at position i in catalogue order.
func (idx *Index) Record(i int) core.LibraryRecord {
	return idx.records[i]
}

// Forms returns the precomputed name forms of the record at position i.
func (idx *Index) Forms(i int) Forms {
	return idx.forms[i]
}

// Keywords returns the keyword set of the record at position i.
func (idx *Index) Keywords(i int) []string {
	return idx.keywords[i]
}

// Penalized reports whether the record at position i carries a penalty
// keyword in its name.
func (idx *Index) Penalized(i int) bool {
	return idx.penalized[i]
}

// LookupName returns the position of the record whose normalized or cleaned
// name equals name exactly.
func (idx *Index) LookupName(name string) (int, bool) {
	i, ok := idx.byNormalizedName[name]
	return i, ok
}

// Candidates returns the positions of records sharing at least one of the
// given keywords, deduplicated, in ascending catalogue order.
func (idx *Index) Candidates(keywords []string) []int {
	if len(keywords) == 0 {
		return nil
	}

	seen := make(map[int]bool)
	var out []int
	for _, kw := range keywords {
		for _, i := range idx.byKeyword[kw] {
			if !seen[i] {
				seen[i] = true
				out = append(out, i)
			}
		}
	}
	// Postings are in catalogue order per keyword; the merge across
	// keywords is not, so restore it.
	sort.Ints(out)
	return out
}
