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

package match

import (
	"log/slog"
	"strings"

	"github.com/dachico/clausematch/core"
	"github.com/dachico/clausematch/lexicon"
	"github.com/dachico/clausematch/library"
	"github.com/dachico/clausematch/similarity"
	"github.com/dachico/clausematch/textnorm"
)

const (
	titleWeight   = 0.7
	contentWeight = 0.3
	penaltyDelta  = 0.5
	gapHintBelow  = 0.6
	keywordBonus  = 0.2
)

// Matcher resolves client clauses against a library index using a tiered
// strategy: exact name, semantic alias, keyword overlap, then fuzzy
// similarity. It is safe for concurrent use.
type Matcher struct {
	index  *library.Index
	lex    *lexicon.Lexicon
	norm   *textnorm.Normalizer
	sim    *similarity.Engine
	logger *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
	}
}

// New creates a Matcher over a prepared library index.
func New(idx *library.Index, lex *lexicon.Lexicon, norm *textnorm.Normalizer, opts ...Option) *Matcher {
	m := &Matcher{
		index:  idx,
		lex:    lex,
		norm:   norm,
		sim:    similarity.NewEngine(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match resolves one clause against the library. titleOnly disables content
// comparison in the fuzzy tier. The zero MatchResult (TierNone) means no
// record cleared the acceptance threshold.
func (m *Matcher) Match(clause core.ClauseItem, titleOnly bool) core.MatchResult {
	var result core.MatchResult

	title := clause.Title
	titleNorm := m.norm.Normalize(title)
	titleClean := m.norm.CleanTitle(title)
	thresholds := m.lex.Thresholds()

	matched := -1
	tier := core.TierNone
	var score, titleSim, contentSim float64

	if i, s, ok := m.tryExact(title, titleNorm, titleClean, thresholds); ok {
		matched, score, tier = i, s, core.TierExact
		titleSim = s
	}

	if matched < 0 {
		if i, s, ok := m.trySemantic(title, thresholds); ok {
			matched, score, tier = i, s, core.TierSemantic
			titleSim = s
		}
	}

	if matched < 0 {
		if i, s, ok := m.tryKeyword(title, thresholds); ok {
			matched, score, tier = i, s, core.TierKeyword
			titleSim = s
		}
	}

	if matched < 0 {
		i, s, tSim, cSim := m.tryFuzzy(titleClean, clause.Content, titleOnly)
		if s > thresholds.AcceptMin {
			matched, score, tier = i, s, core.TierFuzzy
			titleSim, contentSim = tSim, cSim
		}
	}

	if matched < 0 || score <= thresholds.AcceptMin {
		return result
	}

	rec := m.index.Record(matched)
	result.MatchedName = m.composeName(rec.Name, clause)
	result.MatchedContent = rec.Content
	result.MatchedRegistrationID = rec.RegistrationID
	result.Score = max(0, score)
	result.TitleSimilarity = titleSim
	result.ContentSimilarity = contentSim
	result.Tier = tier

	if score < gapHintBelow {
		result.CoverageGapHint = AnalyzeGap(clause.Content, rec.Content)
	}

	m.logger.Debug("clause matched",
		"title", title,
		"matched", rec.Name,
		"tier", tier.String(),
		"score", result.Score)
	return result
}

// tryExact checks the curated override table, then the normalized and
// cleaned name indexes.
func (m *Matcher) tryExact(title, titleNorm, titleClean string, th lexicon.Thresholds) (int, float64, bool) {
	if target, ok := m.lex.LookupExactOverride(title); ok {
		for i := 0; i < m.index.Len(); i++ {
			if strings.Contains(m.index.Record(i).Name, target) {
				return i, th.ExactMin, true
			}
		}
	}

	if i, ok := m.index.LookupName(titleNorm); ok {
		return i, 1.0, true
	}
	if i, ok := m.index.LookupName(titleClean); ok {
		return i, th.ExactMin, true
	}
	return -1, 0, false
}

// trySemantic maps the title through the alias table and picks the first
// record whose raw name contains the alias target.
func (m *Matcher) trySemantic(title string, th lexicon.Thresholds) (int, float64, bool) {
	target, ok := m.lex.LookupSemanticAlias(title)
	if !ok {
		return -1, 0, false
	}
	for i := 0; i < m.index.Len(); i++ {
		if strings.Contains(m.index.Record(i).Name, target) {
			return i, th.SemanticMin, true
		}
	}
	return -1, 0, false
}

// tryKeyword scores candidates by shared keyword count. The best candidate
// is accepted when the overlap covers at least half of the larger keyword
// set; ties go to the earlier catalogue record.
func (m *Matcher) tryKeyword(title string, th lexicon.Thresholds) (int, float64, bool) {
	clientKws := m.lex.ExtractKeywords(title)
	if len(clientKws) == 0 {
		return -1, 0, false
	}

	best := -1
	bestCount := 0
	for _, i := range m.index.Candidates(clientKws) {
		count := overlap(clientKws, m.index.Keywords(i))
		if count > bestCount {
			best = i
			bestCount = count
		}
	}
	if best < 0 {
		return -1, 0, false
	}

	libKws := m.index.Keywords(best)
	if len(libKws) == 0 {
		return -1, 0, false
	}
	denom := len(clientKws)
	if len(libKws) > denom {
		denom = len(libKws)
	}
	ratio := float64(bestCount) / float64(denom)
	if ratio < 0.5 {
		return -1, 0, false
	}
	return best, th.KeywordMin + ratio*keywordBonus, true
}

// tryFuzzy scans every record blending title and content similarity. A
// penalty applies when the record name carries a penalty keyword the client
// title does not.
func (m *Matcher) tryFuzzy(titleClean, content string, titleOnly bool) (int, float64, float64, float64) {
	best := -1
	var bestScore, bestTitleSim, bestContentSim float64

	hasContent := strings.TrimSpace(content) != ""
	var contentClean string
	if !titleOnly && hasContent {
		contentClean = m.norm.CleanContent(content)
	}
	clientPenalized := m.lex.IsPenalized(titleClean)

	for i := 0; i < m.index.Len(); i++ {
		forms := m.index.Forms(i)
		titleSim := m.sim.Similarity(titleClean, forms.Cleaned)

		contentSim := 0.0
		if contentClean != "" {
			libClean := m.norm.CleanContent(m.index.Record(i).Content)
			if libClean != "" {
				contentSim = m.sim.Similarity(contentClean, libClean)
			}
		}

		var score float64
		if titleOnly || !hasContent {
			score = titleSim
		} else {
			score = titleWeight*titleSim + contentWeight*contentSim
		}

		if m.index.Penalized(i) && !clientPenalized {
			score -= penaltyDelta
		}

		if score > bestScore {
			best = i
			bestScore = score
			bestTitleSim = titleSim
			bestContentSim = contentSim
		}
	}
	return best, bestScore, bestTitleSim, bestContentSim
}

// composeName transplants a bracketed qualifier from the client title onto
// the matched name, skipping qualifiers the name already carries.
func (m *Matcher) composeName(base string, clause core.ClauseItem) string {
	source := clause.OriginalTitle
	if source == "" {
		source = clause.Title
	}
	extra := m.norm.ExtractBracketed(source)
	if extra == "" || strings.Contains(base, extra) {
		return base
	}
	return base + " " + extra
}

func overlap(a, b []string) int {
	count := 0
	for _, x := range a {
		for _, y := range b {
			if x == y {
				count++
				break
			}
		}
	}
	return count
}
