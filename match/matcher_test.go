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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dachico/clausematch/core"
	"github.com/dachico/clausematch/lexicon"
	"github.com/dachico/clausematch/library"
	"github.com/dachico/clausematch/textnorm"
)

func testRecords() []core.LibraryRecord {
	return []core.LibraryRecord{
		{Name: "地震扩展条款", Content: "扩展承保因地震引起的损失", RegistrationID: "C001"},
		{Name: "盗窃、抢劫扩展条款", Content: "扩展承保盗窃抢劫所致损失", RegistrationID: "C002"},
		{Name: "意外污染责任条款", Content: "承保意外污染造成的第三者责任", RegistrationID: "C003"},
		{Name: "打孔盗气责任条款", Content: "承保打孔盗气行为造成的损失", RegistrationID: "C004"},
		{Name: "玻璃破碎条款", Content: "本条款规定每次事故赔偿限额为人民币十万元", RegistrationID: "C005"},
	}
}

func testMatcher(t *testing.T, lex *lexicon.Lexicon) *Matcher {
	t.Helper()
	if lex == nil {
		lex = lexicon.New()
	}
	norm := textnorm.New(textnorm.WithNoiseWords(lex.NoiseWords()))
	idx := library.BuildIndex(testRecords(), lex, norm, nil)
	return New(idx, lex, norm)
}

func TestExactMatchNormalizedName(t *testing.T) {
	m := testMatcher(t, nil)

	res := m.Match(core.ClauseItem{Title: "地震扩展条款"}, true)
	assert.Equal(t, core.TierExact, res.Tier)
	assert.Equal(t, "地震扩展条款", res.MatchedName)
	assert.Equal(t, "C001", res.MatchedRegistrationID)
	assert.Equal(t, 1.0, res.Score)
}

func TestExactMatchCleanedName(t *testing.T) {
	m := testMatcher(t, nil)

	// Version qualifier and noise words drop out during cleaning.
	res := m.Match(core.ClauseItem{Title: "地震扩展条款（2024版）"}, true)
	assert.Equal(t, core.TierExact, res.Tier)
	assert.InDelta(t, 0.98, res.Score, 1e-9)
}

func TestExactOverrideWinsFirst(t *testing.T) {
	lex := lexicon.New()
	lex.AddExactOverride("特别约定条款A", "盗窃")
	m := testMatcher(t, lex)

	res := m.Match(core.ClauseItem{Title: "特别约定条款A"}, true)
	assert.Equal(t, core.TierExact, res.Tier)
	assert.Equal(t, "盗窃、抢劫扩展条款", res.MatchedName)
	assert.InDelta(t, 0.98, res.Score, 1e-9)
}

func TestSemanticAliasMatch(t *testing.T) {
	m := testMatcher(t, nil)

	res := m.Match(core.ClauseItem{Title: "附加污染保险条款"}, true)
	assert.Equal(t, core.TierSemantic, res.Tier)
	assert.Equal(t, "意外污染责任条款", res.MatchedName)
	assert.InDelta(t, 0.85, res.Score, 1e-9)
}

func TestKeywordMatch(t *testing.T) {
	m := testMatcher(t, nil)

	// Keywords 地震 and 海啸; the library record only carries 地震, so the
	// overlap ratio is exactly one half.
	res := m.Match(core.ClauseItem{Title: "地震和海啸造成的损失"}, true)
	assert.Equal(t, core.TierKeyword, res.Tier)
	assert.Equal(t, "地震扩展条款", res.MatchedName)
	assert.InDelta(t, 0.70, res.Score, 1e-9)
}

func TestFuzzyMatchTitleOnly(t *testing.T) {
	m := testMatcher(t, nil)

	res := m.Match(core.ClauseItem{Title: "玻璃破碎附加保障"}, true)
	assert.Equal(t, core.TierFuzzy, res.Tier)
	assert.Equal(t, "玻璃破碎条款", res.MatchedName)
	assert.Greater(t, res.Score, 0.5)
	assert.Equal(t, res.TitleSimilarity, res.Score)
	assert.Zero(t, res.ContentSimilarity)
}

func TestFuzzyMatchBlendsContent(t *testing.T) {
	m := testMatcher(t, nil)

	clause := core.ClauseItem{
		Title:   "玻璃损坏保障",
		Content: "承保玻璃意外破碎，免赔额为500元",
	}
	res := m.Match(clause, false)
	require.Equal(t, core.TierFuzzy, res.Tier)
	assert.Equal(t, "玻璃破碎条款", res.MatchedName)
	assert.Greater(t, res.ContentSimilarity, 0.0)

	blend := titleWeight*res.TitleSimilarity + contentWeight*res.ContentSimilarity
	assert.InDelta(t, blend, res.Score, 1e-9)
}

func TestGapHintOnLowScore(t *testing.T) {
	m := testMatcher(t, nil)

	clause := core.ClauseItem{
		Title:   "玻璃损坏保障",
		Content: "承保玻璃意外破碎，免赔额为500元",
	}
	res := m.Match(clause, false)
	require.Equal(t, core.TierFuzzy, res.Tier)
	require.Less(t, res.Score, 0.6)
	assert.Contains(t, res.CoverageGapHint, "免赔")
	assert.Contains(t, res.CoverageGapHint, "限额")
}

func TestPenaltySuppressesUnrelatedRecord(t *testing.T) {
	lex := lexicon.New()
	norm := textnorm.New(textnorm.WithNoiseWords(lex.NoiseWords()))
	records := []core.LibraryRecord{{Name: "打孔盗气责任条款"}}
	idx := library.BuildIndex(records, lex, norm, nil)
	m := New(idx, lex, norm)

	// The only candidate carries a penalty phrase the client title does
	// not, which pushes its score below zero.
	res := m.Match(core.ClauseItem{Title: "盗气损失条款"}, true)
	assert.Equal(t, core.TierNone, res.Tier)
	assert.Empty(t, res.MatchedName)
}

func TestPenaltyNotAppliedWhenClientMentionsIt(t *testing.T) {
	m := testMatcher(t, nil)

	res := m.Match(core.ClauseItem{Title: "打孔盗气保障条款"}, true)
	assert.Equal(t, core.TierFuzzy, res.Tier)
	assert.Equal(t, "打孔盗气责任条款", res.MatchedName)
}

func TestNoMatchBelowAcceptance(t *testing.T) {
	m := testMatcher(t, nil)

	res := m.Match(core.ClauseItem{Title: "qwertyuiop"}, true)
	assert.Equal(t, core.TierNone, res.Tier)
	assert.Empty(t, res.MatchedName)
	assert.Zero(t, res.Score)
}

func TestQualifierTransplantFromOriginalTitle(t *testing.T) {
	m := testMatcher(t, nil)

	clause := core.ClauseItem{
		Title:         "地震扩展条款",
		OriginalTitle: "Earthquake Extension Clause (Limit: USD 1,000,000)",
	}
	res := m.Match(clause, true)
	require.Equal(t, core.TierExact, res.Tier)
	assert.Equal(t, "地震扩展条款 (Limit: USD 1,000,000)", res.MatchedName)
}

func TestQualifierNotDuplicated(t *testing.T) {
	lex := lexicon.New()
	norm := textnorm.New(textnorm.WithNoiseWords(lex.NoiseWords()))
	records := []core.LibraryRecord{{Name: "地震扩展条款（B款）"}}
	idx := library.BuildIndex(records, lex, norm, nil)
	m := New(idx, lex, norm)

	res := m.Match(core.ClauseItem{Title: "地震扩展条款（B款）"}, true)
	require.Equal(t, core.TierExact, res.Tier)
	assert.Equal(t, "地震扩展条款（B款）", res.MatchedName)
}
