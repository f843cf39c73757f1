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

package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dachico/clausematch/core"
	"github.com/dachico/clausematch/lexicon"
	"github.com/dachico/clausematch/textnorm"
)

func testIndex(t *testing.T, records []core.LibraryRecord) *Index {
	t.Helper()
	lex := lexicon.New()
	norm := textnorm.New(textnorm.WithNoiseWords(lex.NoiseWords()))
	return BuildIndex(records, lex, norm, nil)
}

func TestBuildIndexSkipsBlankNames(t *testing.T) {
	idx := testIndex(t, []core.LibraryRecord{
		{Name: "地震扩展条款", Content: "扩展承保地震造成的损失"},
		{Name: "   "},
		{Name: "洪水扩展条款"},
	})

	require.Equal(t, 2, idx.Len())
	assert.Equal(t, "地震扩展条款", idx.Record(0).Name)
	assert.Equal(t, "洪水扩展条款", idx.Record(1).Name)
}

func TestLookupName(t *testing.T) {
	idx := testIndex(t, []core.LibraryRecord{
		{Name: "地震扩展条款"},
		{Name: "盗窃扩展条款"},
	})

	norm := textnorm.New(textnorm.WithNoiseWords(lexicon.New().NoiseWords()))

	i, ok := idx.LookupName(norm.Normalize("地震扩展条款"))
	require.True(t, ok)
	assert.Equal(t, 0, i)

	// Cleaned form (noise words stripped) resolves too.
	i, ok = idx.LookupName(norm.CleanTitle("盗窃扩展条款"))
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = idx.LookupName("不存在的条款")
	assert.False(t, ok)
}

func TestLookupNameLastRecordWins(t *testing.T) {
	idx := testIndex(t, []core.LibraryRecord{
		{Name: "地震扩展条款", RegistrationID: "A"},
		{Name: "地震 扩展 条款", RegistrationID: "B"},
	})

	// Both names clean to the same form; the later record takes the slot.
	norm := textnorm.New(textnorm.WithNoiseWords(lexicon.New().NoiseWords()))
	i, ok := idx.LookupName(norm.CleanTitle("地震 扩展 条款"))
	require.True(t, ok)
	assert.Equal(t, "B", idx.Record(i).RegistrationID)

	// A fully identical duplicate name also resolves to the later record.
	dup := testIndex(t, []core.LibraryRecord{
		{Name: "重复条款", RegistrationID: "C"},
		{Name: "重复条款", RegistrationID: "D"},
	})
	i, ok = dup.LookupName(norm.Normalize("重复条款"))
	require.True(t, ok)
	assert.Equal(t, "D", dup.Record(i).RegistrationID)
}

func TestKeywordsAndCandidates(t *testing.T) {
	idx := testIndex(t, []core.LibraryRecord{
		{Name: "地震及海啸扩展条款"},
		{Name: "盗窃扩展条款"},
		{Name: "海啸责任条款"},
	})

	assert.Equal(t, []string{"地震", "海啸"}, idx.Keywords(0))
	assert.Equal(t, []string{"盗窃"}, idx.Keywords(1))

	// Union over both keywords, deduplicated, catalogue order.
	assert.Equal(t, []int{0, 2}, idx.Candidates([]string{"海啸", "地震"}))
	assert.Equal(t, []int{1}, idx.Candidates([]string{"盗窃"}))
	assert.Empty(t, idx.Candidates(nil))
	assert.Empty(t, idx.Candidates([]string{"不相干"}))
}

func TestPenalized(t *testing.T) {
	idx := testIndex(t, []core.LibraryRecord{
		{Name: "打孔盗气责任条款"},
		{Name: "地震扩展条款"},
	})

	assert.True(t, idx.Penalized(0))
	assert.False(t, idx.Penalized(1))
}
