package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromText(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		k1 := KeyFromText("earthquake extension clause")
		k2 := KeyFromText("earthquake extension clause")
		assert.Equal(t, k1, k2)
	})

	t.Run("distinct content distinct keys", func(t *testing.T) {
		k1 := KeyFromText("earthquake extension clause")
		k2 := KeyFromText("flood extension clause")
		assert.NotEqual(t, k1, k2)
	})

	t.Run("empty text has a key", func(t *testing.T) {
		// Stable, just not colliding with common inputs.
		assert.Equal(t, KeyFromText(""), KeyFromText(""))
	})
}

func TestMatchTierString(t *testing.T) {
	assert.Equal(t, "EXACT", TierExact.String())
	assert.Equal(t, "SEMANTIC", TierSemantic.String())
	assert.Equal(t, "KEYWORD", TierKeyword.String())
	assert.Equal(t, "FUZZY", TierFuzzy.String())
	assert.Equal(t, "NONE", TierNone.String())
	assert.Equal(t, "NONE", MatchTier(99).String())
}

func TestNewClauseItem(t *testing.T) {
	item := NewClauseItem("Extra Charges Clause", "body")
	assert.Equal(t, "Extra Charges Clause", item.Title)
	assert.Equal(t, "body", item.Content)
	assert.Equal(t, item.Title, item.OriginalTitle)
}

func TestTierStats(t *testing.T) {
	var stats TierStats
	stats.Count(TierExact)
	stats.Count(TierExact)
	stats.Count(TierSemantic)
	stats.Count(TierKeyword)
	stats.Count(TierFuzzy)
	stats.Count(TierNone)

	assert.Equal(t, 2, stats.Exact)
	assert.Equal(t, 1, stats.Semantic)
	assert.Equal(t, 1, stats.Keyword)
	assert.Equal(t, 1, stats.Fuzzy)
	assert.Equal(t, 1, stats.None)
	assert.Equal(t, 6, stats.Total())
}

func TestValidateClauseItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		item := NewClauseItem("重置价值条款", "")
		require.NoError(t, ValidateClauseItem(&item))
	})

	t.Run("nil", func(t *testing.T) {
		err := ValidateClauseItem(nil)
		assert.ErrorIs(t, err, ErrInvalidClauseItem)
	})

	t.Run("blank title", func(t *testing.T) {
		item := ClauseItem{Title: "   "}
		err := ValidateClauseItem(&item)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})
}

func TestValidateLibraryRecord(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		record := LibraryRecord{Name: "地震扩展条款"}
		require.NoError(t, ValidateLibraryRecord(&record))
	})

	t.Run("nil", func(t *testing.T) {
		err := ValidateLibraryRecord(nil)
		assert.ErrorIs(t, err, ErrInvalidLibraryRecord)
	})

	t.Run("blank name", func(t *testing.T) {
		record := LibraryRecord{Name: " \t "}
		err := ValidateLibraryRecord(&record)
		assert.ErrorIs(t, err, ErrEmptyRecordName)
	})
}
