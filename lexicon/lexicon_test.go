package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThresholdOrdering(t *testing.T) {
	th := DefaultThresholds()
	// Intended ordering of the shipped defaults; not mechanically enforced
	// at load time, so pin it here.
	assert.Less(t, th.AcceptMin, th.KeywordMin)
	assert.Less(t, th.KeywordMin, th.SemanticMin)
	assert.LessOrEqual(t, th.SemanticMin, th.ExactMin)
}

func TestLookupVocabulary(t *testing.T) {
	l := New()

	t.Run("exact key", func(t *testing.T) {
		got, ok := l.LookupVocabulary("Reinstatement Value")
		require.True(t, ok)
		assert.Equal(t, "重置价值条款", got)
	})

	t.Run("key contained in term", func(t *testing.T) {
		got, ok := l.LookupVocabulary("earthquake and tsunami clause")
		require.True(t, ok)
		assert.Equal(t, "地震扩展条款", got)
	})

	t.Run("term contained in key", func(t *testing.T) {
		got, ok := l.LookupVocabulary("errors and omissions cl")
		require.True(t, ok)
		assert.Equal(t, "错误和遗漏条款", got)
	})

	t.Run("miss", func(t *testing.T) {
		_, ok := l.LookupVocabulary("marine cargo open cover")
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := l.LookupVocabulary("  ")
		assert.False(t, ok)
	})
}

func TestLookupSemanticAlias(t *testing.T) {
	l := New()

	t.Run("alias inside text", func(t *testing.T) {
		got, ok := l.LookupSemanticAlias("附加露天财产扩展条款")
		require.True(t, ok)
		assert.Equal(t, "露天及简易建筑内存放财产", got)
	})

	t.Run("first match in insertion order wins", func(t *testing.T) {
		// 污染保险 precedes 污染责任 in the default table.
		got, ok := l.LookupSemanticAlias("污染保险与污染责任")
		require.True(t, ok)
		assert.Equal(t, "意外污染责任", got)
	})

	t.Run("miss", func(t *testing.T) {
		_, ok := l.LookupSemanticAlias("机器损坏条款")
		assert.False(t, ok)
	})
}

func TestLookupExactOverride(t *testing.T) {
	l := New()

	t.Run("empty by default", func(t *testing.T) {
		_, ok := l.LookupExactOverride("任意条款")
		assert.False(t, ok)
	})

	t.Run("added override resolves by containment", func(t *testing.T) {
		l.AddExactOverride("扩机条款", "机器损坏扩展条款（2024版）")
		got, ok := l.LookupExactOverride("附加扩机条款请见批单")
		require.True(t, ok)
		assert.Equal(t, "机器损坏扩展条款（2024版）", got)
	})
}

func TestExtractKeywords(t *testing.T) {
	l := New()

	t.Run("multiple groups hit", func(t *testing.T) {
		got := l.ExtractKeywords("地震及海啸导致的火灾损失")
		assert.Equal(t, []string{"地震", "海啸", "火灾"}, got)
	})

	t.Run("english variants hit case-insensitively", func(t *testing.T) {
		got := l.ExtractKeywords("Earthquake and Tsunami Clause")
		assert.Equal(t, []string{"地震", "海啸"}, got)
	})

	t.Run("canonical added once per group", func(t *testing.T) {
		got := l.ExtractKeywords("盗窃、抢劫 theft robbery")
		assert.Equal(t, []string{"盗窃"}, got)
	})

	t.Run("no hits", func(t *testing.T) {
		assert.Empty(t, l.ExtractKeywords("战争罢工除外"))
	})
}

func TestIsPenalized(t *testing.T) {
	l := New()
	assert.True(t, l.IsPenalized("打孔盗气附加条款"))
	assert.False(t, l.IsPenalized("盗窃、抢劫扩展条款"))
}

func TestRuntimeAdditions(t *testing.T) {
	l := New()
	l.AddVocabulary("Machinery Breakdown", "机器损坏条款")

	got, ok := l.LookupVocabulary("machinery breakdown")
	require.True(t, ok)
	assert.Equal(t, "机器损坏条款", got)

	stats := l.Stats()
	assert.Equal(t, len(defaultVocabulary())+1, stats["vocabulary"])
}

func TestLoadMissingFile(t *testing.T) {
	l := Load(filepath.Join(t.TempDir(), "nope.json"))
	// Defaults only.
	assert.Equal(t, DefaultThresholds(), l.Thresholds())
	assert.Equal(t, len(defaultVocabulary()), l.Stats()["vocabulary"])
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	l := Load(path)
	assert.Equal(t, DefaultThresholds(), l.Thresholds())
	assert.Equal(t, len(defaultVocabulary()), l.Stats()["vocabulary"])
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := `{
  "thresholds": {"keyword_min": 0.65},
  "client_en_cn_map": {
    "_comment": "ignored",
    "machinery breakdown": "机器损坏条款",
    "reinstatement value": "重置价值特别条款"
  },
  "exact_clause_map": {"扩机": "机器损坏扩展条款"},
  "penalty_keywords": ["打孔盗气", "盗气"],
  "noise_words": ["特别约定"]
}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	l := Load(path)

	th := l.Thresholds()
	assert.Equal(t, 0.65, th.KeywordMin)
	assert.Equal(t, 0.98, th.ExactMin)

	got, ok := l.LookupVocabulary("machinery breakdown")
	require.True(t, ok)
	assert.Equal(t, "机器损坏条款", got)

	// External entry overrides the default in place.
	got, ok = l.LookupVocabulary("reinstatement value")
	require.True(t, ok)
	assert.Equal(t, "重置价值特别条款", got)

	// Comment keys are dropped.
	_, ok = l.LookupVocabulary("_comment")
	assert.False(t, ok)

	_, ok = l.LookupExactOverride("附加扩机条款")
	assert.True(t, ok)

	// Penalty list is unioned without duplicates.
	assert.True(t, l.IsPenalized("盗气严重"))
	assert.Equal(t, 2, l.Stats()["penalty_keywords"])

	assert.Contains(t, l.NoiseWords(), "特别约定")
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	l := New()
	l.AddVocabulary("machinery breakdown", "机器损坏条款")
	l.AddSemanticAlias("扩机", "机器损坏扩展")
	l.AddExactOverride("指定条款", "指定目标条款")
	require.NoError(t, l.Save(path))

	reloaded := Load(path)

	got, ok := reloaded.LookupVocabulary("machinery breakdown")
	require.True(t, ok)
	assert.Equal(t, "机器损坏条款", got)

	got, ok = reloaded.LookupSemanticAlias("附加扩机扩展")
	require.True(t, ok)
	assert.Equal(t, "机器损坏扩展", got)

	got, ok = reloaded.LookupExactOverride("含指定条款文本")
	require.True(t, ok)
	assert.Equal(t, "指定目标条款", got)

	assert.Equal(t, l.Stats(), reloaded.Stats())
	assert.Equal(t, l.Thresholds(), reloaded.Thresholds())
}
