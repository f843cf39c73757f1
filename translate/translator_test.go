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

package translate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dachico/clausematch/core"
	"github.com/dachico/clausematch/lexicon"
	"github.com/dachico/clausematch/storage"
	"github.com/dachico/clausematch/textnorm"
	"github.com/dachico/clausematch/translate"
	"github.com/dachico/clausematch/translate/mock"
)

func newTranslator(t *testing.T, opts ...translate.Option) *translate.Translator {
	t.Helper()
	lex := lexicon.New()
	norm := textnorm.New(textnorm.WithNoiseWords(lex.NoiseWords()))
	return translate.New(lex, norm, opts...)
}

func TestChineseTitlePassesThrough(t *testing.T) {
	provider := mock.NewMockProvider()
	tr := newTranslator(t, translate.WithProvider(provider))

	got, translated := tr.Translate(context.Background(), "地震扩展条款")
	assert.Equal(t, "地震扩展条款", got)
	assert.False(t, translated)
	assert.Zero(t, provider.CallCount())
}

func TestShortTitleNeverForeign(t *testing.T) {
	tr := newTranslator(t)

	got, translated := tr.Translate(context.Background(), "abc")
	assert.Equal(t, "abc", got)
	assert.False(t, translated)
}

func TestVocabularyHitSkipsProvider(t *testing.T) {
	provider := mock.NewMockProvider()
	tr := newTranslator(t, translate.WithProvider(provider))

	got, translated := tr.Translate(context.Background(), "Errors and Omissions Clause")
	assert.Equal(t, "错误和遗漏条款", got)
	assert.True(t, translated)
	assert.Zero(t, provider.CallCount())
}

func TestCacheHitSkipsProvider(t *testing.T) {
	repo := storage.NewMemoryRepository()
	provider := mock.NewMockProvider()
	ctx := context.Background()

	require.NoError(t, repo.PutTranslation(ctx, &core.Translation{
		Source:     "Machinery Breakdown Extension",
		Translated: "机器损坏扩展条款",
		CreatedAt:  time.Now().UTC(),
	}))

	tr := newTranslator(t, translate.WithRepository(repo), translate.WithProvider(provider))
	got, translated := tr.Translate(ctx, "Machinery Breakdown Extension")
	assert.Equal(t, "机器损坏扩展条款", got)
	assert.True(t, translated)
	assert.Zero(t, provider.CallCount())
}

func TestProviderResultIsCached(t *testing.T) {
	repo := storage.NewMemoryRepository()
	provider := mock.NewMockProvider()
	provider.Responses["Business Interruption Extension"] = "营业中断扩展条款"

	tr := newTranslator(t, translate.WithRepository(repo), translate.WithProvider(provider))
	ctx := context.Background()

	got, translated := tr.Translate(ctx, "Business Interruption Extension")
	assert.Equal(t, "营业中断扩展条款", got)
	assert.True(t, translated)
	assert.Equal(t, 1, provider.CallCount())

	// Second resolution comes from the cache.
	got, translated = tr.Translate(ctx, "Business Interruption Extension")
	assert.Equal(t, "营业中断扩展条款", got)
	assert.True(t, translated)
	assert.Equal(t, 1, provider.CallCount())
}

func TestProviderFailureDegradesGracefully(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.TranslateTextFunc = func(ctx context.Context, text string) (string, error) {
		return "", errors.New("connection refused")
	}

	tr := newTranslator(t,
		translate.WithProvider(provider),
		translate.WithMaxAttempts(2),
		translate.WithRetryDelay(time.Millisecond))

	got, translated := tr.Translate(context.Background(), "Machinery Breakdown Extension")
	assert.Equal(t, "Machinery Breakdown Extension", got)
	assert.False(t, translated)
	assert.Equal(t, 2, provider.CallCount())
}

func TestNoProviderPassesThrough(t *testing.T) {
	tr := newTranslator(t)

	got, translated := tr.Translate(context.Background(), "Machinery Breakdown Extension")
	assert.Equal(t, "Machinery Breakdown Extension", got)
	assert.False(t, translated)
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	provider := mock.NewMockProvider()
	attempts := 0
	provider.TranslateTextFunc = func(ctx context.Context, text string) (string, error) {
		attempts++
		if attempts == 1 {
			return "", errors.New("timeout")
		}
		return "营业中断扩展条款", nil
	}

	tr := newTranslator(t,
		translate.WithProvider(provider),
		translate.WithRetryDelay(time.Millisecond))

	got, translated := tr.Translate(context.Background(), "Business Interruption Extension")
	assert.Equal(t, "营业中断扩展条款", got)
	assert.True(t, translated)
	assert.Equal(t, 2, attempts)
}

func TestRetryWithBackoffInvalidAttempts(t *testing.T) {
	err := translate.RetryWithBackoff(context.Background(), func() error { return nil }, 0, time.Millisecond)
	assert.ErrorIs(t, err, translate.ErrInvalidMaxAttempts)
}

func TestRetryWithBackoffHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := translate.RetryWithBackoff(ctx, func() error { return errors.New("boom") }, 3, time.Millisecond)
	assert.ErrorIs(t, err, context.Canceled)
}
