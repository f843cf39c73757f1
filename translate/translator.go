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

package translate

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dachico/clausematch/core"
	"github.com/dachico/clausematch/lexicon"
	"github.com/dachico/clausematch/storage"
	"github.com/dachico/clausematch/textnorm"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 3
	defaultRetryDelay  = 500 * time.Millisecond
)

// Translator resolves a foreign clause title to Chinese. Resolution order:
// vocabulary lookup, cached translation, then the online provider. Provider
// failures degrade gracefully; the title passes through untranslated.
type Translator struct {
	lex      *lexicon.Lexicon
	norm     *textnorm.Normalizer
	repo     storage.TranslationRepository
	provider Provider

	timeout     time.Duration
	maxAttempts int
	retryDelay  time.Duration
	logger      *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithRepository sets the translation cache. Nil disables caching.
func WithRepository(repo storage.TranslationRepository) Option {
	return func(t *Translator) {
		t.repo = repo
	}
}

// WithProvider sets the online translation provider. Nil disables online
// translation; vocabulary and cache lookups still apply.
func WithProvider(provider Provider) Option {
	return func(t *Translator) {
		t.provider = provider
	}
}

// WithTimeout bounds a single provider call. Default is 10s.
func WithTimeout(timeout time.Duration) Option {
	return func(t *Translator) {
		if timeout > 0 {
			t.timeout = timeout
		}
	}
}

// WithMaxAttempts sets how many times a failing provider call is retried.
// Default is 3.
func WithMaxAttempts(attempts int) Option {
	return func(t *Translator) {
		if attempts > 0 {
			t.maxAttempts = attempts
		}
	}
}

// WithRetryDelay sets the base backoff delay between attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(t *Translator) {
		if delay > 0 {
			t.retryDelay = delay
		}
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
	}
}

// New creates a Translator.
func New(lex *lexicon.Lexicon, norm *textnorm.Normalizer, opts ...Option) *Translator {
	t := &Translator{
		lex:         lex,
		norm:        norm,
		timeout:     defaultTimeout,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate resolves a title. The second return reports whether the title
// was actually translated; false means it passed through unchanged, either
// because it already reads as Chinese or because every source failed.
func (t *Translator) Translate(ctx context.Context, title string) (string, bool) {
	if !t.norm.LooksForeign(title) {
		return title, false
	}

	normalized := t.norm.Normalize(title)
	if chinese, ok := t.lex.LookupVocabulary(normalized); ok {
		return chinese, true
	}

	if t.repo != nil {
		cached, err := t.repo.GetTranslation(ctx, title)
		if err == nil && cached.Translated != "" {
			return cached.Translated, true
		}
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			t.logger.Warn("translation cache lookup failed", "title", title, "error", err)
		}
	}

	if t.provider == nil {
		return title, false
	}

	translated, err := t.callProvider(ctx, title)
	if err != nil {
		t.logger.Warn("online translation failed", "title", title, "error", err)
		return title, false
	}

	if t.repo != nil {
		entry := &core.Translation{
			Source:     title,
			Translated: translated,
			CreatedAt:  time.Now().UTC(),
		}
		if err := t.repo.PutTranslation(ctx, entry); err != nil {
			t.logger.Warn("translation cache write failed", "title", title, "error", err)
		}
	}
	return translated, true
}

func (t *Translator) callProvider(ctx context.Context, title string) (string, error) {
	var translated string

	err := RetryWithBackoff(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, t.timeout)
		defer cancel()

		out, err := t.provider.TranslateText(callCtx, title)
		if err != nil {
			return err
		}
		out = strings.TrimSpace(out)
		if out == "" {
			return ErrEmptyTranslation
		}
		translated = out
		return nil
	}, t.maxAttempts, t.retryDelay)
	if err != nil {
		return "", err
	}

	t.logger.Debug("title translated online", "title", title, "translated", translated)
	return translated, nil
}
