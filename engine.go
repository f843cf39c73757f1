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

package clausematch

import (
	"context"
	"log/slog"

	"github.com/dachico/clausematch/batch"
	"github.com/dachico/clausematch/core"
	"github.com/dachico/clausematch/lexicon"
	"github.com/dachico/clausematch/library"
	"github.com/dachico/clausematch/mapping"
	"github.com/dachico/clausematch/match"
	"github.com/dachico/clausematch/storage"
	badgerstore "github.com/dachico/clausematch/storage/badger"
	"github.com/dachico/clausematch/textnorm"
	"github.com/dachico/clausematch/translate"
)

// Engine wires the lexicon, normalizer, library index, matcher and batch
// runner into one entry point over a clause catalogue.
type Engine struct {
	lex      *lexicon.Lexicon
	norm     *textnorm.Normalizer
	index    *library.Index
	matcher  *match.Matcher
	runner   *batch.Runner
	backend  *badgerstore.Backend
	mappings *mapping.Store
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	configPath   string
	mappingPath  string
	cachePath    string
	provider     translate.Provider
	poolSize     int
	logger       *slog.Logger
	batchOptions []batch.Option
}

// WithConfigPath loads lexicon tables and thresholds from a JSON file.
// Defaults apply when the file is absent.
func WithConfigPath(path string) EngineOption {
	return func(o *engineOptions) {
		o.configPath = path
	}
}

// WithUserMappings loads curated clause mappings from a JSON file and
// applies them onto the lexicon before matching.
func WithUserMappings(path string) EngineOption {
	return func(o *engineOptions) {
		o.mappingPath = path
	}
}

// WithTranslationCache persists online translations in a BadgerDB at path.
// Without it translations are cached in memory only.
func WithTranslationCache(path string) EngineOption {
	return func(o *engineOptions) {
		o.cachePath = path
	}
}

// WithTranslationProvider enables online translation of foreign titles.
func WithTranslationProvider(provider translate.Provider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithWorkers sets the batch worker pool size.
func WithWorkers(size int) EngineOption {
	return func(o *engineOptions) {
		o.poolSize = size
	}
}

// WithEngineLogger sets a custom logger. Default is slog.Default().
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// NewEngine builds an engine over a clause catalogue.
func NewEngine(records []core.LibraryRecord, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	lex := lexicon.Load(options.configPath, lexicon.WithLogger(logger))

	mappings := mapping.NewStore(mapping.WithLogger(logger))
	if options.mappingPath != "" {
		if err := mappings.Load(options.mappingPath); err != nil {
			return nil, err
		}
		mappings.ApplyTo(lex)
	}

	norm := textnorm.New(textnorm.WithNoiseWords(lex.NoiseWords()))
	index := library.BuildIndex(records, lex, norm, logger)
	matcher := match.New(index, lex, norm, match.WithLogger(logger))

	var backend *badgerstore.Backend
	var repo storage.TranslationRepository
	if options.cachePath != "" {
		var err error
		backend, err = badgerstore.OpenBackend(options.cachePath, false)
		if err != nil {
			return nil, err
		}
		repo = badgerstore.NewTranslationRepository(backend)
	} else {
		repo = storage.NewMemoryRepository()
	}

	translatorOpts := []translate.Option{
		translate.WithRepository(repo),
		translate.WithLogger(logger),
	}
	if options.provider != nil {
		translatorOpts = append(translatorOpts, translate.WithProvider(options.provider))
	}
	translator := translate.New(lex, norm, translatorOpts...)

	runnerOpts := []batch.Option{
		batch.WithTranslator(translator),
		batch.WithLogger(logger),
	}
	if options.poolSize > 0 {
		runnerOpts = append(runnerOpts, batch.WithPoolSize(options.poolSize))
	}
	runnerOpts = append(runnerOpts, options.batchOptions...)

	runner, err := batch.NewRunner(matcher, runnerOpts...)
	if err != nil {
		if backend != nil {
			backend.Close()
		}
		return nil, err
	}

	return &Engine{
		lex:      lex,
		norm:     norm,
		index:    index,
		matcher:  matcher,
		runner:   runner,
		backend:  backend,
		mappings: mappings,
		logger:   logger,
	}, nil
}

// MatchAll resolves a whole clause sequence and returns the ordered report.
func (e *Engine) MatchAll(ctx context.Context, clauses []core.ClauseItem, titleOnly bool) (*batch.Report, error) {
	return e.runner.Run(ctx, clauses, titleOnly)
}

// MatchOne resolves a single clause without translation.
func (e *Engine) MatchOne(clause core.ClauseItem, titleOnly bool) core.MatchResult {
	return e.matcher.Match(clause, titleOnly)
}

// Lexicon exposes the live lexicon for runtime additions.
func (e *Engine) Lexicon() *lexicon.Lexicon {
	return e.lex
}

// Mappings exposes the user mapping store.
func (e *Engine) Mappings() *mapping.Store {
	return e.mappings
}

// Index exposes the built library index.
func (e *Engine) Index() *library.Index {
	return e.index
}

// Close releases the worker pool and the translation cache.
func (e *Engine) Close() error {
	e.runner.Release()
	if e.backend != nil {
		if err := e.backend.Close(); err != nil {
			e.logger.Error("error closing translation cache", "err", err)
			return err
		}
	}
	return nil
}
