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

// Package batch drives clause matching over whole documents. Clauses are
// translated and matched on a worker pool; output order always follows
// input order regardless of pool size.
package batch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/dachico/clausematch/core"
	"github.com/dachico/clausematch/match"
	"github.com/dachico/clausematch/translate"
)

// Entry is the per-clause outcome in a batch report.
type Entry struct {
	Index           int              `json:"index"`
	OriginalTitle   string           `json:"original_title"`
	TranslatedTitle string           `json:"translated_title"`
	Translated      bool             `json:"translated"`
	Result          core.MatchResult `json:"result"`
}

// Report is the ordered result of one batch run.
type Report struct {
	Entries []Entry        `json:"entries"`
	Stats   core.TierStats `json:"stats"`
}

// Runner matches a clause sequence concurrently.
type Runner struct {
	matcher    *match.Matcher
	translator *translate.Translator
	pool       *ants.Pool
	progress   *ProgressTracker
	logger     *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Runner) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithTranslator enables per-clause title translation before matching.
func WithTranslator(translator *translate.Translator) Option {
	return func(r *Runner) error {
		r.translator = translator
		return nil
	}
}

// WithProgress attaches a progress tracker updated as clauses complete.
func WithProgress(progress *ProgressTracker) Option {
	return func(r *Runner) error {
		r.progress = progress
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRunner creates a batch runner over a matcher.
func NewRunner(matcher *match.Matcher, opts ...Option) (*Runner, error) {
	if matcher == nil {
		return nil, ErrMatcherRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		matcher: matcher,
		pool:    pool,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}
	return r, nil
}

// Run matches every clause and returns an ordered report. Cancellation is
// checked between submissions; clauses already submitted finish, and the
// partial report is returned together with the context error.
func (r *Runner) Run(ctx context.Context, clauses []core.ClauseItem, titleOnly bool) (*Report, error) {
	entries := make([]Entry, len(clauses))
	var wg sync.WaitGroup

	if r.progress != nil {
		r.progress.Start(len(clauses))
	}

	var runErr error
	for i, clause := range clauses {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
		}
		if runErr != nil {
			break
		}

		wg.Add(1)
		i, clause := i, clause
		if err := r.pool.Submit(func() {
			defer wg.Done()
			entries[i] = r.process(ctx, i, clause, titleOnly)
			if r.progress != nil {
				r.progress.Increment(1)
			}
		}); err != nil {
			wg.Done()
			runErr = err
			break
		}
	}
	wg.Wait()

	if r.progress != nil {
		r.progress.Finish()
	}

	report := &Report{Entries: entries}
	for _, e := range entries {
		report.Stats.Count(e.Result.Tier)
	}

	r.logger.Info("batch finished",
		"clauses", len(clauses),
		"exact", report.Stats.Exact,
		"semantic", report.Stats.Semantic,
		"keyword", report.Stats.Keyword,
		"fuzzy", report.Stats.Fuzzy,
		"unmatched", report.Stats.None)
	return report, runErr
}

func (r *Runner) process(ctx context.Context, index int, clause core.ClauseItem, titleOnly bool) Entry {
	title := clause.Title
	translated := false

	if r.translator != nil {
		if out, ok := r.translator.Translate(ctx, clause.Title); ok {
			title = out
			translated = true
		}
	}

	work := core.ClauseItem{
		Title:         title,
		Content:       clause.Content,
		OriginalTitle: clause.OriginalTitle,
	}
	if work.OriginalTitle == "" {
		work.OriginalTitle = clause.Title
	}

	return Entry{
		Index:           index,
		OriginalTitle:   clause.Title,
		TranslatedTitle: title,
		Translated:      translated,
		Result:          r.matcher.Match(work, titleOnly),
	}
}

// Release shuts down the worker pool. The runner must not be used after.
func (r *Runner) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}
