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

package storage

import (
	"context"
	"sync"

	"github.com/dachico/clausematch/core"
)

// MemoryRepository is a map-backed TranslationRepository for tests and for
// runs where no cache directory is configured.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[core.Key]*core.Translation
	closed  bool
}

var _ TranslationRepository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		entries: make(map[core.Key]*core.Translation),
	}
}

// GetTranslation returns the cached translation for source.
func (r *MemoryRepository) GetTranslation(_ context.Context, source string) (*core.Translation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, ErrClosed
	}
	t, ok := r.entries[core.KeyFromText(source)]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

// PutTranslation stores a translation keyed by its source text.
func (r *MemoryRepository) PutTranslation(_ context.Context, translation *core.Translation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.entries[core.KeyFromText(translation.Source)] = translation
	return nil
}

// Len returns the number of cached translations.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Close marks the repository closed.
func (r *MemoryRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
