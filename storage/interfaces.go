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

	"github.com/dachico/clausematch/core"
)

// TranslationRepository caches title translations across runs.
// Implementations must be safe for concurrent use.
type TranslationRepository interface {
	// GetTranslation returns the cached translation for a source title.
	// Returns ErrNotFound when the title has never been translated.
	GetTranslation(ctx context.Context, source string) (*core.Translation, error)

	// PutTranslation stores or overwrites a translation.
	PutTranslation(ctx context.Context, translation *core.Translation) error

	// Close releases resources held by the repository.
	Close() error
}
