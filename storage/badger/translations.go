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

package badger

import (
	"context"
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/dachico/clausematch/core"
	"github.com/dachico/clausematch/storage"
)

// TranslationRepository persists title translations in BadgerDB, keyed by
// a hash of the source text.
type TranslationRepository struct {
	backend *Backend
}

var _ storage.TranslationRepository = (*TranslationRepository)(nil)

// NewTranslationRepository creates a repository over an open backend.
func NewTranslationRepository(backend *Backend) *TranslationRepository {
	return &TranslationRepository{backend: backend}
}

// GetTranslation returns the cached translation for a source title.
func (r *TranslationRepository) GetTranslation(_ context.Context, source string) (*core.Translation, error) {
	var translation *core.Translation

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeTranslationKey(source))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			translation, err = storage.UnmarshalTranslation(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return translation, nil
}

// PutTranslation stores or overwrites a translation.
func (r *TranslationRepository) PutTranslation(_ context.Context, translation *core.Translation) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeTranslationKey(translation.Source)
		if err := tx.Set(key, storage.MarshalTranslation(translation)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close is a no-op; the backend owns the database handle.
func (r *TranslationRepository) Close() error {
	return nil
}
