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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dachico/clausematch/core"
)

func TestTranslationRoundTrip(t *testing.T) {
	want := &core.Translation{
		Source:     "Removal of Debris Clause",
		Translated: "清理残骸费用扩展条款",
		CreatedAt:  time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
	}

	got, err := UnmarshalTranslation(MarshalTranslation(want))
	require.NoError(t, err)
	assert.Equal(t, want.Source, got.Source)
	assert.Equal(t, want.Translated, got.Translated)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestUnmarshalTranslationTruncated(t *testing.T) {
	data := MarshalTranslation(&core.Translation{
		Source:     "Escalation Clause",
		Translated: "自动升值扩展条款",
		CreatedAt:  time.Now().UTC(),
	})

	_, err := UnmarshalTranslation(data[:3])
	assert.Error(t, err)
}

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetTranslation(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	entry := &core.Translation{Source: "No Control Clause", Translated: "不受控制条款", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.PutTranslation(ctx, entry))
	assert.Equal(t, 1, repo.Len())

	got, err := repo.GetTranslation(ctx, "No Control Clause")
	require.NoError(t, err)
	assert.Equal(t, "不受控制条款", got.Translated)

	require.NoError(t, repo.Close())
	_, err = repo.GetTranslation(ctx, "No Control Clause")
	assert.ErrorIs(t, err, ErrClosed)
}
