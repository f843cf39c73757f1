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
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/dachico/clausematch/core"
)

// MarshalTranslation serializes a Translation to bytes.
// Layout: source, translated text, creation time as Unix microseconds.
func MarshalTranslation(t *core.Translation) []byte {
	micros := t.CreatedAt.UnixMicro()
	buf := make([]byte, ord.String.Size(t.Source)+ord.String.Size(t.Translated)+varint.Int64.Size(micros))
	n := ord.String.Marshal(t.Source, buf)
	n += ord.String.Marshal(t.Translated, buf[n:])
	varint.Int64.Marshal(micros, buf[n:])
	return buf
}

// UnmarshalTranslation deserializes a Translation from bytes.
func UnmarshalTranslation(data []byte) (*core.Translation, error) {
	source, n, err := ord.String.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	translated, m, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}
	micros, _, err := varint.Int64.Unmarshal(data[n+m:])
	if err != nil {
		return nil, err
	}
	return &core.Translation{
		Source:     source,
		Translated: translated,
		CreatedAt:  time.UnixMicro(micros).UTC(),
	}, nil
}
