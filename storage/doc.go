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

// Package storage defines the persistence contract for the translation
// cache together with its binary serialization. The badger subpackage
// provides the production implementation:
//
//	repo, err := badger.NewTranslationRepository(backend)
//
// In-memory repositories for testing come from badger.OpenBackend("", true)
// or the lightweight NewMemoryRepository in this package.
package storage
