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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidClauseItem indicates a ClauseItem failed validation.
	ErrInvalidClauseItem = errors.New("invalid clause item")

	// ErrInvalidLibraryRecord indicates a LibraryRecord failed validation.
	ErrInvalidLibraryRecord = errors.New("invalid library record")

	// ErrEmptyTitle indicates the clause Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyRecordName indicates the record Name field is empty.
	ErrEmptyRecordName = errors.New("record name cannot be empty")

	// ErrUnsupportedFormat indicates input data did not match any of the
	// accepted file layouts.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
