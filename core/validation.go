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

import (
	"fmt"
	"strings"
)

// ValidateClauseItem validates a ClauseItem according to domain rules.
//
// Validation rules:
//   - Title must not be blank
//
// NOT validated:
//   - Content (title-only documents carry no body text)
//   - OriginalTitle (defaulted to Title by the parser)
func ValidateClauseItem(item *ClauseItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidClauseItem)
	}

	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidClauseItem, ErrEmptyTitle)
	}

	return nil
}

// ValidateLibraryRecord validates a LibraryRecord according to domain rules.
//
// Validation rules:
//   - Name must not be blank
//
// NOT validated:
//   - Content (catalogue entries may be name-only)
//   - RegistrationID (optional identifier)
func ValidateLibraryRecord(record *LibraryRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidLibraryRecord)
	}

	if strings.TrimSpace(record.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidLibraryRecord, ErrEmptyRecordName)
	}

	return nil
}
