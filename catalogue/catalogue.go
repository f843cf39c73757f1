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

// Package catalogue loads the standardized clause library from JSON or CSV
// files. It only parses; filtering and indexing happen in package library.
package catalogue

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dachico/clausematch/core"
)

// LoadJSON reads library records from a JSON file. Both a bare array and a
// {"records": [...]} wrapper are accepted. An empty catalogue is valid and
// yields an empty slice; every clause then resolves to no match.
func LoadJSON(path string) ([]core.LibraryRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}

	var records []core.LibraryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		var wrapped struct {
			Records []core.LibraryRecord `json:"records"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("parse catalogue %s: %w", path, err)
		}
		records = wrapped.Records
	}
	return records, nil
}

// LoadCSV reads library records from a CSV file with columns
// name,content,registration_id. A header row is detected by its first cell
// and skipped. Rows with a blank name are dropped.
func LoadCSV(path string) ([]core.LibraryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var records []core.LibraryRecord
	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse catalogue %s: %w", path, err)
		}

		if first {
			first = false
			if isHeaderRow(row) {
				continue
			}
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		rec := core.LibraryRecord{Name: strings.TrimSpace(row[0])}
		if len(row) > 1 {
			rec.Content = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			rec.RegistrationID = strings.TrimSpace(row[2])
		}
		records = append(records, rec)
	}
	return records, nil
}

func isHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	head := strings.ToLower(strings.TrimSpace(row[0]))
	return head == "name" || head == "条款名称"
}
