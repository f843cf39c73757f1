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

// Package segment groups a flat paragraph sequence into clauses. Documents
// with blank separator lines split on those; densely packed documents fall
// back to a title-boundary heuristic.
package segment

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/dachico/clausematch/core"
)

// smartSplitBelow is the blank-line ratio under which the document is
// treated as having no reliable separators.
const smartSplitBelow = 0.05

const maxTitleRunes = 80

var titleIndicators = []string{"条款", "Clause", "Extension", "险", "CLAUSE", "EXTENSION"}

// Segment groups paragraphs into clauses. Each clause takes its first line
// as the title and the remaining lines as content. The second return is
// true when no clause has body content, which switches matching to
// title-only scoring.
func Segment(paragraphs []string) ([]core.ClauseItem, bool) {
	lines := make([]string, len(paragraphs))
	empty := 0
	for i, p := range paragraphs {
		lines[i] = strings.TrimSpace(p)
		if lines[i] == "" {
			empty++
		}
	}

	smart := len(lines) > 0 && float64(empty)/float64(len(lines)) < smartSplitBelow
	slog.Debug("segmenting paragraphs", "lines", len(lines), "empty", empty, "smart", smart)

	var clauses []core.ClauseItem
	if smart {
		clauses = splitOnTitles(lines)
	} else {
		clauses = splitOnBlankLines(lines)
	}

	titleOnly := true
	for _, c := range clauses {
		if c.Content != "" {
			titleOnly = false
			break
		}
	}
	return clauses, titleOnly
}

func splitOnBlankLines(lines []string) []core.ClauseItem {
	var clauses []core.ClauseItem
	var block []string

	for _, text := range lines {
		if text != "" {
			block = append(block, text)
		} else if len(block) > 0 {
			clauses = append(clauses, blockToClause(block))
			block = nil
		}
	}
	if len(block) > 0 {
		clauses = append(clauses, blockToClause(block))
	}
	return clauses
}

func splitOnTitles(lines []string) []core.ClauseItem {
	var clauses []core.ClauseItem
	var block []string

	for _, text := range lines {
		if text == "" {
			continue
		}
		if len(block) > 0 && isLikelyTitle(text) {
			clauses = append(clauses, blockToClause(block))
			block = []string{text}
		} else {
			block = append(block, text)
		}
	}
	if len(block) > 0 {
		clauses = append(clauses, blockToClause(block))
	}
	return clauses
}

func blockToClause(block []string) core.ClauseItem {
	return core.NewClauseItem(block[0], strings.Join(block[1:], "\n"))
}

// isLikelyTitle decides whether a line starts a new clause. Long lines and
// lines ending in sentence-final punctuation read as body text; clause
// indicator keywords and all-caps headers read as titles, as does any other
// short line without a terminal.
func isLikelyTitle(text string) bool {
	if len([]rune(text)) > maxTitleRunes {
		return false
	}
	for _, suffix := range []string{"。", "；", ".", ";"} {
		if strings.HasSuffix(text, suffix) {
			return false
		}
	}
	for _, kw := range titleIndicators {
		if strings.Contains(text, kw) {
			return true
		}
	}
	if isAllUpper(text) && len([]rune(text)) > 5 {
		return true
	}
	return true
}

func isAllUpper(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
