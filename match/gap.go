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

package match

import "strings"

// gapConcept is one coverage concept probed on both sides of a low-scoring
// match.
type gapConcept struct {
	label    string
	triggers []string
}

// Concept order fixes the hint order in the output.
var gapConcepts = []gapConcept{
	{"限额", []string{"Limit", "限额", "最高", "limit"}},
	{"免赔", []string{"Deductible", "Excess", "免赔", "deductible"}},
	{"除外", []string{"Exclusion", "除外", "不负责", "exclusion"}},
	{"观察期", []string{"Waiting Period", "观察期", "等待期"}},
	{"赔偿期", []string{"Indemnity Period", "赔偿期间"}},
}

// AnalyzeGap compares raw clause contents and reports coverage concepts
// present on one side only. Hints are joined with " | ". Empty client
// content yields no hints.
func AnalyzeGap(clientContent, libraryContent string) string {
	if strings.TrimSpace(clientContent) == "" {
		return ""
	}

	clientLower := strings.ToLower(clientContent)
	libraryLower := strings.ToLower(libraryContent)

	var hints []string
	for _, c := range gapConcepts {
		clientHas := containsAny(clientLower, c.triggers)
		libraryHas := containsAny(libraryLower, c.triggers)
		switch {
		case clientHas && !libraryHas:
			hints = append(hints, "客户提及["+c.label+"]但库内未提及")
		case !clientHas && libraryHas:
			hints = append(hints, "库内包含["+c.label+"]但客户未提及")
		}
	}
	return strings.Join(hints, " | ")
}

func containsAny(lower string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
