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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeGapEmptyClientContent(t *testing.T) {
	assert.Empty(t, AnalyzeGap("", "每次事故赔偿限额为十万元"))
	assert.Empty(t, AnalyzeGap("   ", "每次事故赔偿限额为十万元"))
}

func TestAnalyzeGapBothSidesMention(t *testing.T) {
	client := "本条款免赔额为500元，赔偿限额为十万元"
	lib := "免赔额另行约定，最高赔偿限额见保单明细"
	assert.Empty(t, AnalyzeGap(client, lib))
}

func TestAnalyzeGapClientOnly(t *testing.T) {
	got := AnalyzeGap("每次事故免赔额为500元", "承保玻璃意外破碎")
	assert.Equal(t, "客户提及[免赔]但库内未提及", got)
}

func TestAnalyzeGapLibraryOnly(t *testing.T) {
	got := AnalyzeGap("承保玻璃意外破碎", "本条款除外地震损失，观察期为30天")
	assert.Equal(t, "库内包含[除外]但客户未提及 | 库内包含[观察期]但客户未提及", got)
}

func TestAnalyzeGapCaseInsensitiveEnglishTriggers(t *testing.T) {
	got := AnalyzeGap("Sub-LIMIT of USD 50,000 applies", "承保财产一切险")
	assert.Equal(t, "客户提及[限额]但库内未提及", got)
}

func TestAnalyzeGapJoinsInConceptOrder(t *testing.T) {
	client := "免赔额为500元"
	lib := "赔偿限额为十万元"
	assert.Equal(t,
		"库内包含[限额]但客户未提及 | 客户提及[免赔]但库内未提及",
		AnalyzeGap(client, lib))
}
