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


package lexicon

// Built-in tables used when no external configuration file exists.
// An external file overlays these entry by entry; it never replaces a table
// wholesale.

// DefaultThresholds returns the shipped match cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ExactMin:    0.98,
		SemanticMin: 0.85,
		KeywordMin:  0.60,
		FuzzyMin:    0.40,
		AcceptMin:   0.15,
	}
}

func defaultVocabulary() []Entry {
	return []Entry{
		{"interpretation & headings", "通译和标题条款"},
		{"reinstatement value", "重置价值条款"},
		{"reinstatement value clause", "重置价值条款"},
		{"replacement value", "重置价值条款"},
		{"time adjustment", "72小时条款"},
		{"time adjustment (72 hours)", "72小时条款"},
		{"72 hours clause", "72小时条款"},
		{"civil authorities clause", "公共当局扩展条款"},
		{"civil authorities", "公共当局扩展条款"},
		{"public authorities clause", "公共当局扩展条款"},
		{"errors and omissions clause", "错误和遗漏条款"},
		{"errors and omissions", "错误和遗漏条款"},
		{"loss notification clause", "损失通知条款"},
		{"loss notification", "损失通知条款"},
		{"no control clause", "不受控制条款"},
		{"no control", "不受控制条款"},
		{"60 days' notice of cancellation by insurer", "60天通知注销保单条款"},
		{"expediting costs", "加快费用条款"},
		{"all other contents", "其它物品条款"},
		{"alterations, additions and repairs", "变更和维修条款"},
		{"escalation", "自动升值扩展条款"},
		{"automatic reinstatement of sum insured", "自动恢复保险金额条款"},
		{"removal of debris", "清理残骸费用扩展条款"},
		{"strike, riot, civil commotion", "罢工、暴动或民众骚乱条款"},
		{"srcc", "罢工、暴动或民众骚乱条款"},
		{"earthquake and tsunami", "地震扩展条款"},
		{"theft and robbery", "盗窃、抢劫扩展条款"},
		{"professional fees", "专业费用及索赔准备费用条款"},
	}
}

func defaultSemanticAliases() []Entry {
	return []Entry{
		{"污染保险", "意外污染责任"},
		{"污染责任", "意外污染责任"},
		{"露天财产", "露天及简易建筑内存放财产"},
		{"损害防止", "阻止损失"},
		{"施救费用", "阻止损失"},
		{"崩塌沉降", "地面突然下陷下沉"},
		{"地面下陷", "地面突然下陷下沉"},
		{"重置(价值)", "重置价值"},
		{"公共当局", "公共当局扩展"},
	}
}

func defaultKeywordGroups() []GroupEntry {
	return []GroupEntry{
		{"污染", []string{"污染", "意外污染", "pollution"}},
		{"地震", []string{"地震", "震动", "earthquake"}},
		{"海啸", []string{"海啸", "tsunami"}},
		{"盗窃", []string{"盗窃", "盗抢", "抢劫", "burglary", "theft", "robbery"}},
		{"洪水", []string{"洪水", "水灾", "flood"}},
		{"火灾", []string{"火灾", "火险", "fire"}},
		{"重置", []string{"重置", "重建", "reinstatement", "replacement"}},
	}
}

func defaultPenaltyKeywords() []string {
	return []string{"打孔盗气"}
}

func defaultNoiseWords() []string {
	return []string{
		"企业财产保险", "附加", "扩展", "条款", "险",
		"（A款）", "（B款）", "(A款)", "(B款)",
		"2025版", "2024版", "2023版", "版",
		"clause", "extension", "cover", "insurance",
	}
}
