package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Key is a deterministic 64-bit identifier derived from text content.
// It is used for keying cached translations.
type Key uint64

// KeyFromText generates a deterministic Key from text using BLAKE2b hashing.
// Identical text always produces the identical key.
func KeyFromText(text string) Key {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return Key(binary.LittleEndian.Uint64(sum))
}

// MatchTier identifies which matching strategy produced a result.
// Tiers are tried in strict priority order: exact, semantic, keyword, fuzzy.
type MatchTier int

const (
	// TierNone means no tier produced a qualifying match.
	TierNone MatchTier = iota
	// TierExact is a normalized-name or override table hit.
	TierExact
	// TierSemantic is a semantic alias hit.
	TierSemantic
	// TierKeyword is a shared-keyword overlap hit.
	TierKeyword
	// TierFuzzy is a hybrid string similarity hit.
	TierFuzzy
)

// String returns the tier name used in reports.
func (t MatchTier) String() string {
	switch t {
	case TierExact:
		return "EXACT"
	case TierSemantic:
		return "SEMANTIC"
	case TierKeyword:
		return "KEYWORD"
	case TierFuzzy:
		return "FUZZY"
	default:
		return "NONE"
	}
}

// ClauseItem is one unit of matching input: a clause heading as written by
// the client, with optional body text. OriginalTitle preserves the heading
// before any translation was applied; it defaults to Title.
// A ClauseItem is immutable once built and is consumed read-only.
type ClauseItem struct {
	Title         string
	Content       string
	OriginalTitle string
}

// NewClauseItem creates a ClauseItem with OriginalTitle defaulted to the title.
func NewClauseItem(title, content string) ClauseItem {
	return ClauseItem{Title: title, Content: content, OriginalTitle: title}
}

// LibraryRecord is one catalogue entry in the standardized clause library.
// Records with an empty name are excluded at index-build time.
type LibraryRecord struct {
	Name           string `json:"name"`
	Content        string `json:"content"`
	RegistrationID string `json:"registration_id"`
}

// MatchResult is the per-clause output of the matcher.
// It is constructed fresh per input clause and never mutated after return.
type MatchResult struct {
	MatchedName           string    `json:"matched_name"`
	MatchedContent        string    `json:"matched_content"`
	MatchedRegistrationID string    `json:"matched_registration_id"`
	Score                 float64   `json:"score"`
	TitleSimilarity       float64   `json:"title_similarity"`
	ContentSimilarity     float64   `json:"content_similarity"`
	Tier                  MatchTier `json:"match_tier"`
	CoverageGapHint       string    `json:"coverage_gap_hint,omitempty"`
}

// TierStats aggregates per-tier match counters for a batch summary.
type TierStats struct {
	Exact    int `json:"exact"`
	Semantic int `json:"semantic"`
	Keyword  int `json:"keyword"`
	Fuzzy    int `json:"fuzzy"`
	None     int `json:"none"`
}

// Count adds one result's tier to the stats.
func (s *TierStats) Count(tier MatchTier) {
	switch tier {
	case TierExact:
		s.Exact++
	case TierSemantic:
		s.Semantic++
	case TierKeyword:
		s.Keyword++
	case TierFuzzy:
		s.Fuzzy++
	default:
		s.None++
	}
}

// Total returns the number of counted results.
func (s *TierStats) Total() int {
	return s.Exact + s.Semantic + s.Keyword + s.Fuzzy + s.None
}

// Translation is a cached result from the external translation provider.
type Translation struct {
	Source     string
	Translated string
	CreatedAt  time.Time
}
