package lexicon

import (
	"log/slog"
	"strings"
	"sync"
)

// Thresholds holds the numeric match cutoffs, ordered from strictest tier
// down to the floor below which a result counts as no match.
//
// FuzzyMin is carried for configuration compatibility but is not enforced as
// a gate; AcceptMin is the operative fuzzy floor.
type Thresholds struct {
	ExactMin    float64 `json:"exact_min"`
	SemanticMin float64 `json:"semantic_min"`
	KeywordMin  float64 `json:"keyword_min"`
	FuzzyMin    float64 `json:"fuzzy_min"`
	AcceptMin   float64 `json:"accept_min"`
}

// Lexicon is the controlled vocabulary and matching policy store: the
// English-to-Chinese vocabulary, semantic alias table, keyword extraction
// groups, curated exact-override table, penalty phrases, noise phrases, and
// thresholds. All tables iterate in insertion order, which makes
// substring-containment lookups deterministic.
//
// A Lexicon is read-mostly: matching only reads, while runtime additions
// (new vocabulary learned from the operator) take the write lock and can be
// persisted back with Save.
type Lexicon struct {
	mu         sync.RWMutex
	thresholds Thresholds
	vocabulary *orderedMap
	aliases    *orderedMap
	overrides  *orderedMap
	keywords   *orderedGroups
	penalties  []string
	noise      []string
	logger     *slog.Logger
}

// Option configures a Lexicon.
type Option func(*Lexicon)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lexicon) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// New creates a Lexicon preloaded with the built-in default tables.
func New(opts ...Option) *Lexicon {
	l := &Lexicon{
		thresholds: DefaultThresholds(),
		vocabulary: orderedFromPairs(defaultVocabulary()),
		aliases:    orderedFromPairs(defaultSemanticAliases()),
		overrides:  newOrderedMap(),
		keywords:   groupsFromPairs(defaultKeywordGroups()),
		penalties:  defaultPenaltyKeywords(),
		noise:      defaultNoiseWords(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Thresholds returns the current match cutoffs.
func (l *Lexicon) Thresholds() Thresholds {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.thresholds
}

// NoiseWords returns a copy of the configured noise phrases.
func (l *Lexicon) NoiseWords() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.noise...)
}

// LookupVocabulary resolves a source term via the controlled vocabulary.
// The term is matched case-insensitively on its trimmed lowercase form:
// first an exact key lookup, then a substring scan where a dictionary key
// contained in the term, or the term contained in a key, also resolves.
// First match in insertion order wins.
func (l *Lexicon) LookupVocabulary(term string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(term))
	if key == "" {
		return "", false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if v, ok := l.vocabulary.Get(key); ok {
		return v, true
	}
	for _, e := range l.vocabulary.Entries() {
		if strings.Contains(key, e.Key) || strings.Contains(e.Key, key) {
			return e.Value, true
		}
	}
	return "", false
}

// LookupSemanticAlias returns the canonical concept for the first alias key
// contained anywhere in text. The containment check is raw, not normalized.
func (l *Lexicon) LookupSemanticAlias(text string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, e := range l.aliases.Entries() {
		if strings.Contains(text, e.Key) {
			return e.Value, true
		}
	}
	return "", false
}

// LookupExactOverride checks the curated override table, which takes
// priority over every other tier. Same first-match containment semantics as
// semantic aliases.
func (l *Lexicon) LookupExactOverride(text string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, e := range l.overrides.Entries() {
		if strings.Contains(text, e.Key) {
			return e.Value, true
		}
	}
	return "", false
}

// ExtractKeywords returns the canonical keywords whose variant lists have at
// least one case-insensitive substring hit in text, in group insertion order.
func (l *Lexicon) ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)

	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []string
	for _, g := range l.keywords.Entries() {
		for _, v := range g.Variants {
			if strings.Contains(lower, strings.ToLower(v)) {
				out = append(out, g.Key)
				break
			}
		}
	}
	return out
}

// IsPenalized reports whether any configured penalty phrase occurs in text.
func (l *Lexicon) IsPenalized(text string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, kw := range l.penalties {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// AddVocabulary merges a new vocabulary entry into the live table.
// The source term is keyed on its trimmed lowercase form.
func (l *Lexicon) AddVocabulary(source, canonical string) {
	key := strings.ToLower(strings.TrimSpace(source))
	if key == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.vocabulary.Set(key, canonical)
}

// AddSemanticAlias merges a new alias into the live table.
func (l *Lexicon) AddSemanticAlias(alias, target string) {
	if alias == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.aliases.Set(alias, target)
}

// AddExactOverride merges a new entry into the curated override table.
func (l *Lexicon) AddExactOverride(source, target string) {
	if source == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.overrides.Set(source, target)
}

// Stats returns per-table entry counts.
func (l *Lexicon) Stats() map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return map[string]int{
		"vocabulary":       l.vocabulary.Len(),
		"semantic_aliases": l.aliases.Len(),
		"keyword_groups":   l.keywords.Len(),
		"exact_overrides":  l.overrides.Len(),
		"penalty_keywords": len(l.penalties),
		"noise_words":      len(l.noise),
	}
}
