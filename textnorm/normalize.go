package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

// defaultForeignThreshold is the CJK fraction below which a title is treated
// as foreign and eligible for translation.
const defaultForeignThreshold = 0.15

var (
	quoteBracketRe = regexp.MustCompile(`['"‘’“”()（）\[\]【】]`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	bracketSpanRe  = regexp.MustCompile(`[(（][^)）]*[)）]`)
	digitSpaceRe   = regexp.MustCompile(`[0-9\s]+`)
	digitRe        = regexp.MustCompile(`[0-9]+`)
)

// Normalizer canonicalizes raw clause text into comparable forms.
// The zero value works; noise phrases come from the lexicon configuration.
type Normalizer struct {
	noiseWords       []string
	noisePatterns    []*regexp.Regexp
	foreignThreshold float64
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithNoiseWords sets the noise phrases removed by CleanTitle.
func WithNoiseWords(words []string) Option {
	return func(n *Normalizer) {
		n.noiseWords = words
	}
}

// WithForeignThreshold overrides the CJK fraction below which text is
// classified as foreign. Default is 0.15.
func WithForeignThreshold(threshold float64) Option {
	return func(n *Normalizer) {
		if threshold > 0 {
			n.foreignThreshold = threshold
		}
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{foreignThreshold: defaultForeignThreshold}
	for _, opt := range opts {
		opt(n)
	}
	n.noisePatterns = make([]*regexp.Regexp, len(n.noiseWords))
	for i, w := range n.noiseWords {
		n.noisePatterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(w))
	}
	return n
}

// Normalize lowercases, strips quote and bracket characters, and collapses
// whitespace runs to a single space. Empty input yields an empty string.
func (n *Normalizer) Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = quoteBracketRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return text
}

// CleanTitle prepares a clause title for title-vs-title comparison: removes
// parenthesized spans (ASCII and full-width), removes every configured noise
// phrase and its lowercase form, then strips all digits and whitespace.
// The result is for comparison only, never display.
func (n *Normalizer) CleanTitle(text string) string {
	text = bracketSpanRe.ReplaceAllString(text, "")
	for _, re := range n.noisePatterns {
		text = re.ReplaceAllString(text, "")
	}
	text = digitSpaceRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// CleanContent prepares body text for content comparison: removes
// parenthesized spans and strips whitespace and digits. Noise phrases are
// kept; content comparison is less tolerant of vocabulary drift.
func (n *Normalizer) CleanContent(text string) string {
	text = bracketSpanRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, "")
	text = digitRe.ReplaceAllString(text, "")
	return text
}

// ExtractBracketed returns every parenthesized substring of text, brackets
// included, concatenated with a single space in original order. Empty string
// when none. Used to transplant limit or deductible qualifiers from the
// client title onto the matched canonical name.
func (n *Normalizer) ExtractBracketed(text string) string {
	matches := bracketSpanRe.FindAllString(text, -1)
	return strings.Join(matches, " ")
}

// LooksForeign reports whether a title should be routed through translation.
// Text up to three runes is never foreign; otherwise text is foreign when the
// fraction of CJK runes falls below the configured threshold.
func (n *Normalizer) LooksForeign(text string) bool {
	runes := []rune(text)
	if len(runes) <= 3 {
		return false
	}
	cjk := 0
	for _, r := range runes {
		if unicode.Is(unicode.Han, r) {
			cjk++
		}
	}
	return float64(cjk) < float64(len(runes))*n.foreignThreshold
}
