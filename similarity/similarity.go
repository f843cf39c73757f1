package similarity

import (
	"sync"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/hbollon/go-edlib"
)

const (
	// maxEditDistanceLen is the rune length beyond which the edit-distance
	// component is skipped and only the sequence ratio is used.
	maxEditDistanceLen = 100

	// lengthGapCutoff short-circuits the edit-distance ratio to zero when the
	// length difference exceeds this fraction of the longer string.
	lengthGapCutoff = 0.6

	// memoLimit bounds the distance memo within a run.
	memoLimit = 65536
)

// Engine computes a hybrid [0,1] similarity between two normalized strings:
// the maximum of a sequence-alignment ratio and a length-bounded
// edit-distance ratio. Edit distances are memoized because the fuzzy tier
// re-evaluates nearly identical clause titles across similar catalogue
// entries. Safe for concurrent use.
type Engine struct {
	mu   sync.RWMutex
	memo map[[2]string]int
}

// NewEngine creates a similarity engine with an empty memo.
func NewEngine() *Engine {
	return &Engine{memo: make(map[[2]string]int)}
}

// Similarity returns the hybrid similarity of a and b.
// Either string empty yields 0; identical non-empty strings yield 1.
// The function is symmetric in its arguments.
func (e *Engine) Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)

	seqRatio := sequenceRatio(a, b, lenA, lenB)

	// Edit distance only for short strings; the O(n*m) table dominates
	// otherwise and the sequence ratio carries the comparison.
	if lenA <= maxEditDistanceLen && lenB <= maxEditDistanceLen {
		levRatio := e.levenshteinRatio(a, b, lenA, lenB)
		if levRatio > seqRatio {
			return levRatio
		}
	}

	return seqRatio
}

// sequenceRatio is the symmetric matching-block ratio
// 2*matched/(len(a)+len(b)), with matched taken as the longest common
// subsequence length in runes.
func sequenceRatio(a, b string, lenA, lenB int) float64 {
	lcs := edlib.LCS(a, b)
	return 2 * float64(lcs) / float64(lenA+lenB)
}

func (e *Engine) levenshteinRatio(a, b string, lenA, lenB int) float64 {
	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}
	lenDiff := lenA - lenB
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	if float64(lenDiff) > float64(maxLen)*lengthGapCutoff {
		return 0
	}

	distance := e.distance(a, b)
	return 1 - float64(distance)/float64(maxLen)
}

// distance returns the memoized Levenshtein distance of a and b.
// The key is order-normalized since the distance is symmetric.
func (e *Engine) distance(a, b string) int {
	key := [2]string{a, b}
	if b < a {
		key = [2]string{b, a}
	}

	e.mu.RLock()
	d, ok := e.memo[key]
	e.mu.RUnlock()
	if ok {
		return d
	}

	d = levenshtein.ComputeDistance(a, b)

	e.mu.Lock()
	if len(e.memo) < memoLimit {
		e.memo[key] = d
	}
	e.mu.Unlock()

	return d
}
