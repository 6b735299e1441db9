package strmetric

// LevenshteinOption configures Levenshtein.
type LevenshteinOption func(*levenshteinConfig)

type levenshteinConfig struct {
	qval     int
	external bool
}

// WithLevenshteinQval sets the element granularity; default 1.
func WithLevenshteinQval(qval int) LevenshteinOption {
	return func(c *levenshteinConfig) { c.qval = qval }
}

// WithLevenshteinExternal enables external-backend dispatch.
func WithLevenshteinExternal(external bool) LevenshteinOption {
	return func(c *levenshteinConfig) { c.external = external }
}

// NewLevenshtein builds the classic edit distance: the minimum number of
// insertions, deletions and substitutions needed to transform one sequence
// into the other. Uses the Wagner-Fischer two-row dynamic program (O(min)
// space), the same approach as the teacher's Distance() but generalized
// from runes to arbitrary tokens so q-gram and word granularity share one
// implementation (spec §4.5).
func NewLevenshtein(opts ...LevenshteinOption) *Base {
	cfg := levenshteinConfig{qval: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Base{
		name:     "levenshtein",
		kind:     KindDistance,
		tok:      Tokenizer{Qval: cfg.qval},
		hasTok:   true,
		external: cfg.external,
		maximum:  maxRuneLen,
		compute: func(_ []string, tok [][]string) (float64, error) {
			return aggregatePairwise(KindDistance, tok, levenshteinPair)
		},
	}
}

func levenshteinPair(a, b []string) (float64, error) {
	return float64(levenshteinTokens(a, b)), nil
}

// levenshteinTokens is the raw integer Levenshtein distance over tokens,
// called through levenshteinPair.
func levenshteinTokens(a, b []string) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	lenA, lenB := len(a), len(b)
	if lenA == 0 {
		return lenB
	}

	prevRow := make([]int, lenA+1)
	currRow := make([]int, lenA+1)
	for i := 0; i <= lenA; i++ {
		prevRow[i] = i
	}

	for j := 1; j <= lenB; j++ {
		currRow[0] = j
		for i := 1; i <= lenA; i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			deletion := currRow[i-1] + 1
			insertion := prevRow[i] + 1
			substitution := prevRow[i-1] + cost

			min := deletion
			if insertion < min {
				min = insertion
			}
			if substitution < min {
				min = substitution
			}
			currRow[i] = min
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[lenA]
}
