package strmetric

// SequenceOption configures the LCS family and Ratcliff-Obershelp.
type SequenceOption func(*sequenceConfig)

type sequenceConfig struct {
	qval     int
	external bool
}

// WithSequenceQval sets the element granularity; default 1.
func WithSequenceQval(qval int) SequenceOption {
	return func(c *sequenceConfig) { c.qval = qval }
}

// WithSequenceExternal enables external-backend dispatch.
func WithSequenceExternal(external bool) SequenceOption {
	return func(c *sequenceConfig) { c.external = external }
}

// NewLCSSeq builds the longest-common-subsequence similarity (spec §4.7):
// native value is the subsequence's length. Two inputs use DP plus
// traceback; three or more fold the running subsequence against each
// further input in turn ("recursive pairwise narrowing").
func NewLCSSeq(opts ...SequenceOption) *Base {
	cfg := sequenceConfig{qval: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:     "lcsseq",
		kind:     KindSimilarity,
		tok:      Tokenizer{Qval: cfg.qval},
		hasTok:   true,
		external: cfg.external,
		maximum:  maxRuneLen,
		compute: func(_ []string, tok [][]string) (float64, error) {
			running := tok[0]
			for _, next := range tok[1:] {
				running = lcsSeqTokens(running, next)
			}
			return float64(len(running)), nil
		},
	}
}

// lcsSeqTokens returns the (one) longest common subsequence of a and b via
// the standard DP-plus-traceback construction.
func lcsSeqTokens(a, b []string) []string {
	lenA, lenB := len(a), len(b)
	dp := make([][]int, lenA+1)
	for i := range dp {
		dp[i] = make([]int, lenB+1)
	}
	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	out := make([]string, dp[lenA][lenB])
	i, j, k := lenA, lenB, len(out)-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out[k] = a[i-1]
			i--
			j--
			k--
		case dp[i-1][j] >= dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return out
}

// NewLCSStr builds the longest-common-substring similarity (spec §4.7).
// Two short inputs use a standard DP best-match search; otherwise (or for
// three or more inputs) it falls back to scanning the shortest input's
// n-grams from longest to shortest until one occurs in every input.
func NewLCSStr(opts ...SequenceOption) *Base {
	cfg := sequenceConfig{qval: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:     "lcsstr",
		kind:     KindSimilarity,
		tok:      Tokenizer{Qval: cfg.qval},
		hasTok:   true,
		external: cfg.external,
		maximum:  maxRuneLen,
		compute: func(_ []string, tok [][]string) (float64, error) {
			if len(tok) == 2 && len(tok[0]) <= 200 && len(tok[1]) <= 200 {
				_, _, l := longestCommonSubstring(tok[0], tok[1])
				return float64(l), nil
			}
			return float64(len(lcsStrNgramScan(tok))), nil
		},
	}
}

// longestCommonSubstring is the classic O(|a|*|b|) DP best-match search; it
// returns the start offsets in a and b and the match length.
func longestCommonSubstring(a, b []string) (ai, bi, length int) {
	lenA, lenB := len(a), len(b)
	dp := make([][]int, lenA+1)
	for i := range dp {
		dp[i] = make([]int, lenB+1)
	}
	best, bestI, bestJ := 0, 0, 0
	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
				if dp[i][j] > best {
					best = dp[i][j]
					bestI, bestJ = i, j
				}
			}
		}
	}
	return bestI - best, bestJ - best, best
}

// lcsStrNgramScan enumerates n-grams of the shortest input from longest to
// shortest, returning the first one present (as a contiguous run) in every
// other input.
func lcsStrNgramScan(tok [][]string) []string {
	shortestIdx := 0
	for i, t := range tok {
		if len(t) < len(tok[shortestIdx]) {
			shortestIdx = i
		}
	}
	shortest := tok[shortestIdx]

	for size := len(shortest); size >= 1; size-- {
		for start := 0; start+size <= len(shortest); start++ {
			candidate := shortest[start : start+size]
			if inAll(candidate, tok) {
				return candidate
			}
		}
	}
	return nil
}

func inAll(candidate []string, tok [][]string) bool {
	for _, t := range tok {
		if !containsRun(t, candidate) {
			return false
		}
	}
	return true
}

func containsRun(haystack, needle []string) bool {
	if len(needle) == 0 {
		return true
	}
	for start := 0; start+len(needle) <= len(haystack); start++ {
		match := true
		for i, n := range needle {
			if haystack[start+i] != n {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// NewRatcliffObershelp builds the Ratcliff/Obershelp "gestalt pattern
// matching" similarity (spec §4.7): recursively finds the longest common
// substring, recurses on the left and right residues, and sums the matched
// lengths. Normalized similarity is `N * total / sum(|seq_i|)`, implemented
// here by setting Maximum to the average input length.
func NewRatcliffObershelp(opts ...SequenceOption) *Base {
	cfg := sequenceConfig{qval: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:     "ratcliff_obershelp",
		kind:     KindSimilarity,
		tok:      Tokenizer{Qval: cfg.qval},
		hasTok:   true,
		external: cfg.external,
		maximum: func(_ []string, tok [][]string) (float64, error) {
			sum := 0
			for _, t := range tok {
				sum += len(t)
			}
			return float64(sum) / float64(len(tok)), nil
		},
		compute: func(_ []string, tok [][]string) (float64, error) {
			return aggregatePairwise(KindSimilarity, tok, func(a, b []string) (float64, error) {
				return float64(ratcliffObershelpTokens(a, b)), nil
			})
		},
	}
}

func ratcliffObershelpTokens(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, length := longestCommonSubstring(a, b)
	if length == 0 {
		return 0
	}
	total := length
	total += ratcliffObershelpTokens(a[:ai], b[:bi])
	total += ratcliffObershelpTokens(a[ai+length:], b[bi+length:])
	return total
}
