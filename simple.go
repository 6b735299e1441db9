package strmetric

// NewPrefix builds the longest-common-prefix similarity (spec §4.9): the
// native value is the length of the shared leading run under per-position
// equality.
func NewPrefix() *Base {
	return &Base{
		name:    "prefix",
		kind:    KindSimilarity,
		hasTok:  false,
		maximum: maxRuneLen,
		compute: func(raw []string, _ [][]string) (float64, error) {
			runs := make([][]rune, len(raw))
			for i, s := range raw {
				runs[i] = []rune(s)
			}
			n := 0
			for {
				var want rune
				for i, r := range runs {
					if n >= len(r) {
						return float64(n), nil
					}
					if i == 0 {
						want = r[n]
					} else if r[n] != want {
						return float64(n), nil
					}
				}
				n++
			}
		},
	}
}

// NewPostfix builds the longest-common-suffix similarity, the mirror of
// NewPrefix.
func NewPostfix() *Base {
	return &Base{
		name:    "postfix",
		kind:    KindSimilarity,
		hasTok:  false,
		maximum: maxRuneLen,
		compute: func(raw []string, _ [][]string) (float64, error) {
			runs := make([][]rune, len(raw))
			for i, s := range raw {
				runs[i] = []rune(s)
			}
			n := 0
			for {
				var want rune
				for i, r := range runs {
					if n >= len(r) {
						return float64(n), nil
					}
					c := r[len(r)-1-n]
					if i == 0 {
						want = c
					} else if c != want {
						return float64(n), nil
					}
				}
				n++
			}
		},
	}
}

// NewLength builds max|s| - min|s| (spec §4.9): a distance measuring only
// length disparity, blind to content.
func NewLength() *Base {
	return &Base{
		name:   "length",
		kind:   KindDistance,
		hasTok: false,
		maximum: func(raw []string, _ [][]string) (float64, error) {
			max := 0
			for _, s := range raw {
				if n := runeLen(s); n > max {
					max = n
				}
			}
			return float64(max), nil
		},
		compute: func(raw []string, _ [][]string) (float64, error) {
			min, max := -1, 0
			for _, s := range raw {
				n := runeLen(s)
				if n > max {
					max = n
				}
				if min < 0 || n < min {
					min = n
				}
			}
			return float64(max - min), nil
		},
	}
}

// NewIdentity builds 1 if all inputs are equal, else 0 (spec §4.9).
func NewIdentity() *Base {
	return &Base{
		name:    "identity",
		kind:    KindSimilarity,
		hasTok:  false,
		maximum: func(_ []string, _ [][]string) (float64, error) { return 1, nil },
		compute: func(raw []string, _ [][]string) (float64, error) {
			if allEqual(raw) {
				return 1, nil
			}
			return 0, nil
		},
	}
}

// NewMatrixAlgorithm wraps a Matrix as a standalone Algorithm (spec §4.9):
// native similarity is the pairwise Sim lookup, generalized to n>=3 inputs
// via the permutation-maximum wrapper.
func NewMatrixAlgorithm(m *Matrix) *Base {
	return &Base{
		name:   "matrix",
		kind:   KindSimilarity,
		hasTok: false,
		// A lookup table has no universal upper bound; sim(first, first) is
		// the value that keeps similarity(x,x) == maximum(x,x) (spec §8,
		// invariant 2) exact for the common identical-input case.
		maximum: func(raw []string, _ [][]string) (float64, error) {
			if len(raw) == 0 {
				return 0, nil
			}
			return m.Sim(raw[0], raw[0]), nil
		},
		compute: func(raw []string, _ [][]string) (float64, error) {
			return aggregatePairwise(KindSimilarity, raw, func(a, b string) (float64, error) {
				return m.Sim(a, b), nil
			})
		},
	}
}
