package strmetric

// HammingOption configures Hamming.
type HammingOption func(*hammingConfig)

type hammingConfig struct {
	qval     int
	truncate bool
	external bool
}

// WithHammingTruncate compares only the first min(len(a), len(b)) elements
// instead of charging one mismatch per element of the longer tail.
func WithHammingTruncate(truncate bool) HammingOption {
	return func(c *hammingConfig) { c.truncate = truncate }
}

// WithHammingQval sets the element granularity (spec §3); default 1.
func WithHammingQval(qval int) HammingOption {
	return func(c *hammingConfig) { c.qval = qval }
}

// WithHammingExternal enables external-backend dispatch.
func WithHammingExternal(external bool) HammingOption {
	return func(c *hammingConfig) { c.external = external }
}

// NewHamming builds the Hamming distance: the number of positions at which
// two equal-granularity element sequences differ. By default the longer
// sequence's extra tail contributes one mismatch per extra position
// (spec §4.5); WithHammingTruncate(true) instead compares only the common
// prefix length.
func NewHamming(opts ...HammingOption) *Base {
	cfg := hammingConfig{qval: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	pair := func(a, b []string) (float64, error) {
		minLen := len(a)
		if len(b) < minLen {
			minLen = len(b)
		}
		diff := 0
		for i := 0; i < minLen; i++ {
			if a[i] != b[i] {
				diff++
			}
		}
		if !cfg.truncate {
			if len(a) > len(b) {
				diff += len(a) - len(b)
			} else {
				diff += len(b) - len(a)
			}
		}
		return float64(diff), nil
	}

	return &Base{
		name:     "hamming",
		kind:     KindDistance,
		tok:      Tokenizer{Qval: cfg.qval},
		hasTok:   true,
		external: cfg.external,
		maximum:  maxRuneLen,
		compute: func(_ []string, tok [][]string) (float64, error) {
			return aggregatePairwise(KindDistance, tok, pair)
		},
	}
}
