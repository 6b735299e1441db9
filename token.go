package strmetric

import "math"

// TokenOption configures the counter-based token kernels (Jaccard,
// Sørensen-Dice, Overlap, Cosine, Tversky, Tanimoto, Bag).
type TokenOption func(*tokenConfig)

type tokenConfig struct {
	qval     int
	asSet    bool
	external bool
}

// WithTokenQval sets the element granularity; default 1 (character-level),
// matching the teacher pack's token-kernel default. Pass 0 for word split.
func WithTokenQval(qval int) TokenOption {
	return func(c *tokenConfig) { c.qval = qval }
}

// WithTokenAsSet switches multiset size from bag (total count) to set
// (distinct-key count) semantics (spec §9, "counter-based implementations").
func WithTokenAsSet(asSet bool) TokenOption {
	return func(c *tokenConfig) { c.asSet = asSet }
}

// WithTokenExternal enables external-backend dispatch.
func WithTokenExternal(external bool) TokenOption {
	return func(c *tokenConfig) { c.external = external }
}

func tokenMultisets(tok [][]string) []Multiset {
	ms := make([]Multiset, len(tok))
	for i, t := range tok {
		ms[i] = counter(t)
	}
	return ms
}

// NewJaccard builds the Jaccard token similarity |A∩B|/|A∪B| (spec §4.8),
// generalized to n inputs via the n-way intersect/union the multiset algebra
// already supports.
func NewJaccard(opts ...TokenOption) *Base {
	cfg := tokenConfig{qval: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:     "jaccard",
		kind:     KindSimilarity,
		tok:      Tokenizer{Qval: cfg.qval},
		hasTok:   true,
		external: cfg.external,
		maximum:  maxOne,
		compute: func(_ []string, tok [][]string) (float64, error) {
			ms := tokenMultisets(tok)
			unionSize := union(ms...).size(cfg.asSet)
			if unionSize == 0 {
				return 0, nil
			}
			return float64(intersect(ms...).size(cfg.asSet)) / float64(unionSize), nil
		},
	}
}

// NewSorensenDice builds 2|A∩B|/(|A|+|B|), generalized to N|A1∩...∩An|/Σ|Ai|.
func NewSorensenDice(opts ...TokenOption) *Base {
	cfg := tokenConfig{qval: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:     "sorensen_dice",
		kind:     KindSimilarity,
		tok:      Tokenizer{Qval: cfg.qval},
		hasTok:   true,
		external: cfg.external,
		maximum:  maxOne,
		compute: func(_ []string, tok [][]string) (float64, error) {
			ms := tokenMultisets(tok)
			sum := 0
			for _, m := range ms {
				sum += m.size(cfg.asSet)
			}
			if sum == 0 {
				return 0, nil
			}
			return float64(len(ms)*intersect(ms...).size(cfg.asSet)) / float64(sum), nil
		},
	}
}

// NewOverlap builds |A∩B|/min(|A|,|B|).
func NewOverlap(opts ...TokenOption) *Base {
	cfg := tokenConfig{qval: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:     "overlap",
		kind:     KindSimilarity,
		tok:      Tokenizer{Qval: cfg.qval},
		hasTok:   true,
		external: cfg.external,
		maximum:  maxOne,
		compute: func(_ []string, tok [][]string) (float64, error) {
			ms := tokenMultisets(tok)
			min := ms[0].size(cfg.asSet)
			for _, m := range ms[1:] {
				if s := m.size(cfg.asSet); s < min {
					min = s
				}
			}
			if min == 0 {
				return 0, nil
			}
			return float64(intersect(ms...).size(cfg.asSet)) / float64(min), nil
		},
	}
}

// NewCosine builds the Ochiai/cosine token similarity |A∩B|/√(|A|·|B|),
// generalized to n inputs via the product of all sizes under the radical.
func NewCosine(opts ...TokenOption) *Base {
	cfg := tokenConfig{qval: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:     "cosine",
		kind:     KindSimilarity,
		tok:      Tokenizer{Qval: cfg.qval},
		hasTok:   true,
		external: cfg.external,
		maximum:  maxOne,
		compute: func(_ []string, tok [][]string) (float64, error) {
			ms := tokenMultisets(tok)
			product := 1.0
			for _, m := range ms {
				product *= float64(m.size(cfg.asSet))
			}
			if product == 0 {
				return 0, nil
			}
			return float64(intersect(ms...).size(cfg.asSet)) / math.Sqrt(product), nil
		},
	}
}

// NewTanimoto builds log2(Jaccard), -Inf when Jaccard is 0 (spec §4.8).
func NewTanimoto(opts ...TokenOption) *Base {
	jaccard := NewJaccard(opts...)
	jaccard.name = "tanimoto"
	inner := jaccard.compute
	jaccard.compute = func(raw []string, tok [][]string) (float64, error) {
		j, err := inner(raw, tok)
		if err != nil {
			return 0, err
		}
		if j <= 0 {
			return math.Inf(-1), nil
		}
		return math.Log2(j), nil
	}
	return jaccard
}

// TverskyOption configures Tversky's asymmetric weighting.
type TverskyOption func(*tverskyConfig)

type tverskyConfig struct {
	tokenConfig
	alpha, beta, bias float64
}

// WithTverskyAlpha sets the A\B weight; default 1 (⇒ Jaccard at alpha=beta=1).
func WithTverskyAlpha(alpha float64) TverskyOption {
	return func(c *tverskyConfig) { c.alpha = alpha }
}

// WithTverskyBeta sets the B\A weight.
func WithTverskyBeta(beta float64) TverskyOption {
	return func(c *tverskyConfig) { c.beta = beta }
}

// WithTverskyBias adds a constant to the intersection term before the ratio.
func WithTverskyBias(bias float64) TverskyOption {
	return func(c *tverskyConfig) { c.bias = bias }
}

// WithTverskyQval sets the element granularity.
func WithTverskyQval(qval int) TverskyOption {
	return func(c *tverskyConfig) { c.qval = qval }
}

// WithTverskyAsSet switches to set (vs bag) size semantics.
func WithTverskyAsSet(asSet bool) TverskyOption {
	return func(c *tverskyConfig) { c.asSet = asSet }
}

// NewTversky builds the Tversky index: |A∩B| / (|A∩B| + α|A\B| + β|B\A|)
// (spec §4.8); α=β=1 is Jaccard, α=β=0.5 is Sørensen-Dice.
func NewTversky(opts ...TverskyOption) *Base {
	cfg := tverskyConfig{alpha: 1, beta: 1}
	cfg.qval = 1
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:     "tversky",
		kind:     KindSimilarity,
		tok:      Tokenizer{Qval: cfg.qval},
		hasTok:   true,
		external: cfg.external,
		maximum:  maxOne,
		compute: func(_ []string, tok [][]string) (float64, error) {
			if len(tok) != 2 {
				return 0, ErrTypeMismatch
			}
			a, b := counter(tok[0]), counter(tok[1])
			inter := float64(intersect(a, b).size(cfg.asSet)) + cfg.bias
			aOnly := float64(difference(a, b).size(cfg.asSet))
			bOnly := float64(difference(b, a).size(cfg.asSet))
			denom := inter + cfg.alpha*aOnly + cfg.beta*bOnly
			if denom == 0 {
				return 0, nil
			}
			return inter / denom, nil
		},
	}
}

// NewBag builds max(|A\B|, |B\A|) (spec §4.8); swapping the inputs swaps the
// two differences, so the raw value is symmetric.
func NewBag(opts ...TokenOption) *Base {
	cfg := tokenConfig{qval: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:     "bag",
		kind:     KindDistance,
		tok:      Tokenizer{Qval: cfg.qval},
		hasTok:   true,
		external: cfg.external,
		maximum: func(raw []string, tok [][]string) (float64, error) {
			max := 0
			for _, t := range tok {
				if len(t) > max {
					max = len(t)
				}
			}
			return float64(max), nil
		},
		compute: func(_ []string, tok [][]string) (float64, error) {
			if len(tok) != 2 {
				return 0, ErrTypeMismatch
			}
			a, b := counter(tok[0]), counter(tok[1])
			ab := difference(a, b).size(cfg.asSet)
			ba := difference(b, a).size(cfg.asSet)
			if ab > ba {
				return float64(ab), nil
			}
			return float64(ba), nil
		},
	}
}

// MongeElkanOption configures Monge-Elkan.
type MongeElkanOption func(*mongeElkanConfig)

type mongeElkanConfig struct {
	qval      int
	symmetric bool
	inner     Algorithm
	external  bool
}

// WithMongeElkanQval sets the outer tokenizer granularity; default 0 (word
// split), since Monge-Elkan's outer loop is defined over words by convention.
func WithMongeElkanQval(qval int) MongeElkanOption {
	return func(c *mongeElkanConfig) { c.qval = qval }
}

// WithMongeElkanSymmetric averages both directions instead of only
// `(1/|a|)Σmax(M(a_i, b_j))`.
func WithMongeElkanSymmetric(symmetric bool) MongeElkanOption {
	return func(c *mongeElkanConfig) { c.symmetric = symmetric }
}

// WithMongeElkanInner sets the inner element-pair similarity; default
// NewJaroWinkler().
func WithMongeElkanInner(inner Algorithm) MongeElkanOption {
	return func(c *mongeElkanConfig) { c.inner = inner }
}

// NewMongeElkan builds the Monge-Elkan hybrid token measure (spec §4.8):
// the outer score for a sequence is the average, over its tokens, of the
// best inner-similarity match among the other sequence's tokens.
func NewMongeElkan(opts ...MongeElkanOption) *Base {
	cfg := mongeElkanConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.inner == nil {
		cfg.inner = NewJaroWinkler()
	}

	oneDirection := func(a, b []string) (float64, error) {
		if len(a) == 0 {
			return 0, nil
		}
		sum := 0.0
		for _, tokA := range a {
			best := 0.0
			for _, tokB := range b {
				v, err := cfg.inner.Call(tokA, tokB)
				if err != nil {
					return 0, err
				}
				if v > best {
					best = v
				}
			}
			sum += best
		}
		return sum / float64(len(a)), nil
	}

	return &Base{
		name:     "monge_elkan",
		kind:     KindSimilarity,
		tok:      Tokenizer{Qval: cfg.qval},
		hasTok:   true,
		external: cfg.external,
		maximum:  maxOne,
		compute: func(_ []string, tok [][]string) (float64, error) {
			if len(tok) != 2 {
				return 0, ErrTypeMismatch
			}
			forward, err := oneDirection(tok[0], tok[1])
			if err != nil {
				return 0, err
			}
			if !cfg.symmetric {
				return forward, nil
			}
			backward, err := oneDirection(tok[1], tok[0])
			if err != nil {
				return 0, err
			}
			return (forward + backward) / 2, nil
		},
	}
}
