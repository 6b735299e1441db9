package strmetric

// AlignmentOption configures Needleman-Wunsch and Smith-Waterman.
type AlignmentOption func(*alignmentConfig)

type alignmentConfig struct {
	gapCost float64
	simFunc SimFunc
}

// WithGapCost sets the uniform gap penalty; default 1.
func WithGapCost(cost float64) AlignmentOption {
	return func(c *alignmentConfig) { c.gapCost = cost }
}

// WithSimFunc sets the element-pair scorer; default DefaultSimFunc (+1 match,
// -1 mismatch). Pass a *Matrix's Sim method to score via a lookup table.
func WithSimFunc(fn SimFunc) AlignmentOption {
	return func(c *alignmentConfig) { c.simFunc = fn }
}

// NewNeedlemanWunsch builds the global-alignment kernel (spec §4.5): full DP
// with a uniform gap cost and a caller-supplied element similarity, returning
// the signed score in the bottom-right cell. Its normalized forms rescale
// over [-max(|s|)*gap_cost, max(|s|)] rather than [0, max(|s|)], since the
// native score can go negative.
func NewNeedlemanWunsch(opts ...AlignmentOption) *Base {
	cfg := alignmentConfig{gapCost: 1, simFunc: DefaultSimFunc}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:    "needleman_wunsch",
		kind:    KindSimilarity,
		tok:     Tokenizer{Qval: 1},
		hasTok:  true,
		maximum: maxRuneLen,
		minimum: func(raw []string, _ [][]string) (float64, error) {
			m := 0
			for _, s := range raw {
				if n := runeLen(s); n > m {
					m = n
				}
			}
			return -float64(m) * cfg.gapCost, nil
		},
		compute: func(_ []string, tok [][]string) (float64, error) {
			if len(tok) != 2 {
				return 0, ErrTypeMismatch
			}
			return needlemanWunschTokens(tok[0], tok[1], cfg.gapCost, cfg.simFunc), nil
		},
	}
}

func needlemanWunschTokens(a, b []string, gapCost float64, sim SimFunc) float64 {
	lenA, lenB := len(a), len(b)
	d := make([][]float64, lenA+1)
	for i := range d {
		d[i] = make([]float64, lenB+1)
	}
	for i := 1; i <= lenA; i++ {
		d[i][0] = d[i-1][0] - gapCost
	}
	for j := 1; j <= lenB; j++ {
		d[0][j] = d[0][j-1] - gapCost
	}
	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			match := d[i-1][j-1] + sim(a[i-1], b[j-1])
			del := d[i-1][j] - gapCost
			ins := d[i][j-1] - gapCost
			best := match
			if del > best {
				best = del
			}
			if ins > best {
				best = ins
			}
			d[i][j] = best
		}
	}
	return d[lenA][lenB]
}

// NewSmithWaterman builds the local-alignment kernel (spec §4.5): the same
// recurrence as Needleman-Wunsch with every cell clamped at 0, returning the
// maximum cell in the table. Unlike NW/Gotoh the result can never be
// negative, so it uses the ordinary [0, maximum] normalization.
func NewSmithWaterman(opts ...AlignmentOption) *Base {
	cfg := alignmentConfig{gapCost: 1, simFunc: DefaultSimFunc}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:    "smith_waterman",
		kind:    KindSimilarity,
		tok:     Tokenizer{Qval: 1},
		hasTok:  true,
		maximum: maxRuneLen,
		compute: func(_ []string, tok [][]string) (float64, error) {
			if len(tok) != 2 {
				return 0, ErrTypeMismatch
			}
			return smithWatermanTokens(tok[0], tok[1], cfg.gapCost, cfg.simFunc), nil
		},
	}
}

func smithWatermanTokens(a, b []string, gapCost float64, sim SimFunc) float64 {
	lenA, lenB := len(a), len(b)
	d := make([][]float64, lenA+1)
	for i := range d {
		d[i] = make([]float64, lenB+1)
	}
	best := 0.0
	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			match := d[i-1][j-1] + sim(a[i-1], b[j-1])
			del := d[i-1][j] - gapCost
			ins := d[i][j-1] - gapCost
			v := 0.0
			if match > v {
				v = match
			}
			if del > v {
				v = del
			}
			if ins > v {
				v = ins
			}
			d[i][j] = v
			if v > best {
				best = v
			}
		}
	}
	return best
}

// GotohOption configures Gotoh's affine gap penalties.
type GotohOption func(*gotohConfig)

type gotohConfig struct {
	gapOpen, gapExt float64
	simFunc         SimFunc
}

// WithGotohGapOpen sets the cost of opening a new gap; default 1.
func WithGotohGapOpen(cost float64) GotohOption {
	return func(c *gotohConfig) { c.gapOpen = cost }
}

// WithGotohGapExt sets the cost of extending an existing gap; default 1.
func WithGotohGapExt(cost float64) GotohOption {
	return func(c *gotohConfig) { c.gapExt = cost }
}

// WithGotohSimFunc sets the element-pair scorer; default DefaultSimFunc.
func WithGotohSimFunc(fn SimFunc) GotohOption {
	return func(c *gotohConfig) { c.simFunc = fn }
}

// NewGotoh builds the affine-gap global-alignment kernel (spec §4.5): three
// DP matrices D (match/mismatch), P (gap in the first sequence) and Q (gap in
// the second), so that a gap of length k costs gap_open + (k-1)*gap_ext
// rather than NW's uniform per-symbol cost. Like NW its native score can go
// negative; spec §4.5 is silent on Gotoh's minimum bound specifically, so
// this reuses NW's -max(|s|)*gap_open as the representative lower bound.
func NewGotoh(opts ...GotohOption) *Base {
	cfg := gotohConfig{gapOpen: 1, gapExt: 1, simFunc: DefaultSimFunc}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:    "gotoh",
		kind:    KindSimilarity,
		tok:     Tokenizer{Qval: 1},
		hasTok:  true,
		maximum: maxRuneLen,
		minimum: func(raw []string, _ [][]string) (float64, error) {
			m := 0
			for _, s := range raw {
				if n := runeLen(s); n > m {
					m = n
				}
			}
			return -float64(m) * cfg.gapOpen, nil
		},
		compute: func(_ []string, tok [][]string) (float64, error) {
			if len(tok) != 2 {
				return 0, ErrTypeMismatch
			}
			return gotohTokens(tok[0], tok[1], cfg.gapOpen, cfg.gapExt, cfg.simFunc), nil
		},
	}
}

const negInf = -1e18

func gotohTokens(a, b []string, gapOpen, gapExt float64, sim SimFunc) float64 {
	lenA, lenB := len(a), len(b)
	d := make([][]float64, lenA+1)
	p := make([][]float64, lenA+1)
	q := make([][]float64, lenA+1)
	for i := range d {
		d[i] = make([]float64, lenB+1)
		p[i] = make([]float64, lenB+1)
		q[i] = make([]float64, lenB+1)
	}

	p[0][0] = negInf
	q[0][0] = negInf
	for i := 1; i <= lenA; i++ {
		p[i][0] = -(gapOpen + float64(i-1)*gapExt)
		d[i][0] = p[i][0]
		q[i][0] = negInf
	}
	for j := 1; j <= lenB; j++ {
		q[0][j] = -(gapOpen + float64(j-1)*gapExt)
		d[0][j] = q[0][j]
		p[0][j] = negInf
	}

	max3 := func(x, y, z float64) float64 {
		m := x
		if y > m {
			m = y
		}
		if z > m {
			m = z
		}
		return m
	}

	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			d[i][j] = max3(d[i-1][j-1], p[i-1][j-1], q[i-1][j-1]) + sim(a[i-1], b[j-1])
			p[i][j] = maxF64(d[i-1][j]-gapOpen, p[i-1][j]-gapExt)
			q[i][j] = maxF64(d[i][j-1]-gapOpen, q[i][j-1]-gapExt)
		}
	}
	return max3(d[lenA][lenB], p[lenA][lenB], q[lenA][lenB])
}

func maxF64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
