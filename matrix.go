package strmetric

// SimFunc scores a pair of elements for the alignment kernels (NW, SW,
// Gotoh). The zero value is never used directly; DefaultSimFunc is the
// fallback when a kernel is constructed without one.
type SimFunc func(a, b string) float64

// DefaultSimFunc returns +1 for an exact match and -1 otherwise, the
// "structural identity" default spec §4.9/§9 describes for NW/SW/Gotoh.
func DefaultSimFunc(a, b string) float64 {
	if a == b {
		return 1
	}
	return -1
}

type matrixKey struct{ a, b string }

// Matrix is a lookup-based scorer (C9): a caller-supplied {(a,b) -> cost}
// table with optional symmetry and a match/mismatch fallback for pairs the
// table doesn't cover. It is both a standalone simple kernel (NewMatrixAlgorithm)
// and a SimFunc usable by NW/SW/Gotoh (its Sim method).
type Matrix struct {
	table              map[matrixKey]float64
	symmetric          bool
	matchCost          float64
	mismatchCost       float64
}

// MatrixOption configures a Matrix at construction.
type MatrixOption func(*Matrix)

// WithMatrixSymmetric makes table lookups try both (a,b) and (b,a).
func WithMatrixSymmetric(symmetric bool) MatrixOption {
	return func(m *Matrix) { m.symmetric = symmetric }
}

// WithMatrixCosts sets the match/mismatch fallback scores used for pairs
// absent from the table. Default: match=1, mismatch=0 (an equal-but-untabled
// pair still counts as a match; NW/SW/Gotoh callers typically override with
// match=+1, mismatch=-1 via WithMatrixCosts(1, -1)).
func WithMatrixCosts(match, mismatch float64) MatrixOption {
	return func(m *Matrix) { m.matchCost, m.mismatchCost = match, mismatch }
}

// NewMatrix builds a Matrix from an explicit cost table.
func NewMatrix(table map[[2]string]float64, opts ...MatrixOption) *Matrix {
	m := &Matrix{
		table:     make(map[matrixKey]float64, len(table)),
		matchCost: 1,
	}
	for k, v := range table {
		m.table[matrixKey{k[0], k[1]}] = v
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Sim looks up the score for (a, b): exact table hit, then (if symmetric)
// the swapped pair, then the match/mismatch fallback (spec §4.9, "Malformed
// matrix lookup... returns mismatch_cost; not an error").
func (m *Matrix) Sim(a, b string) float64 {
	if v, ok := m.table[matrixKey{a, b}]; ok {
		return v
	}
	if m.symmetric {
		if v, ok := m.table[matrixKey{b, a}]; ok {
			return v
		}
	}
	if a == b {
		return m.matchCost
	}
	return m.mismatchCost
}
