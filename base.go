package strmetric

import "sync"

// Kind distinguishes which of Distance/Similarity is the kernel's native
// result; the other is always derived as maximum-minus-native (spec §4.3,
// design note "two kinds"). NW and Gotoh are KindSimilarity kernels whose
// native score may be negative — see their Distance/Similarity derivation.
type Kind int

const (
	KindDistance Kind = iota
	KindSimilarity
)

// Algorithm is the uniform contract every measure in this package exposes
// (spec §4.3, table). A zero or one-element seqs call, an all-equal call,
// and an external-backend hit are all resolved before the kernel ever runs.
type Algorithm interface {
	// Name identifies the algorithm for telemetry, the external-backend
	// registry, and error messages.
	Name() string
	// Call returns the kernel's native measure: a distance for
	// KindDistance kernels, a similarity for KindSimilarity kernels.
	Call(seqs ...string) (float64, error)
	Distance(seqs ...string) (float64, error)
	Similarity(seqs ...string) (float64, error)
	Maximum(seqs ...string) (float64, error)
	NormalizedDistance(seqs ...string) (float64, error)
	NormalizedSimilarity(seqs ...string) (float64, error)
}

// kernelFunc computes the native measure given both the raw sequences and
// (when hasTok) their tokenization. For exactly two sequences this is the
// direct kernel recurrence; kernels that are natively pairwise reach for
// aggregatePairwise themselves to cover 3+ inputs (C11), while counter-based
// and some phonetic kernels generalize directly across all inputs.
type kernelFunc func(raw []string, tok [][]string) (float64, error)

// maximumFunc computes the kernel-chosen normalization upper bound (spec
// §3, "Maximum"). It receives both the raw and tokenized sequences because
// some kernels normalize by rune length (raw) and others by token count
// (tok).
type maximumFunc func(raw []string, tok [][]string) (float64, error)

// Base is the shared implementation of the Algorithm contract (C3). Each
// algorithm constructor in this package builds one configured with its own
// tokenizer, kernel and maximum function; no algorithm reimplements the
// quick-answer shortcuts, normalization arithmetic, or external dispatch.
type Base struct {
	name     string
	kind     Kind
	tok      Tokenizer
	hasTok   bool // false for kernels (NCD) that operate on raw bytes, not tokens
	compute  kernelFunc
	maximum  maximumFunc
	external bool

	// minimum is set only by the signed alignment kernels (Needleman-Wunsch,
	// Gotoh) whose native score can go negative. When set, the normalized
	// forms rescale over [minimum, maximum] instead of the usual [0, maximum]
	// (spec §4.5, "both normalized forms use both maximum... and minimum").
	minimum maximumFunc

	resolveOnce     sync.Once
	resolvedBackend *Backend
}

func (b *Base) Name() string { return b.name }

// Call implements the quick-answer table from spec §4.3 in order, falling
// through to external dispatch and finally the kernel itself.
func (b *Base) Call(seqs ...string) (float64, error) {
	obsAlgorithmCall(b.name)
	obsStringLength(b.name, seqs)

	// 1. Zero or one input.
	if len(seqs) <= 1 {
		obsQuickAnswer(b.name, "arity")
		if b.kind == KindDistance {
			return 0, nil
		}
		return b.Maximum(seqs...)
	}

	// 2. All inputs equal.
	if allEqual(seqs) {
		obsQuickAnswer(b.name, "identical")
		if b.kind == KindDistance {
			return 0, nil
		}
		return b.Maximum(seqs...)
	}

	// 3. Some input empty, others not.
	if mixedEmpty(seqs) {
		obsQuickAnswer(b.name, "mixed_empty")
		if b.kind == KindDistance {
			return b.Maximum(seqs...)
		}
		return 0, nil
	}

	// 4. External dispatch.
	if b.external {
		if backend := b.resolveBackend(seqs); backend != nil {
			v, ok, _ := tryBackend(backend, seqs)
			obsExternalDispatch(b.name, backend.ID, ok)
			if ok {
				return v, nil
			}
		}
	}

	tok := b.tokenize(seqs)
	return b.compute(seqs, tok)
}

func (b *Base) tokenize(seqs []string) [][]string {
	if !b.hasTok {
		return nil
	}
	out := make([][]string, len(seqs))
	for i, s := range seqs {
		out[i] = b.tok.Tokenize(s)
	}
	return out
}

// resolveBackend resolves and memoizes the external backend once per Base
// instance (spec §5: "initialized eagerly... or protected by a one-time
// write guard; after resolution the cached function pointer is read-only").
// Subsequent calls whose precondition shape differs from the first
// successful resolution simply fall back to the internal kernel rather than
// re-querying the registry, matching the "never reset during a run" rule.
func (b *Base) resolveBackend(seqs []string) *Backend {
	b.resolveOnce.Do(func() {
		b.resolvedBackend = resolveFromRegistry(b.name, b, seqs)
	})
	if b.resolvedBackend == nil {
		return nil
	}
	if !b.resolvedBackend.Precondition(b, seqs) {
		return nil
	}
	return b.resolvedBackend
}

func (b *Base) Distance(seqs ...string) (float64, error) {
	native, err := b.Call(seqs...)
	if err != nil {
		return 0, err
	}
	if b.kind == KindDistance {
		return native, nil
	}
	max, err := b.Maximum(seqs...)
	if err != nil {
		return 0, err
	}
	return max - native, nil
}

func (b *Base) Similarity(seqs ...string) (float64, error) {
	native, err := b.Call(seqs...)
	if err != nil {
		return 0, err
	}
	if b.kind == KindSimilarity {
		return native, nil
	}
	max, err := b.Maximum(seqs...)
	if err != nil {
		return 0, err
	}
	return max - native, nil
}

func (b *Base) Maximum(seqs ...string) (float64, error) {
	return b.maximum(seqs, b.tokenize(seqs))
}

func (b *Base) NormalizedDistance(seqs ...string) (float64, error) {
	if b.minimum != nil {
		return b.rescaledNormalized(seqs, true)
	}
	max, err := b.Maximum(seqs...)
	if err != nil {
		return 0, err
	}
	if max == 0 {
		return 0, nil
	}
	d, err := b.Distance(seqs...)
	if err != nil {
		return 0, err
	}
	return d / max, nil
}

func (b *Base) NormalizedSimilarity(seqs ...string) (float64, error) {
	if b.minimum != nil {
		return b.rescaledNormalized(seqs, false)
	}
	nd, err := b.NormalizedDistance(seqs...)
	if err != nil {
		return 0, err
	}
	return 1 - nd, nil
}

// rescaledNormalized implements the linear rescale over [minimum, maximum]
// used by the signed alignment kernels, where the native Call result is
// already the similarity value.
func (b *Base) rescaledNormalized(seqs []string, wantDistance bool) (float64, error) {
	native, err := b.Call(seqs...)
	if err != nil {
		return 0, err
	}
	max, err := b.Maximum(seqs...)
	if err != nil {
		return 0, err
	}
	min, err := b.minimum(seqs, b.tokenize(seqs))
	if err != nil {
		return 0, err
	}
	span := max - min
	if span == 0 {
		return 0, nil
	}
	sim := (native - min) / span
	if wantDistance {
		return 1 - sim, nil
	}
	return sim, nil
}

func allEqual(seqs []string) bool {
	for _, s := range seqs[1:] {
		if s != seqs[0] {
			return false
		}
	}
	return true
}

func mixedEmpty(seqs []string) bool {
	empty, nonEmpty := 0, 0
	for _, s := range seqs {
		if s == "" {
			empty++
		} else {
			nonEmpty++
		}
	}
	return empty > 0 && nonEmpty > 0
}

// maxRuneLen is the common "maximum = max(len(s))" normalization bound used
// by most edit-based kernels.
func maxRuneLen(raw []string, _ [][]string) (float64, error) {
	m := 0
	for _, s := range raw {
		if n := runeLen(s); n > m {
			m = n
		}
	}
	return float64(m), nil
}

// maxOne is the "maximum == 1" bound used by token-based and NCD kernels.
func maxOne(_ []string, _ [][]string) (float64, error) { return 1, nil }
