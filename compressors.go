package strmetric

import (
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// Compressor computes a compressed "size" for a string under the NCD
// framework (C10, spec §4.10). Symbolic compressors (this file) operate on
// the rune sequence directly; binary codecs (bytecodecs.go) operate on its
// UTF-8 bytes instead.
type Compressor interface {
	Name() string
	Size(data string) (float64, error)
}

// compressorFunc adapts a plain function to Compressor.
type compressorFunc struct {
	name string
	fn   func(data string) (float64, error)
}

func (c compressorFunc) Name() string                      { return c.name }
func (c compressorFunc) Size(data string) (float64, error) { return c.fn(data) }

// NewRLECompressor runs the length/character/length*2 rules of spec §4.10:
// a run of n>2 identical characters becomes "n"+char, n==1 stays a single
// char, n==2 is doubled. Size is the rune length of the encoded string.
func NewRLECompressor() Compressor {
	return compressorFunc{name: "rle", fn: func(data string) (float64, error) {
		return float64(runeLen(rleEncode(data))), nil
	}}
}

func rleEncode(data string) string {
	runes := []rune(data)
	var sb strings.Builder
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		n := j - i
		ch := string(runes[i])
		switch {
		case n > 2:
			sb.WriteString(strconv.Itoa(n))
			sb.WriteString(ch)
		case n == 2:
			sb.WriteString(ch)
			sb.WriteString(ch)
		default:
			sb.WriteString(ch)
		}
		i = j
	}
	return sb.String()
}

// BWTRLECompressorOption configures NewBWTRLECompressor.
type BWTRLECompressorOption func(*bwtrleConfig)

type bwtrleConfig struct {
	terminator rune
}

// WithBWTRLETerminator overrides the default '\0' rotation terminator.
func WithBWTRLETerminator(terminator rune) BWTRLECompressorOption {
	return func(c *bwtrleConfig) { c.terminator = terminator }
}

// NewBWTRLECompressor appends a terminator and Burrows-Wheeler transforms
// the rotations, then RLE-encodes the last column (spec §4.10). If the data
// already contains the terminator the rotation is skipped and the raw data
// is RLE-encoded directly.
func NewBWTRLECompressor(opts ...BWTRLECompressorOption) Compressor {
	cfg := bwtrleConfig{terminator: 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	return compressorFunc{name: "bwtrle", fn: func(data string) (float64, error) {
		return float64(runeLen(rleEncode(bwtTransform(data, cfg.terminator)))), nil
	}}
}

func bwtTransform(data string, terminator rune) string {
	runes := []rune(data)
	if len(runes) == 0 {
		return string(terminator)
	}
	hasTerm := false
	for _, r := range runes {
		if r == terminator {
			hasTerm = true
			break
		}
	}
	if hasTerm {
		return string(runes)
	}
	runes = append(runes, terminator)

	n := len(runes)
	rotations := make([][]rune, n)
	for i := 0; i < n; i++ {
		rot := make([]rune, n)
		copy(rot, runes[i:])
		copy(rot[n-i:], runes[:i])
		rotations[i] = rot
	}
	sort.Slice(rotations, func(i, j int) bool {
		return string(rotations[i]) < string(rotations[j])
	})
	last := make([]rune, n)
	for i, rot := range rotations {
		last[i] = rot[n-1]
	}
	return string(last)
}

// NewSqrtCompressor uses Σ√count over the element multiset as its
// compressed "size" (spec §4.10).
func NewSqrtCompressor() Compressor {
	return compressorFunc{name: "sqrt", fn: func(data string) (float64, error) {
		counts := map[rune]int{}
		for _, r := range data {
			counts[r]++
		}
		total := 0.0
		for _, c := range counts {
			total += math.Sqrt(float64(c))
		}
		return total, nil
	}}
}

// EntropyCompressorOption configures NewEntropyCompressor.
type EntropyCompressorOption func(*entropyConfig)

type entropyConfig struct {
	base, coef float64
}

// WithEntropyBase sets the logarithm base for the Shannon entropy term;
// default 2.
func WithEntropyBase(base float64) EntropyCompressorOption {
	return func(c *entropyConfig) { c.base = base }
}

// WithEntropyCoef sets the additive constant in size = coef + entropy;
// default 1 (without it, two maximally-dissimilar zero-entropy inputs like
// "aaa"/"bbb" would both compress to size 0 and divide-by-zero the NCD
// formula into the wrong "identical" answer).
func WithEntropyCoef(coef float64) EntropyCompressorOption {
	return func(c *entropyConfig) { c.coef = coef }
}

// NewEntropyCompressor uses coef+Shannon-entropy(base) of the element
// distribution as its compressed "size" (spec §4.10).
func NewEntropyCompressor(opts ...EntropyCompressorOption) Compressor {
	cfg := entropyConfig{base: 2, coef: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return compressorFunc{name: "entropy", fn: func(data string) (float64, error) {
		counts := map[rune]int{}
		total := 0
		for _, r := range data {
			counts[r]++
			total++
		}
		if total == 0 {
			return cfg.coef, nil
		}
		h := 0.0
		logBase := math.Log(cfg.base)
		for _, c := range counts {
			p := float64(c) / float64(total)
			h -= p * math.Log(p) / logBase
		}
		return cfg.coef + h, nil
	}}
}

// ArithCompressorOption configures NewArithCompressor.
type ArithCompressorOption func(*arithConfig)

type arithConfig struct {
	base       float64
	terminator rune
}

// WithArithBase sets the logarithm base used to turn the compressed
// fraction's numerator into a size; default 2.
func WithArithBase(base float64) ArithCompressorOption {
	return func(c *arithConfig) { c.base = base }
}

// WithArithTerminator overrides the default NUL terminator symbol appended
// during range coding.
func WithArithTerminator(terminator rune) ArithCompressorOption {
	return func(c *arithConfig) { c.terminator = terminator }
}

// NewArithCompressor builds an adaptive arithmetic (range) coder over the
// rune distribution of whatever string it is handed (spec §4.10): each
// call constructs its own probability model from the data it compresses,
// exactly as the teacher pack's NCD source does, rather than sharing one
// model across the whole comparison.
func NewArithCompressor(opts ...ArithCompressorOption) Compressor {
	cfg := arithConfig{base: 2, terminator: 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	return compressorFunc{name: "arith", fn: func(data string) (float64, error) {
		numerator := arithCompress(data, cfg.terminator)
		f := new(big.Float).SetInt(numerator)
		val, _ := f.Float64()
		if val <= 1 {
			return 0, nil
		}
		return math.Ceil(math.Log(val) / math.Log(cfg.base)), nil
	}}
}

type arithProb struct {
	start, width *big.Rat
}

// arithProbs builds the cumulative probability-interval table over data's
// own rune distribution plus one synthetic terminator symbol of count 1,
// sorted by (count, rune) descending so the table is deterministic (spec
// §4.10, "build character probability intervals from the combined
// multiset").
func arithProbs(data string, terminator rune) map[rune]arithProb {
	counts := map[rune]int{}
	for _, r := range data {
		counts[r]++
	}
	counts[terminator] = 1
	total := 0
	for _, c := range counts {
		total += c
	}

	type kv struct {
		r rune
		n int
	}
	items := make([]kv, 0, len(counts))
	for r, n := range counts {
		items = append(items, kv{r, n})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].n != items[j].n {
			return items[i].n > items[j].n
		}
		return items[i].r > items[j].r
	})

	probs := make(map[rune]arithProb, len(items))
	cumulative := int64(0)
	for _, it := range items {
		probs[it.r] = arithProb{
			start: big.NewRat(cumulative, int64(total)),
			width: big.NewRat(int64(it.n), int64(total)),
		}
		cumulative += int64(it.n)
	}
	return probs
}

// arithRange walks data (with any stray terminator runes stripped, then one
// terminator appended) through the probability table, narrowing [start,
// start+width) one character at a time (spec §4.10's recurrence).
func arithRange(data string, terminator rune, probs map[rune]arithProb) (start, end *big.Rat) {
	runes := make([]rune, 0, len(data)+1)
	for _, r := range data {
		if r != terminator {
			runes = append(runes, r)
		}
	}
	runes = append(runes, terminator)

	start = big.NewRat(0, 1)
	width := big.NewRat(1, 1)
	for _, r := range runes {
		p := probs[r]
		start = new(big.Rat).Add(start, new(big.Rat).Mul(p.start, width))
		width = new(big.Rat).Mul(width, p.width)
	}
	end = new(big.Rat).Add(start, width)
	return start, end
}

// arithCompress finds the numerator of the smallest dyadic fraction
// k/2^m inside [start, end), the classic range-coder final step, and
// returns that numerator as the compressed representation's "size" driver
// (spec §4.10; cross-checked against the BANANA fixture: numerator 1525).
func arithCompress(data string, terminator rune) *big.Int {
	probs := arithProbs(data, terminator)
	start, end := arithRange(data, terminator, probs)

	denominator := big.NewInt(1)
	frac := big.NewRat(0, 1)
	for !(frac.Cmp(start) >= 0 && frac.Cmp(end) < 0) {
		numerator := new(big.Int).Mul(start.Num(), denominator)
		numerator.Div(numerator, start.Denom())
		numerator.Add(numerator, big.NewInt(1))
		frac = new(big.Rat).SetFrac(numerator, denominator)
		denominator = new(big.Int).Mul(denominator, big.NewInt(2))
	}
	return frac.Num()
}
