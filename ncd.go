package strmetric

import (
	"math"
	"strings"
)

// NCDOption configures an NCD algorithm.
type NCDOption func(*ncdConfig)

type ncdConfig struct {
	external bool
}

// WithNCDExternal enables external-backend dispatch.
func WithNCDExternal(external bool) NCDOption {
	return func(c *ncdConfig) { c.external = external }
}

// NewNCD builds the Normalized Compression Distance algorithm (spec §4.10)
// around compressor: for n sequences,
//
//	NCD = (min over orderings of C(concat(order)) - min_i C(s_i)*(n-1)) / max_i C(s_i)
//
// with NCD defined as 0 when max_i C(s_i) == 0. qval is fixed at 1
// (character-granularity; NCD has no notion of word tokens) per the
// teacher pack's _NCDBase.qval=1 convention, so NCD has no Tokenizer of its
// own and operates directly on the raw sequences (hasTok=false).
func NewNCD(compressor Compressor, opts ...NCDOption) *Base {
	cfg := ncdConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:     "ncd_" + compressor.Name(),
		kind:     KindDistance,
		hasTok:   false,
		external: cfg.external,
		maximum:  maxOne,
		compute: func(raw []string, _ [][]string) (float64, error) {
			obsNCDPermutationRun(compressor.Name(), len(raw))
			return ncdCompute(compressor, raw)
		},
	}
}

func ncdCompute(c Compressor, raw []string) (float64, error) {
	n := len(raw)
	sizes := make([]float64, n)
	maxC, minC := 0.0, math.Inf(1)
	for i, s := range raw {
		sz, err := c.Size(s)
		if err != nil {
			return 0, err
		}
		sizes[i] = sz
		if sz > maxC {
			maxC = sz
		}
		if sz < minC {
			minC = sz
		}
	}
	if maxC == 0 {
		return 0, nil
	}

	concatMin, err := ncdMinConcatSize(c, raw)
	if err != nil {
		return 0, err
	}
	return (concatMin - minC*float64(n-1)) / maxC, nil
}

// ncdMinConcatSize evaluates C(concat(order)) over every permutation of raw
// and returns the minimum (spec §4.10's "min over orderings π").
func ncdMinConcatSize(c Compressor, raw []string) (float64, error) {
	idx := make([]int, len(raw))
	for i := range idx {
		idx[i] = i
	}

	best := math.Inf(1)
	var firstErr error
	permute(idx, func(order []int) {
		if firstErr != nil {
			return
		}
		var sb strings.Builder
		for _, i := range order {
			sb.WriteString(raw[i])
		}
		sz, err := c.Size(sb.String())
		if err != nil {
			firstErr = err
			return
		}
		if sz < best {
			best = sz
		}
	})
	if firstErr != nil {
		return 0, firstErr
	}
	return best, nil
}

// NewArithNCD builds NCD over the adaptive arithmetic (range) coder.
func NewArithNCD(opts ...NCDOption) *Base { return NewNCD(NewArithCompressor(), opts...) }

// NewRLENCD builds NCD over run-length encoding.
func NewRLENCD(opts ...NCDOption) *Base { return NewNCD(NewRLECompressor(), opts...) }

// NewBWTRLENCD builds NCD over Burrows-Wheeler transform + run-length
// encoding.
func NewBWTRLENCD(opts ...NCDOption) *Base { return NewNCD(NewBWTRLECompressor(), opts...) }

// NewSqrtNCD builds NCD over the Σ√count symbolic compressor.
func NewSqrtNCD(opts ...NCDOption) *Base { return NewNCD(NewSqrtCompressor(), opts...) }

// NewEntropyNCD builds NCD over the Shannon-entropy symbolic compressor.
func NewEntropyNCD(opts ...NCDOption) *Base { return NewNCD(NewEntropyCompressor(), opts...) }

// NewBZ2NCD builds NCD over the real bzip2 byte codec.
func NewBZ2NCD(opts ...NCDOption) *Base { return NewNCD(NewBZ2Compressor(), opts...) }

// NewLZMANCD builds NCD over the real lzma byte codec.
func NewLZMANCD(opts ...NCDOption) *Base { return NewNCD(NewLZMACompressor(), opts...) }

// NewZlibNCD builds NCD over the standard library's zlib byte codec.
func NewZlibNCD(opts ...NCDOption) *Base { return NewNCD(NewZlibCompressor(), opts...) }
