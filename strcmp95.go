package strmetric

import "strings"

// confusablePairs is the ASCII-uppercase "sp_mx" table of commonly-confused
// character pairs from Winkler's public-domain strcmp95 routine: vowels,
// voiced/unvoiced look-alikes, and look-alike digits (spec §4.5).
var confusablePairs = map[[2]rune]bool{
	{'A', 'E'}: true, {'A', 'I'}: true, {'A', 'O'}: true, {'A', 'U'}: true,
	{'B', 'V'}: true, {'E', 'I'}: true, {'E', 'O'}: true, {'E', 'U'}: true,
	{'I', 'O'}: true, {'I', 'U'}: true, {'O', 'U'}: true, {'I', 'Y'}: true,
	{'E', 'Y'}: true, {'C', 'G'}: true, {'E', 'F'}: true, {'W', 'U'}: true,
	{'W', 'V'}: true, {'X', 'K'}: true, {'S', 'Z'}: true, {'X', 'S'}: true,
	{'Q', 'C'}: true, {'U', 'V'}: true, {'M', 'N'}: true, {'L', 'I'}: true,
	{'Q', 'O'}: true, {'P', 'R'}: true, {'I', 'J'}: true, {'2', 'Z'}: true,
	{'5', 'S'}: true, {'8', 'B'}: true, {'1', 'I'}: true, {'1', 'L'}: true,
	{'0', 'O'}: true, {'0', 'Q'}: true, {'C', 'K'}: true, {'G', 'J'}: true,
}

func confusable(a, b rune) bool {
	return confusablePairs[[2]rune{a, b}] || confusablePairs[[2]rune{b, a}]
}

// StrCmp95Option configures StrCmp95.
type StrCmp95Option func(*strcmp95Config)

type strcmp95Config struct {
	longTolerance bool
	external      bool
}

// WithStrCmp95LongTolerance enables the same long-string tail adjustment
// Jaro-Winkler offers.
func WithStrCmp95LongTolerance(enabled bool) StrCmp95Option {
	return func(c *strcmp95Config) { c.longTolerance = enabled }
}

// WithStrCmp95External enables external-backend dispatch.
func WithStrCmp95External(external bool) StrCmp95Option {
	return func(c *strcmp95Config) { c.external = external }
}

// NewStrCmp95 builds Winkler's strcmp95 (spec §4.5): uppercases both inputs,
// runs the same bounded-window Jaro matching as NewJaro, then gives 0.3
// credit per otherwise-unmatched position pair found in the confusable-pair
// table before applying the usual 0.7-threshold Winkler boost.
func NewStrCmp95(opts ...StrCmp95Option) *Base {
	cfg := strcmp95Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:     "strcmp95",
		kind:     KindSimilarity,
		hasTok:   false,
		external: cfg.external,
		maximum:  maxOne,
		compute: func(raw []string, _ [][]string) (float64, error) {
			return aggregatePairwise(KindSimilarity, raw, func(a, b string) (float64, error) {
				return strcmp95Pair(a, b, cfg.longTolerance), nil
			})
		},
	}
}

func strcmp95Pair(a, b string, longTolerance bool) float64 {
	s1 := []rune(strings.ToUpper(a))
	s2 := []rune(strings.ToUpper(b))
	lenA, lenB := len(s1), len(s2)
	if lenA == 0 || lenB == 0 {
		return 0
	}

	searchRange := lenA
	if lenB > searchRange {
		searchRange = lenB
	}
	searchRange = searchRange/2 - 1
	if searchRange < 0 {
		searchRange = 0
	}

	flag1 := make([]bool, lenA)
	flag2 := make([]bool, lenB)
	numCom := 0
	for i := 0; i < lenA; i++ {
		start := i - searchRange
		if start < 0 {
			start = 0
		}
		end := i + searchRange + 1
		if end > lenB {
			end = lenB
		}
		for j := start; j < end; j++ {
			if flag2[j] || s1[i] != s2[j] {
				continue
			}
			flag1[i] = true
			flag2[j] = true
			numCom++
			break
		}
	}
	if numCom == 0 {
		return 0
	}

	k := 0
	transpositions := 0
	for i := 0; i < lenA; i++ {
		if !flag1[i] {
			continue
		}
		for !flag2[k] {
			k++
		}
		if s1[i] != s2[k] {
			transpositions++
		}
		k++
	}
	transpositions /= 2

	// Credit 0.3 per otherwise-unmatched position pair drawn from the
	// confusable table; these credits feed only the length-ratio terms
	// below, not the transposition term, matching the original routine.
	numSimilar := 0
	minLen := lenA
	if lenB < minLen {
		minLen = lenB
	}
	if minLen > numCom {
		for i := 0; i < lenA; i++ {
			if flag1[i] {
				continue
			}
			for j := 0; j < lenB; j++ {
				if flag2[j] {
					continue
				}
				if confusable(s1[i], s2[j]) {
					flag1[i] = true
					flag2[j] = true
					numSimilar++
					break
				}
			}
		}
	}

	numSim := float64(numCom) + float64(numSimilar)*0.3
	m := float64(numCom)
	weight := (numSim/float64(lenA) + numSim/float64(lenB) + (m-float64(transpositions))/m) / 3
	if weight <= 0.7 {
		return weight
	}

	prefix := 0
	limit := minLen
	if limit > 4 {
		limit = 4
	}
	for ; prefix < limit; prefix++ {
		if s1[prefix] != s2[prefix] {
			break
		}
	}
	weight += float64(prefix) * 0.1 * (1 - weight)

	if longTolerance && minLen > 4 && numCom > prefix+1 && 2*numCom >= minLen+prefix {
		weight += (1 - weight) * float64(numCom-prefix-1) / float64(lenA+lenB-2*prefix+2)
	}
	return weight
}
