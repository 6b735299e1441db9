package strmetric

import (
	"github.com/clipperhouse/uax29/v2/words"
)

// Tokenizer adapts a raw string into the element sequence an algorithm
// operates over, per the element-granularity rule in spec §3:
//
//   - Qval == 0 (the "None" case): split into word tokens.
//   - Qval == 1: atomic elements, one token per rune.
//   - Qval >= 2: overlapping q-grams, tokens of length Qval runes.
type Tokenizer struct {
	Qval int
}

// Tokenize splits s into its element sequence. For Qval<=1 every element is
// a single rune rendered back to a string (so token identity matches rune
// identity). Every call allocates: the input is converted to a rune slice
// and a new token slice is built, Qval==1 included.
func (t Tokenizer) Tokenize(s string) []string {
	if t.Qval == 0 {
		return splitWords(s)
	}
	runes := []rune(s)
	if t.Qval <= 1 {
		out := make([]string, len(runes))
		for i, r := range runes {
			out[i] = string(r)
		}
		return out
	}
	return ngrams(runes, t.Qval)
}

// ngrams returns the lazy-in-spirit (eagerly materialized, since Go has no
// generator story as cheap as Python's) sequence of consecutive length-q
// windows over runes, as spec §4.1 describes. Output length is
// max(0, len(runes)-q+1).
func ngrams(runes []rune, q int) []string {
	n := len(runes) - q + 1
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = string(runes[i : i+q])
	}
	return out
}

// splitWords performs Unicode-aware (UAX #29) word segmentation, upgrading
// the plain-whitespace split spec §4.1 describes as the baseline behavior:
// punctuation-adjacent words and script boundaries are handled the way a
// real text layout engine would, not just ASCII whitespace splitting.
func splitWords(s string) []string {
	var out []string
	seg := words.NewSegmenter([]byte(s))
	for seg.Next() {
		tok := seg.Value()
		if len(tok) == 0 {
			continue
		}
		if isWordToken(tok) {
			out = append(out, string(tok))
		}
	}
	return out
}

// isWordToken reports whether a UAX #29 word-break segment carries actual
// word content as opposed to pure whitespace/punctuation filler, which the
// segmenter also yields as segments between words.
func isWordToken(tok []byte) bool {
	for _, r := range string(tok) {
		if isWordRune(r) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r > 127:
		return true
	default:
		return false
	}
}

// runeLen returns the Unicode rune count of s, the canonical length measure
// used throughout this package instead of len(s) (byte count).
func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
