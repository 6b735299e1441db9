package strmetric

// Multiset is a mapping from element to nonnegative count, the counter
// algebra spec §4.2 describes. All operations are O(total elements); the
// iteration order over a Multiset is never observable in any result this
// package returns.
type Multiset map[string]int

// counter builds the frequency count over tok.
func counter(tok []string) Multiset {
	m := make(Multiset, len(tok))
	for _, t := range tok {
		m[t]++
	}
	return m
}

// intersect returns the element-wise minimum across ms. Keys missing from a
// given input count as 0 for that input.
func intersect(ms ...Multiset) Multiset {
	if len(ms) == 0 {
		return Multiset{}
	}
	out := make(Multiset, len(ms[0]))
	for k, v := range ms[0] {
		min := v
		for _, m := range ms[1:] {
			if c := m[k]; c < min {
				min = c
			}
		}
		if min > 0 {
			out[k] = min
		}
	}
	return out
}

// union returns the element-wise maximum across ms.
func union(ms ...Multiset) Multiset {
	out := make(Multiset)
	for _, m := range ms {
		for k, v := range m {
			if v > out[k] {
				out[k] = v
			}
		}
	}
	return out
}

// sumMultisets returns the element-wise sum across ms.
func sumMultisets(ms ...Multiset) Multiset {
	out := make(Multiset)
	for _, m := range ms {
		for k, v := range m {
			out[k] += v
		}
	}
	return out
}

// size returns the multiset's magnitude: distinct-key count under set
// semantics, or the sum of all counts under bag semantics.
func (m Multiset) size(asSet bool) int {
	if asSet {
		return len(m)
	}
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

// difference returns a\b: for each key in a, max(0, a[k]-b[k]).
func difference(a, b Multiset) Multiset {
	out := make(Multiset, len(a))
	for k, v := range a {
		d := v - b[k]
		if d > 0 {
			out[k] = d
		}
	}
	return out
}
