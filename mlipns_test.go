package strmetric

import "testing"

func TestMLIPNS(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"a", "", 0},
		{"", "a", 0},
		{"a", "a", 1},
		{"ab", "a", 1},
		{"abc", "abc", 1},
		{"abc", "abcde", 1},
		{"abcg", "abcdeg", 1},
		{"abcg", "abcdefg", 0},
		{"Tomato", "Tamato", 1},
		// every position mismatches (no shared alignment), so the Hamming
		// peel never drops the ratio under threshold within maxMismatches.
		{"ato", "Tam", 0},
		{"abcde", "vwxyz", 0},
		{"hello", "world", 0},
	}
	alg := NewMLIPNS()
	for _, c := range cases {
		got, err := alg.Call(c.a, c.b)
		if err != nil {
			t.Fatalf("%q/%q: %v", c.a, c.b, err)
		}
		if got != c.want {
			t.Errorf("%q/%q: got %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
