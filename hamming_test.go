package strmetric

import "testing"

func TestHammingDistance(t *testing.T) {
	h := NewHamming()
	cases := []struct {
		a, b string
		want float64
	}{
		{"test", "text", 1},
		{"test", "test", 0},
		{"abc", "abcd", 1},
		{"", "abc", 3},
	}
	for _, c := range cases {
		got, err := h.Call(c.a, c.b)
		if err != nil {
			t.Fatalf("%q/%q: %v", c.a, c.b, err)
		}
		closeEnough(t, c.a+"/"+c.b, got, c.want)
	}
}

func TestHammingTruncate(t *testing.T) {
	h := NewHamming(WithHammingTruncate(true))
	got, err := h.Call("abc", "abcd")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "truncate", got, 0)
}

func TestHammingNormalizedSimilarity(t *testing.T) {
	h := NewHamming()
	got, err := h.NormalizedSimilarity("test", "text")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "normalized similarity", got, 0.75)
}
