package strmetric

import "testing"

func TestLCSSeqClassic(t *testing.T) {
	l := NewLCSSeq()
	got, err := l.Call("ABCBDAB", "BDCABA")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "ABCBDAB/BDCABA", got, 4)
}

func TestLCSStrSubstring(t *testing.T) {
	l := NewLCSStr()
	got, err := l.Call("ABCDEF", "ZCDEFA")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "ABCDEF/ZCDEFA", got, 4)
}

func TestLCSStrNoCommonRun(t *testing.T) {
	l := NewLCSStr()
	got, err := l.Call("abc", "xyz")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "abc/xyz", got, 0)
}

func TestRatcliffObershelpScore(t *testing.T) {
	r := NewRatcliffObershelp()
	got, err := r.Call("abc", "axc")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "abc/axc", got, 2)

	normalized, err := r.NormalizedSimilarity("abc", "axc")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "normalized", normalized, 2.0/3.0)
}
