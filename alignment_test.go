package strmetric

import "testing"

func TestNeedlemanWunschMatrix(t *testing.T) {
	m := NewMatrix(map[[2]string]float64{
		{"A", "A"}: 10, {"G", "G"}: 7, {"C", "C"}: 9, {"T", "T"}: 8,
		{"A", "G"}: -1, {"A", "C"}: -3, {"A", "T"}: -4,
		{"G", "C"}: -5, {"G", "T"}: -3, {"C", "T"}: 0,
	}, WithMatrixSymmetric(true))
	alg := NewNeedlemanWunsch(WithGapCost(5), WithSimFunc(m.Sim))
	got, err := alg.Call("AGACTAGTTAC", "CGAGACGT")
	if err != nil {
		t.Fatal(err)
	}
	if got != 16 {
		t.Errorf("got %v, want 16", got)
	}
}

func TestNeedlemanWunschIdentity(t *testing.T) {
	alg := NewNeedlemanWunsch()
	got, err := alg.Call("GATTACA", "GCATGCU")
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestNeedlemanWunschIdentityGap5(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"CGATATCAG", "TGACGSTGC", -5},
		{"AGACTAGTTAC", "TGACGSTGC", -7},
		{"AGACTAGTTAC", "CGAGACGT", -15},
	}
	alg := NewNeedlemanWunsch(WithGapCost(5))
	for _, c := range cases {
		got, err := alg.Call(c.a, c.b)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("%s/%s: got %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestGotohIdentity(t *testing.T) {
	alg := NewGotoh(WithGotohGapOpen(1), WithGotohGapExt(1))
	got, err := alg.Call("GATTACA", "GCATGCU")
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestGotohAffineGap(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"GATTACA", "GCATGCU", 0},
		{"AGACTAGTTAC", "TGACGSTGC", 1.5},
		{"AGACTAGTTAC", "CGAGACGT", 1},
	}
	alg := NewGotoh(WithGotohGapOpen(1), WithGotohGapExt(0.5))
	for _, c := range cases {
		got, err := alg.Call(c.a, c.b)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("%s/%s: got %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestGotohUniformGapMatchesNW(t *testing.T) {
	alg := NewGotoh(WithGotohGapOpen(5), WithGotohGapExt(5))
	got, err := alg.Call("AGACTAGTTAC", "CGAGACGT")
	if err != nil {
		t.Fatal(err)
	}
	if got != -15 {
		t.Errorf("got %v, want -15", got)
	}
}

func TestSmithWatermanNeverNegative(t *testing.T) {
	alg := NewSmithWaterman()
	got, err := alg.Call("GATTACA", "GCATGCU")
	if err != nil {
		t.Fatal(err)
	}
	if got < 0 {
		t.Errorf("smith-waterman result should never be negative, got %v", got)
	}
}
