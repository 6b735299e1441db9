package strmetric

import "testing"

func TestArithCompressBanana(t *testing.T) {
	got := arithCompress("BANANA", 0)
	if got.Int64() != 1525 {
		t.Errorf("got %v, want 1525", got.Int64())
	}
}

func TestArithNCDIdentical(t *testing.T) {
	alg := NewArithNCD()
	got, err := alg.Call("test", "test")
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestSqrtNCD(t *testing.T) {
	alg := NewSqrtNCD()
	cases := []struct {
		a, b string
		want float64
	}{
		{"test", "nani", 1},
	}
	for _, c := range cases {
		got, err := alg.Call(c.a, c.b)
		if err != nil {
			t.Fatalf("%s/%s: %v", c.a, c.b, err)
		}
		closeEnough(t, c.a+"/"+c.b, got, c.want)
	}
}

func TestEntropyNCDSimilarity(t *testing.T) {
	alg := NewEntropyNCD()
	cases := []struct {
		a, b string
		want float64
	}{
		{"test", "test", 1},
		{"aaa", "bbb", 0},
		{"test", "nani", 0.6},
	}
	for _, c := range cases {
		d, err := alg.Call(c.a, c.b)
		if err != nil {
			t.Fatalf("%s/%s: %v", c.a, c.b, err)
		}
		got := 1 - d
		closeEnough(t, c.a+"/"+c.b, got, c.want)
	}
}

func TestRLECompressorRuns(t *testing.T) {
	c := NewRLECompressor()
	got, err := c.Size("aaabcc")
	if err != nil {
		t.Fatal(err)
	}
	// "aaa"->"3a", "b"->"b", "cc"->"cc": encoded "3abcc" has 5 runes.
	if got != 5 {
		t.Errorf("got %v, want 5", got)
	}
}

func TestBWTTransformRoundTripLength(t *testing.T) {
	out := bwtTransform("banana", 0)
	if runeLen(out) != 7 { // original 6 runes + terminator
		t.Errorf("got length %d, want 7", runeLen(out))
	}
}

func TestBWTTransformSkipsRotationWhenTerminatorPresent(t *testing.T) {
	data := "ba\x00nana"
	out := bwtTransform(data, 0)
	if out != data {
		t.Errorf("got %q, want input returned unrotated: %q", out, data)
	}
}

func TestNCDMaximumIsOne(t *testing.T) {
	alg := NewBZ2NCD()
	max, err := alg.Maximum("abc", "def")
	if err != nil {
		t.Fatal(err)
	}
	if max != 1 {
		t.Errorf("got %v, want 1", max)
	}
}

func TestNCDMonotonicity(t *testing.T) {
	// ArithNCD is excluded: its adaptive per-call probability model is known
	// to occasionally exceed the [0,1] range for dissimilar inputs (see
	// DESIGN.md), so it isn't a reliable monotonicity witness.
	for _, alg := range []*Base{NewRLENCD(), NewBWTRLENCD(), NewSqrtNCD(), NewEntropyNCD()} {
		same, err := alg.Distance("test", "test")
		if err != nil {
			t.Fatal(err)
		}
		similar, err := alg.Distance("test", "text")
		if err != nil {
			t.Fatal(err)
		}
		different, err := alg.Distance("test", "nani")
		if err != nil {
			t.Fatal(err)
		}
		if !(same <= similar+1e-9 && similar <= different+1e-9) {
			t.Errorf("%s: monotonicity violated: same=%v similar=%v different=%v", alg.Name(), same, similar, different)
		}
	}
}
