package strmetric

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	l := NewLevenshtein()
	cases := []struct {
		a, b string
		want float64
	}{
		{"test", "text", 1},
		{"test", "test", 0},
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"abc", "", 3},
	}
	for _, c := range cases {
		got, err := l.Call(c.a, c.b)
		if err != nil {
			t.Fatalf("%q/%q: %v", c.a, c.b, err)
		}
		closeEnough(t, c.a+"/"+c.b, got, c.want)
	}
}

func TestLevenshteinThreeInputs(t *testing.T) {
	l := NewLevenshtein()
	got, err := l.Call("test", "test", "test")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "all identical", got, 0)
}

func TestLevenshteinQvalWords(t *testing.T) {
	l := NewLevenshtein(WithLevenshteinQval(0))
	got, err := l.Call("the quick fox", "the quick fox")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "word-level identical", got, 0)
}
