package strmetric

import (
	"math"
	"testing"
)

func TestStrCmp95(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"MARTHA", "MARHTA", 0.9611111111111111},
		{"DWAYNE", "DUANE", 0.873},
		{"DIXON", "DICKSONX", 0.839333333},
		{"TEST", "TEXT", 0.9066666666666666},
	}
	alg := NewStrCmp95()
	for _, c := range cases {
		got, err := alg.Call(c.a, c.b)
		if err != nil {
			t.Fatalf("%s/%s: %v", c.a, c.b, err)
		}
		if math.Abs(got-c.want) > 1e-6 {
			t.Errorf("%s/%s: got %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestStrCmp95Identical(t *testing.T) {
	alg := NewStrCmp95()
	got, err := alg.Call("hello", "hello")
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("identical: got %v, want 1", got)
	}
}
