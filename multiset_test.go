package strmetric

import "testing"

func TestCounter(t *testing.T) {
	ms := counter([]string{"a", "b", "a", "c", "a"})
	if ms["a"] != 3 || ms["b"] != 1 || ms["c"] != 1 {
		t.Errorf("unexpected counts: %v", ms)
	}
}

func TestIntersectUnion(t *testing.T) {
	a := counter([]string{"a", "a", "b"})
	b := counter([]string{"a", "b", "b", "c"})

	inter := intersect(a, b)
	if inter["a"] != 1 || inter["b"] != 1 || inter["c"] != 0 {
		t.Errorf("intersect: %v", inter)
	}

	u := union(a, b)
	if u["a"] != 2 || u["b"] != 2 || u["c"] != 1 {
		t.Errorf("union: %v", u)
	}
}

func TestSumMultisets(t *testing.T) {
	a := counter([]string{"a", "b"})
	b := counter([]string{"b", "c"})
	sum := sumMultisets(a, b)
	if sum["a"] != 1 || sum["b"] != 2 || sum["c"] != 1 {
		t.Errorf("sum: %v", sum)
	}
}

func TestMultisetSize(t *testing.T) {
	ms := counter([]string{"a", "a", "b"})
	if got := ms.size(true); got != 2 {
		t.Errorf("set size: got %d, want 2", got)
	}
	if got := ms.size(false); got != 3 {
		t.Errorf("bag size: got %d, want 3", got)
	}
}

func TestDifference(t *testing.T) {
	a := counter([]string{"a", "a", "b"})
	b := counter([]string{"a", "c"})
	d := difference(a, b)
	if d["a"] != 1 || d["b"] != 1 || d["c"] != 0 {
		t.Errorf("difference: %v", d)
	}
}
