package strmetric

import (
	"errors"
	"math"
	"testing"
)

func TestTokenKernelsCharLevel(t *testing.T) {
	cases := []struct {
		name string
		alg  Algorithm
		want float64
	}{
		{"jaccard", NewJaccard(), 0.6},
		{"sorensen_dice", NewSorensenDice(), 0.75},
		{"overlap", NewOverlap(), 0.75},
		{"cosine", NewCosine(), 0.75},
		{"tversky_default_is_jaccard", NewTversky(), 0.6},
	}
	for _, c := range cases {
		got, err := c.alg.Call("test", "text")
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		closeEnough(t, c.name, got, c.want)
	}
}

func TestTanimotoIsLog2Jaccard(t *testing.T) {
	tn := NewTanimoto()
	got, err := tn.Call("test", "text")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "tanimoto", got, math.Log2(0.6))
}

func TestTanimotoNoOverlapIsNegInf(t *testing.T) {
	tn := NewTanimoto()
	got, err := tn.Call("abc", "xyz")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(got, -1) {
		t.Errorf("expected -Inf, got %v", got)
	}
}

func TestBagAsymmetricCount(t *testing.T) {
	b := NewBag()
	got, err := b.Call("test", "text")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "bag", got, 1)
}

func TestTverskyRequiresTwoInputs(t *testing.T) {
	tv := NewTversky()
	_, err := tv.Call("a", "b", "c")
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestBagRequiresTwoInputs(t *testing.T) {
	b := NewBag()
	_, err := b.Call("a", "b", "c")
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestMongeElkanWordPermutation(t *testing.T) {
	me := NewMongeElkan()
	got, err := me.Call("cat dog", "dog cat")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "permuted words", got, 1)
}

func TestMongeElkanRequiresTwoInputs(t *testing.T) {
	me := NewMongeElkan()
	_, err := me.Call("a", "b", "c")
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}
