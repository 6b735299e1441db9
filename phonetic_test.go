package strmetric

import "testing"

func TestMRASimilarity(t *testing.T) {
	mra := NewMRA()
	got, err := mra.Call("ABCD", "ABCE")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "ABCD/ABCE", got, 3)

	max, err := mra.Maximum("ABCD", "ABCE")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "maximum", max, 4)
}

func TestMRAEmptyInput(t *testing.T) {
	mra := NewMRA()
	got, err := mra.Call("abc", "")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "mixed empty", got, 0)
}

func TestEditexSameGroupMismatch(t *testing.T) {
	e := NewEditex()
	got, err := e.Call("CAT", "KAT")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "CAT/KAT", got, 1)
}

func TestEditexGroupsRequireUngrouped(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic when groups set without ungrouped")
		}
	}()
	NewEditex(WithEditexGroups([]string{"AEIOU"}))
}
