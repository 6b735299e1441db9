package strmetric

import "testing"

func TestDamerauOSATransposition(t *testing.T) {
	d := NewDamerauOSA()
	got, err := d.Call("ab", "ba")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "adjacent transpose", got, 1)
}

func TestDamerauOSALongRangeNotCollapsed(t *testing.T) {
	// OSA forbids editing the same substring twice, so the long-range
	// transposition in "CA"->"ABC" costs more than the unrestricted variant.
	d := NewDamerauOSA()
	got, err := d.Call("CA", "ABC")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "osa long range", got, 3)
}

func TestDamerauUnrestrictedLongRangeTransposition(t *testing.T) {
	d := NewDamerauUnrestricted()
	got, err := d.Call("CA", "ABC")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "unrestricted long range", got, 2)
}

func TestDamerauUnrestrictedIdentical(t *testing.T) {
	d := NewDamerauUnrestricted()
	got, err := d.Call("test", "test")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "identical", got, 0)
}
