package strmetric

import "testing"

func TestPrefixSimilarity(t *testing.T) {
	p := NewPrefix()
	got, err := p.Call("interspecies", "interstellar", "interstate")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "prefix", got, 6)
}

func TestPostfixSimilarity(t *testing.T) {
	p := NewPostfix()
	got, err := p.Call("walking", "talking")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "postfix", got, 6)
}

func TestLengthDistance(t *testing.T) {
	l := NewLength()
	got, err := l.Call("abc", "abcdef", "ab")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "length spread", got, 4)
}

func TestIdentity(t *testing.T) {
	id := NewIdentity()
	got, err := id.Call("same", "same", "same")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "all equal", got, 1)

	got, err = id.Call("same", "different")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "not equal", got, 0)
}
