package strmetric

import "testing"

type recordingSink struct {
	names []string
}

func (r *recordingSink) Counter(name string, value float64, tags map[string]string) {
	r.names = append(r.names, name)
}

func TestEnableTelemetryRecordsQuickAnswers(t *testing.T) {
	rec := &recordingSink{}
	EnableTelemetry(rec)
	defer DisableTelemetry()

	l := NewLevenshtein()
	if _, err := l.Call("same", "same"); err != nil {
		t.Fatal(err)
	}

	found := false
	for _, n := range rec.names {
		if n == "strmetric.quick_answer" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a quick_answer counter emission, got %v", rec.names)
	}
}

func TestLengthBucket(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "empty"},
		{5, "tiny"},
		{30, "short"},
		{150, "medium"},
		{500, "long"},
		{5000, "very_long"},
	}
	for _, c := range cases {
		if got := lengthBucket(c.n); got != c.want {
			t.Errorf("lengthBucket(%d): got %q, want %q", c.n, got, c.want)
		}
	}
}
