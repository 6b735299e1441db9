package obstel

import "testing"

type recordingSink struct {
	calls []string
}

func (r *recordingSink) Counter(name string, value float64, tags map[string]string) {
	r.calls = append(r.calls, name)
}

func TestEmitNoopWithoutSink(t *testing.T) {
	Disable()
	Emit("strmetric.test", 1, nil) // must not panic
}

func TestEnableDisableRouting(t *testing.T) {
	rec := &recordingSink{}
	Enable(rec)
	defer Disable()

	Emit("strmetric.test", 1, map[string]string{"k": "v"})
	if len(rec.calls) != 1 || rec.calls[0] != "strmetric.test" {
		t.Errorf("expected one recorded call, got %v", rec.calls)
	}

	Disable()
	Emit("strmetric.test", 1, nil)
	if len(rec.calls) != 1 {
		t.Errorf("expected no additional calls after Disable, got %v", rec.calls)
	}
}
