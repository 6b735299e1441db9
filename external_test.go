package strmetric

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTryBackendSuccess(t *testing.T) {
	be := &Backend{
		ID:     "test.always_one",
		Invoke: func(seqs []string) (float64, error) { return 1, nil },
	}
	v, ok, err := tryBackend(be, []string{"a", "b"})
	if err != nil || !ok || v != 1 {
		t.Fatalf("got v=%v ok=%v err=%v", v, ok, err)
	}
}

func TestTryBackendRecoversPanic(t *testing.T) {
	be := &Backend{
		ID:     "test.panics",
		Invoke: func(seqs []string) (float64, error) { panic("boom") },
	}
	_, ok, err := tryBackend(be, []string{"a", "b"})
	if ok || err == nil {
		t.Fatalf("expected ok=false with non-nil err, got ok=%v err=%v", ok, err)
	}
}

func TestBaseDispatchesToRegisteredBackend(t *testing.T) {
	RegisterBackend("test_external_dispatch_algo", &Backend{
		ID:           "test.double_first",
		Precondition: func(b *Base, seqs []string) bool { return len(seqs) == 2 },
		Invoke:       func(seqs []string) (float64, error) { return 42, nil },
	})

	alg := &Base{
		name:     "test_external_dispatch_algo",
		kind:     KindDistance,
		hasTok:   false,
		external: true,
		maximum:  maxRuneLen,
		compute: func(raw []string, _ [][]string) (float64, error) {
			t.Fatal("internal kernel should not run when a backend resolves")
			return 0, nil
		},
	}
	got, err := alg.Call("foo", "bar")
	if err != nil {
		t.Fatal(err)
	}
	closeEnough(t, "external dispatch", got, 42)
}

func TestLoadRankingMissingFileIsEmpty(t *testing.T) {
	r := LoadRanking(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if len(r) != 0 {
		t.Errorf("expected empty ranking, got %v", r)
	}
}

func TestLoadRankingMalformedJSONIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	r := LoadRanking(path)
	if len(r) != 0 {
		t.Errorf("expected empty ranking, got %v", r)
	}
}

func TestLoadRankingValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking.json")
	body := `{"damerau_unrestricted": [["matchr", "DamerauLevenshtein"]]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	r := LoadRanking(path)
	order, ok := r["damerau_unrestricted"]
	if !ok || len(order) != 1 || order[0][0] != "matchr" {
		t.Errorf("unexpected ranking: %v", r)
	}
}

func TestRankingApplyReorders(t *testing.T) {
	const name = "test_ranking_apply_algo"
	RegisterBackend(name, &Backend{ID: "pkg.Slow"})
	RegisterBackend(name, &Backend{ID: "pkg.Fast"})

	r := Ranking{name: [][2]string{{"pkg", "Fast"}, {"pkg", "Slow"}}}
	r.Apply()

	registryMu.Lock()
	got := registry[name][0].ID
	registryMu.Unlock()
	if got != "pkg.Fast" {
		t.Errorf("expected pkg.Fast ranked first, got %s", got)
	}
}
