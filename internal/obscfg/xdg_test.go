package obscfg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRankingPathEnvOverride(t *testing.T) {
	t.Setenv(envRankingFile, "/tmp/custom-ranking.json")
	if got := RankingPath(); got != "/tmp/custom-ranking.json" {
		t.Errorf("got %q, want /tmp/custom-ranking.json", got)
	}
}

func TestRankingPathXDGConfigHome(t *testing.T) {
	t.Setenv(envRankingFile, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	want := filepath.Join("/xdg", "strmetric", "ranking.json")
	if got := RankingPath(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRankingPathFallback(t *testing.T) {
	t.Setenv(envRankingFile, "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	if got := RankingPath(); got != "./strmetric.ranking.json" {
		t.Errorf("got %q, want ./strmetric.ranking.json", got)
	}
}

func TestLoadAlgorithmDefaultsMissingFile(t *testing.T) {
	d, err := LoadAlgorithmDefaults("/nonexistent/path/defaults.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if d.GapCost != nil {
		t.Errorf("expected zero-value defaults, got GapCost=%v", *d.GapCost)
	}
}

func TestLoadAlgorithmDefaultsParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")
	yamlBody := "gap_cost: 2.5\nentropy_base: 2\nmatrix:\n  \"A,G\": -1\n"
	if err := os.WriteFile(path, []byte(yamlBody), 0o600); err != nil {
		t.Fatal(err)
	}
	d, err := LoadAlgorithmDefaults(path)
	if err != nil {
		t.Fatal(err)
	}
	if d.GapCost == nil || *d.GapCost != 2.5 {
		t.Errorf("GapCost: got %v, want 2.5", d.GapCost)
	}
	pairs := d.MatrixPairs()
	if pairs[[2]string{"A", "G"}] != -1 {
		t.Errorf("matrix override not parsed: %v", pairs)
	}
}
