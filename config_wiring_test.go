package strmetric

import "testing"

func TestLoadDefaultRankingMissingFileIsNoop(t *testing.T) {
	t.Setenv("STRMETRIC_RANKING_FILE", "/nonexistent/ranking.json")
	LoadDefaultRanking() // must not panic
}

func TestLoadDefaultAlgorithmDefaultsMissingFile(t *testing.T) {
	d := LoadDefaultAlgorithmDefaults("/nonexistent/defaults.yaml")
	if d.GapCost != nil {
		t.Errorf("expected zero-value defaults, got %v", d)
	}
}
