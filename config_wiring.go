package strmetric

import (
	"go.uber.org/zap"

	"github.com/fulmenhq/strmetric/internal/obscfg"
	"github.com/fulmenhq/strmetric/internal/obslog"
)

// ConfigureLogging installs the package-wide structured logger (spec
// SPEC_FULL.md "Logging"). Uninitialized, the package logs nothing (a
// no-op zap core), matching the library's "pure synchronous computation,
// no ambient output by default" posture (spec §5).
func ConfigureLogging(cfg obslog.Config) error {
	return obslog.Configure(cfg)
}

// DefaultRankingPath resolves the external-backend ranking file location
// in XDG precedence order (spec §6), without loading it.
func DefaultRankingPath() string {
	return obscfg.RankingPath()
}

// LoadDefaultRanking resolves and loads the ranking file from
// DefaultRankingPath, applying it to the in-process backend registry. A
// missing or malformed file degrades to an empty ranking (spec §6); either
// way this never errors.
func LoadDefaultRanking() {
	path := DefaultRankingPath()
	ranking := LoadRanking(path)
	if len(ranking) == 0 {
		obslog.L().Debug("no external-backend ranking applied", zap.String("path", path))
		return
	}
	ranking.Apply()
	obslog.L().Info("applied external-backend ranking", zap.String("path", path), zap.Int("algorithms", len(ranking)))
}

// LoadDefaultAlgorithmDefaults resolves AlgorithmDefaults from path (see
// internal/obscfg.AlgorithmDefaults) and logs the outcome; the caller
// decides how to thread the returned value into its own algorithm
// constructors (e.g. WithGapCost(*d.GapCost)).
func LoadDefaultAlgorithmDefaults(path string) obscfg.AlgorithmDefaults {
	d, err := obscfg.LoadAlgorithmDefaults(path)
	if err != nil {
		obslog.L().Warn("algorithm defaults not applied", zap.String("path", path), zap.Error(err))
		return obscfg.AlgorithmDefaults{}
	}
	return d
}
