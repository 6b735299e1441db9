// Package obscfg resolves strmetric's two pieces of on-disk configuration:
// the external-backend ranking file (spec §6) and an optional
// AlgorithmDefaults YAML layer (gap costs, matrices, phonetic groups, NCD
// coefficients). Grounded on the teacher's config/env.go and config/xdg.go
// (XDG precedence resolution) and config/layered.go (defaults+override
// merge style), minus the crucible/schema-catalog validation tier those
// depend on (see DESIGN.md for why that tier was not carried over).
package obscfg

import (
	"os"
	"path/filepath"
)

const (
	envRankingFile  = "STRMETRIC_RANKING_FILE"
	appName         = "strmetric"
	rankingFileName = "ranking.json"
)

// RankingPath resolves the external-backend ranking file path in XDG
// precedence order (spec §6):
//  1. $STRMETRIC_RANKING_FILE, if set;
//  2. $XDG_CONFIG_HOME/strmetric/ranking.json, or
//     $HOME/.config/strmetric/ranking.json when XDG_CONFIG_HOME is unset;
//  3. ./strmetric.ranking.json (current working directory fallback, used
//     only when neither XDG_CONFIG_HOME nor HOME is set).
//
// The returned path is not guaranteed to exist; LoadRanking (package
// strmetric) tolerates a missing file per spec §6.
func RankingPath() string {
	if p := os.Getenv(envRankingFile); p != "" {
		return p
	}
	if dir := xdgConfigHome(); dir != "" {
		return filepath.Join(dir, appName, rankingFileName)
	}
	return "./" + appName + ".ranking.json"
}

// xdgConfigHome mirrors the teacher's getXDGConfigHome: $XDG_CONFIG_HOME,
// falling back to $HOME/.config, empty if neither is set.
func xdgConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config")
	}
	return ""
}
