package obscfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AlgorithmDefaults is the optional YAML-configured tuning layer for
// algorithm constructors that would otherwise hardcode a constant: gap
// costs for the alignment kernels, a substitution matrix for table-driven
// scoring, phonetic group overrides for Editex, and NCD compressor
// coefficients. Every scalar field except Ungrouped is a pointer, and Matrix
// and PhoneticGroups stay nil, so an absent YAML key leaves the
// constructor's own hardcoded default untouched, matching the teacher's
// defaults+override merge style (config/layered.go) without the
// crucible-schema validation tier it depends on.
type AlgorithmDefaults struct {
	GapCost *float64 `yaml:"gap_cost"`
	GapOpen *float64 `yaml:"gap_open"`
	GapExt  *float64 `yaml:"gap_ext"`

	// Matrix is a flattened substitution-matrix override: keys are
	// "A,B"-style two-element pairs, values the cost. Loaded as written so
	// NewMatrix's caller can key a map[[2]string]float64 off it directly.
	Matrix map[string]float64 `yaml:"matrix"`

	// PhoneticGroups overrides Editex's default phonetic groups; each
	// string is a group of letters that cost group_cost instead of
	// mismatch_cost when substituted for one another.
	PhoneticGroups []string `yaml:"phonetic_groups"`
	Ungrouped      string   `yaml:"ungrouped"`

	ArithBase    *float64 `yaml:"arith_base"`
	EntropyBase  *float64 `yaml:"entropy_base"`
	EntropyCoef  *float64 `yaml:"entropy_coef"`
	BWTTerminator *string `yaml:"bwt_terminator"`
}

// LoadAlgorithmDefaults reads and parses path as YAML. A missing file
// returns a zero-value AlgorithmDefaults (every override absent) and no
// error, matching the ranking file's "missing is tolerated" posture (spec
// §6) rather than failing construction.
func LoadAlgorithmDefaults(path string) (AlgorithmDefaults, error) {
	var d AlgorithmDefaults
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from trusted config resolution
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, fmt.Errorf("obscfg: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("obscfg: parse %s: %w", path, err)
	}
	return d, nil
}

// MatrixPairs converts the flattened YAML matrix override into the
// map[[2]string]float64 shape NewMatrix expects. Keys must be formatted
// "A,B"; malformed keys are skipped rather than erroring, since a bad
// override entry should degrade to the constructor's own default rather
// than fail construction outright.
func (d AlgorithmDefaults) MatrixPairs() map[[2]string]float64 {
	out := make(map[[2]string]float64, len(d.Matrix))
	for k, v := range d.Matrix {
		a, b, ok := splitPair(k)
		if !ok {
			continue
		}
		out[[2]string{a, b}] = v
	}
	return out
}

func splitPair(key string) (string, string, bool) {
	for i, r := range key {
		if r == ',' {
			return key[:i], key[i+1:], true
		}
	}
	return "", "", false
}
