package strmetric

import "strings"

// PhoneticOption configures MRA.
type PhoneticOption func(*phoneticConfig)

type phoneticConfig struct {
	external bool
}

// WithMRAExternal enables external-backend dispatch for MRA.
func WithMRAExternal(external bool) PhoneticOption {
	return func(c *phoneticConfig) { c.external = external }
}

// NewMRA builds the Western Airlines Match Rating Approach surname
// comparison (spec §4.6): each word is reduced to a code (first letter kept,
// non-initial vowels dropped, runs collapsed, long codes trimmed to head+tail),
// then codes are compared column-wise across all inputs directly — MRA
// generalizes to n sequences without the permutation wrapper.
func NewMRA(opts ...PhoneticOption) *Base {
	cfg := phoneticConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Base{
		name:     "mra",
		kind:     KindSimilarity,
		hasTok:   false,
		external: cfg.external,
		maximum: func(raw []string, _ [][]string) (float64, error) {
			max := 0
			for _, s := range raw {
				if n := len(mraEncode(s)); n > max {
					max = n
				}
			}
			return float64(max), nil
		},
		compute: func(raw []string, _ [][]string) (float64, error) {
			return mraCompare(raw), nil
		},
	}
}

// mraEncode reduces a word to its Match Rating code: first letter, then
// non-initial AEIOU dropped, then runs of identical letters collapsed, then
// (if still longer than 6) trimmed to its first 3 and last 3 characters.
func mraEncode(word string) []rune {
	if word == "" {
		return nil
	}
	upper := []rune(strings.ToUpper(word))
	kept := make([]rune, 0, len(upper))
	kept = append(kept, upper[0])
	for _, r := range upper[1:] {
		if !strings.ContainsRune("AEIOU", r) {
			kept = append(kept, r)
		}
	}

	collapsed := make([]rune, 0, len(kept))
	for i, r := range kept {
		if i == 0 || r != kept[i-1] {
			collapsed = append(collapsed, r)
		}
	}

	if len(collapsed) > 6 {
		head := append([]rune(nil), collapsed[:3]...)
		tail := collapsed[len(collapsed)-3:]
		return append(head, tail...)
	}
	return collapsed
}

// mraCompare ports the original column-wise residue-peeling comparison
// directly: no input empty, codes within `count` of each other in
// length, then `count` rounds of removing identical columns and folding the
// residue back in, ending in max_initial_length - max(final_lengths).
func mraCompare(raw []string) float64 {
	for _, s := range raw {
		if s == "" {
			return 0
		}
	}

	sequences := make([][]rune, len(raw))
	for i, s := range raw {
		sequences[i] = mraEncode(s)
	}

	count := len(sequences)
	lengths := make([]int, count)
	maxLength, minLength := 0, -1
	for i, seq := range sequences {
		lengths[i] = len(seq)
		if lengths[i] > maxLength {
			maxLength = lengths[i]
		}
		if minLength < 0 || lengths[i] < minLength {
			minLength = lengths[i]
		}
	}
	if maxLength-minLength > count {
		return 0
	}

	for round := 0; round < count; round++ {
		minlen := lengths[0]
		for _, l := range lengths {
			if l < minlen {
				minlen = l
			}
		}

		residues := make([][]rune, count)
		for col := 0; col < minlen; col++ {
			identical := true
			for i := 1; i < count; i++ {
				if sequences[i][col] != sequences[0][col] {
					identical = false
					break
				}
			}
			if !identical {
				for i := 0; i < count; i++ {
					residues[i] = append(residues[i], sequences[i][col])
				}
			}
		}

		for i := 0; i < count; i++ {
			tail := sequences[i][minlen:]
			sequences[i] = append(residues[i], tail...)
			lengths[i] = len(sequences[i])
		}
	}

	maxFinal := lengths[0]
	for _, l := range lengths {
		if l > maxFinal {
			maxFinal = l
		}
	}
	return float64(maxLength - maxFinal)
}

// EditexOption configures Editex.
type EditexOption func(*editexConfig)

type editexConfig struct {
	local        bool
	matchCost    int
	groupCost    int
	mismatchCost int
	groups       []map[rune]bool
	groupsSet    bool
	ungrouped    map[rune]bool
	ungroupedSet bool
	external     bool
}

// WithEditexLocal switches from global edit cost (row and column 0 both
// initialized via d_cost chains) to local, where column 0 (the first input's
// prefix) stays 0 and row 0 is still initialized via d_cost.
func WithEditexLocal(local bool) EditexOption {
	return func(c *editexConfig) { c.local = local }
}

// WithEditexCosts sets match/group/mismatch costs; constrained so
// match ≤ group ≤ mismatch (spec §4.6).
func WithEditexCosts(match, group, mismatch int) EditexOption {
	return func(c *editexConfig) {
		c.matchCost = match
		if group < match {
			group = match
		}
		c.groupCost = group
		if mismatch < group {
			mismatch = group
		}
		c.mismatchCost = mismatch
	}
}

// WithEditexGroups overrides the phonetic similarity groups. Supplying this
// without WithEditexUngrouped makes NewEditex panic with ErrInvalidOption
// (spec §7, "ungrouped required with groups").
func WithEditexGroups(groups []string) EditexOption {
	return func(c *editexConfig) {
		c.groups = make([]map[rune]bool, len(groups))
		for i, g := range groups {
			m := make(map[rune]bool, len(g))
			for _, r := range g {
				m[r] = true
			}
			c.groups[i] = m
		}
		c.groupsSet = true
	}
}

// WithEditexUngrouped supplies the "silent letters" set required whenever
// WithEditexGroups is used.
func WithEditexUngrouped(ungrouped string) EditexOption {
	return func(c *editexConfig) {
		c.ungrouped = make(map[rune]bool, len(ungrouped))
		for _, r := range ungrouped {
			c.ungrouped[r] = true
		}
		c.ungroupedSet = true
	}
}

// WithEditexExternal enables external-backend dispatch.
func WithEditexExternal(external bool) EditexOption {
	return func(c *editexConfig) { c.external = external }
}

var defaultEditexGroups = []string{"AEIOUY", "BP", "CKQ", "DT", "LR", "MN", "GJ", "FPV", "SXZ", "CSZ"}
var defaultEditexUngrouped = "HW"

// NewEditex builds the Editex phonetic edit-distance (spec §4.6): a DP over
// the uppercased, blank-sentineled sequences with r_cost/d_cost distinguishing
// exact match, same-group, and mismatch, the "silent letters" set getting a
// softened cost under d_cost. Ported from the teacher-adjacent Python
// reference (groups/ungrouped tables and the r/d cost split) to a full-matrix
// Go DP over runes.
func NewEditex(opts ...EditexOption) *Base {
	cfg := editexConfig{matchCost: 0, groupCost: 1, mismatchCost: 2}
	cfg.groups = make([]map[rune]bool, len(defaultEditexGroups))
	for i, g := range defaultEditexGroups {
		m := make(map[rune]bool, len(g))
		for _, r := range g {
			m[r] = true
		}
		cfg.groups[i] = m
	}
	cfg.ungrouped = map[rune]bool{'H': true, 'W': true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.groupsSet && !cfg.ungroupedSet {
		panic(newInvalidOption("editex", "groups", "ungrouped required with groups"))
	}

	groupedSet := make(map[rune]bool)
	for _, group := range cfg.groups {
		for r := range group {
			groupedSet[r] = true
		}
	}
	e := &editexEngine{cfg: cfg, groupedSet: groupedSet}
	return &Base{
		name:     "editex",
		kind:     KindDistance,
		hasTok:   false,
		external: cfg.external,
		maximum: func(raw []string, _ [][]string) (float64, error) {
			max := 0
			for _, s := range raw {
				if n := runeLen(s); n > max {
					max = n
				}
			}
			return float64(max * cfg.mismatchCost), nil
		},
		compute: func(raw []string, _ [][]string) (float64, error) {
			return aggregatePairwise(KindDistance, raw, func(a, b string) (float64, error) {
				return e.distance(a, b), nil
			})
		},
	}
}

type editexEngine struct {
	cfg        editexConfig
	groupedSet map[rune]bool
}

func (e *editexEngine) rCost(a, b rune) int {
	if a == b {
		return e.cfg.matchCost
	}
	grouped := e.groupedSet
	if !grouped[a] || !grouped[b] {
		return e.cfg.mismatchCost
	}
	for _, group := range e.cfg.groups {
		if group[a] && group[b] {
			return e.cfg.groupCost
		}
	}
	return e.cfg.mismatchCost
}

func (e *editexEngine) dCost(a, b rune) int {
	if a != b && e.cfg.ungrouped[a] {
		return e.cfg.groupCost
	}
	return e.rCost(a, b)
}

func (e *editexEngine) distance(s1, s2 string) float64 {
	maxLength := runeLen(s1)
	if n := runeLen(s2); n > maxLength {
		maxLength = n
	}

	a := append([]rune{' '}, []rune(strings.ToUpper(s1))...)
	b := append([]rune{' '}, []rune(strings.ToUpper(s2))...)
	lenA, lenB := len(a)-1, len(b)-1

	d := make([][]int, lenA+1)
	for i := range d {
		d[i] = make([]int, lenB+1)
	}

	if !e.cfg.local {
		for i := 1; i <= lenA; i++ {
			d[i][0] = d[i-1][0] + e.dCost(a[i-1], a[i])
		}
	}
	for j := 1; j <= lenB; j++ {
		d[0][j] = d[0][j-1] + e.dCost(b[j-1], b[j])
	}

	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			del := d[i-1][j] + e.dCost(a[i-1], a[i])
			ins := d[i][j-1] + e.dCost(b[j-1], b[j])
			sub := d[i-1][j-1] + e.rCost(a[i], b[j])
			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			d[i][j] = min
		}
	}

	result := float64(d[lenA][lenB])
	bound := float64(maxLength * e.cfg.mismatchCost)
	if result > bound {
		return bound
	}
	return result
}
