package strmetric

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/zeebo/xxh3"
)

// Backend describes one external-backend candidate for an algorithm (spec
// §4.4): an identity string (module+function, e.g. "matchr.JaroWinkler"),
// a precondition that must hold for the current call, an optional input
// "prepare" transform, and the call itself.
type Backend struct {
	ID           string
	Precondition func(b *Base, seqs []string) bool
	Prepare      func(seqs []string) []string
	Invoke       func(prepared []string) (float64, error)
}

var (
	registryMu sync.Mutex
	registry   = map[string][]*Backend{}

	resolveCacheMu sync.Mutex
	resolveCache   = map[uint64]*Backend{}
)

// RegisterBackend appends be to the ordered candidate list for algorithm
// name. Registration order is the default dispatch order until a ranking
// file (LoadRanking) reorders it.
func RegisterBackend(name string, be *Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = append(registry[name], be)
}

// resolveFromRegistry returns the first registered backend for name whose
// precondition holds for this call, or nil if none match or none are
// registered. The decision is cached by a hash of the algorithm name plus a
// coarse call-shape signature (input count, empty-ness) so that repeated
// Base instances configured identically do not re-walk the candidate list.
// The key holds neither b's configuration nor later registry changes, so a
// cached decision is returned as is for any call of the same name and shape.
func resolveFromRegistry(name string, b *Base, seqs []string) *Backend {
	registryMu.Lock()
	candidates := registry[name]
	registryMu.Unlock()
	if len(candidates) == 0 {
		return nil
	}

	key := resolutionSignature(name, seqs)
	resolveCacheMu.Lock()
	if cached, ok := resolveCache[key]; ok {
		resolveCacheMu.Unlock()
		return cached
	}
	resolveCacheMu.Unlock()

	var chosen *Backend
	for _, be := range candidates {
		if be.Precondition(b, seqs) {
			chosen = be
			break
		}
	}

	resolveCacheMu.Lock()
	resolveCache[key] = chosen
	resolveCacheMu.Unlock()
	return chosen
}

// resolutionSignature hashes the algorithm name and the call shape (input
// count, which inputs are empty) into a stable cache key using xxh3, the
// fast non-cryptographic hash already in the domain stack.
func resolutionSignature(name string, seqs []string) uint64 {
	var buf bytes.Buffer
	buf.WriteString(name)
	fmt.Fprintf(&buf, "|%d", len(seqs))
	for _, s := range seqs {
		if s == "" {
			buf.WriteString("|0")
		} else {
			buf.WriteString("|1")
		}
	}
	return xxh3.Hash(buf.Bytes())
}

// tryBackend invokes be, recovering from any panic so a misbehaving
// external backend never takes the caller down with it (spec §7, "external
// backend exception: silently swallowed"). ok is false when the backend's
// own Invoke returned an error or panicked; the caller falls through to the
// next backend or the internal kernel.
func tryBackend(be *Backend, seqs []string) (value float64, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("backend %s panicked: %v", be.ID, r)
		}
	}()

	prepared := seqs
	if be.Prepare != nil {
		prepared = be.Prepare(seqs)
	}
	v, invokeErr := be.Invoke(prepared)
	if invokeErr != nil {
		return 0, false, invokeErr
	}
	return v, true, nil
}

// Ranking is the persisted, UTF-8 JSON external-backend ordering from spec
// §6: a top-level object mapping algorithm name to an ordered list of
// [module, function] pairs, best backend first.
type Ranking map[string][][2]string

const rankingSchemaJSON = `{
  "type": "object",
  "additionalProperties": {
    "type": "array",
    "items": {
      "type": "array",
      "items": {"type": "string"},
      "minItems": 2,
      "maxItems": 2
    }
  }
}`

var rankingSchema = sync.OnceValue(func() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("ranking.json", strings.NewReader(rankingSchemaJSON)); err != nil {
		panic(err)
	}
	s, err := c.Compile("ranking.json")
	if err != nil {
		panic(err)
	}
	return s
})

// LoadRanking reads and validates a persisted ranking file. A missing file
// is tolerated (returns an empty Ranking, no error); a malformed file (bad
// JSON or schema mismatch) is also tolerated per spec §6, falling back to an
// empty ranking rather than failing the caller.
func LoadRanking(path string) Ranking {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from trusted config resolution (internal/obscfg)
	if err != nil {
		return Ranking{}
	}
	return parseRanking(data)
}

// LoadRankingDir globs pattern (e.g. "rankings/*.json") under dir with
// doublestar and merges every matching shard into one Ranking, later files
// overriding earlier ones for a given algorithm name. This lets an
// operator ship per-platform or per-backend ranking shards instead of one
// monolithic file.
func LoadRankingDir(dir, pattern string) Ranking {
	merged := Ranking{}
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return merged
	}
	sort.Strings(matches)
	for _, m := range matches {
		data, err := os.ReadFile(dir + string(os.PathSeparator) + m) // #nosec G304 -- dir/pattern are operator-supplied config
		if err != nil {
			continue
		}
		for k, v := range parseRanking(data) {
			merged[k] = v
		}
	}
	return merged
}

func parseRanking(data []byte) Ranking {
	var raw map[string][][2]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return Ranking{}
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return Ranking{}
	}
	if err := rankingSchema().Validate(generic); err != nil {
		return Ranking{}
	}

	return Ranking(raw)
}

// Apply reorders the in-process registry for every algorithm named in the
// ranking: backends are sorted best-first per the ranking's [module,
// function] order. It removes no candidate: those the ranking doesn't
// mention are kept, after the ranked ones, in registration order.
func (r Ranking) Apply() {
	registryMu.Lock()
	defer registryMu.Unlock()

	for name, order := range r {
		candidates := registry[name]
		if len(candidates) == 0 {
			continue
		}
		rank := make(map[string]int, len(order))
		for i, pair := range order {
			rank[pair[0]+"."+pair[1]] = i
		}
		sorted := append([]*Backend(nil), candidates...)
		sort.SliceStable(sorted, func(i, j int) bool {
			ri, iok := rank[sorted[i].ID]
			rj, jok := rank[sorted[j].ID]
			if iok && jok {
				return ri < rj
			}
			return iok && !jok
		})
		registry[name] = sorted
	}
}
