package strmetric

import (
	"strconv"

	"github.com/fulmenhq/strmetric/internal/obstel"
)

// EnableTelemetry installs sink as the package-wide counter-only telemetry
// destination. Disabled (sink is nil) by default, matching the teacher's
// "counter-only, off unless the caller opts in" posture for hot-loop code.
func EnableTelemetry(sink obstel.Sink) {
	obstel.Enable(sink)
}

// DisableTelemetry removes the active telemetry sink.
func DisableTelemetry() {
	obstel.Disable()
}

func obsAlgorithmCall(name string) {
	obstel.Emit("strmetric.algorithm.calls", 1, map[string]string{"algorithm": name})
}

func obsQuickAnswer(name, reason string) {
	obstel.Emit("strmetric.quick_answer", 1, map[string]string{"algorithm": name, "reason": reason})
}

func obsExternalDispatch(name, backendID string, ok bool) {
	obstel.Emit("strmetric.external_dispatch", 1, map[string]string{
		"algorithm": name,
		"backend":   backendID,
		"ok":        strconv.FormatBool(ok),
	})
}

// obsNCDPermutationRun emits one counter per NCD permutation-minimization
// run (spec §4.11/§4.10), tagged with a fresh correlation ID; the
// per-ordering compressor calls of the run emit no counters of their own.
func obsNCDPermutationRun(compressorName string, inputCount int) {
	obstel.Emit("strmetric.ncd.permutation_run", 1, map[string]string{
		"compressor":     compressorName,
		"inputs":         strconv.Itoa(inputCount),
		"correlation_id": obstel.NewCorrelationID(),
	})
}

func obsStringLength(name string, seqs []string) {
	max := 0
	for _, s := range seqs {
		if n := runeLen(s); n > max {
			max = n
		}
	}
	obstel.Emit("strmetric.string_length", 1, map[string]string{
		"algorithm": name,
		"bucket":    lengthBucket(max),
	})
}

// lengthBucket categorizes rune length for telemetry, ported from the
// teacher's foundry/similarity bucket scheme.
func lengthBucket(n int) string {
	switch {
	case n == 0:
		return "empty"
	case n <= 10:
		return "tiny"
	case n <= 50:
		return "short"
	case n <= 200:
		return "medium"
	case n <= 1000:
		return "long"
	default:
		return "very_long"
	}
}
