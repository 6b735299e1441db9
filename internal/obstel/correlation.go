// Package obstel is the package-internal counter-only telemetry sink for
// strmetric: algorithm call counts, quick-answer shortcuts taken, and
// external-backend dispatch outcomes. No histograms or tracing spans; this
// mirrors the counter-only telemetry the teacher package used for
// performance-sensitive hot-loop code.
package obstel

import "github.com/google/uuid"

// NewCorrelationID generates a time-sortable UUIDv7, used to tag a single
// batch of algorithm calls (e.g. one NCD permutation run) so its counters
// can be correlated in aggregate without per-call tracing overhead.
func NewCorrelationID() string {
	return uuid.Must(uuid.NewV7()).String()
}
