// Package strmetric implements a uniform string- and sequence-distance
// contract across edit-based, token-based, sequence-based,
// compression-based (NCD), and phonetic measures.
//
// Every algorithm is built by a NewXxx constructor and returns a *Base
// implementing Algorithm: Call (the kernel's native distance or
// similarity), Distance, Similarity, Maximum, NormalizedDistance and
// NormalizedSimilarity. Algorithm instances are immutable once constructed
// and safe for concurrent use.
//
//	alg := strmetric.NewLevenshtein()
//	d, err := alg.Distance("kitten", "sitting")
//
// External-backend dispatch (RegisterBackend, LoadRanking) lets a caller
// swap in a faster implementation for specific algorithms without changing
// call sites; see external.go and spec §4.4/§6.
package strmetric
