// Package prng derives per-stage random sub-streams from the master seed.
// Each stage that draws randomness gets its own deterministically derived
// stream, so stages stay composable and reordering one stage's work never
// perturbs another's draws.
package prng

import (
	"hash/fnv"
	"math/rand"
)

// Stream names the consumers of randomness within one pipeline run.
type Stream string

const (
	StreamImputer      Stream = "imputer"
	StreamSampler      Stream = "sampler"
	StreamShuffle      Stream = "shuffle"
	StreamMasterImpute Stream = "master_impute"
)

// New returns a generator for the given stage stream. The qualifier
// separates streams of the same kind (one imputer stream per source).
// Derivation is a fixed function of (seed, stream, qualifier) only.
func New(seed int64, stream Stream, qualifier string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(stream))
	h.Write([]byte{0})
	h.Write([]byte(qualifier))
	return rand.New(rand.NewSource(seed ^ int64(h.Sum64())))
}
