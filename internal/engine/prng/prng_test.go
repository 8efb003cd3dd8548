package prng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(seed int64, stream Stream, qualifier string, n int) []int64 {
	rng := New(seed, stream, qualifier)
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int63()
	}
	return out
}

func TestSameDerivationSameStream(t *testing.T) {
	assert.Equal(t,
		sequence(42, StreamImputer, "humaid", 16),
		sequence(42, StreamImputer, "humaid", 16))
}

func TestStreamsAreIndependent(t *testing.T) {
	base := sequence(42, StreamImputer, "humaid", 16)
	assert.NotEqual(t, base, sequence(42, StreamImputer, "crisislex", 16),
		"qualifiers must derive distinct streams")
	assert.NotEqual(t, base, sequence(42, StreamSampler, "humaid", 16),
		"stages must derive distinct streams")
	assert.NotEqual(t, base, sequence(43, StreamImputer, "humaid", 16),
		"changing the master seed must change every stream")
}
