package snowflake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEpoch(t *testing.T) {
	// Zero elapsed milliseconds decodes to the platform epoch exactly,
	// whatever the low 22 worker/sequence bits hold.
	for _, id := range []uint64{0, (1 << 22) - 1} {
		ts, ok := Decode(id)
		require.True(t, ok, "id %d", id)
		assert.Equal(t, time.UnixMilli(Epoch).UTC(), ts, "id %d", id)
		assert.Equal(t, 2010, ts.Year())
		assert.Equal(t, time.November, ts.Month())
	}
}

func TestDecodeKnownOffset(t *testing.T) {
	// 1e12 ms past the epoch, encoded in the high 42 bits.
	id := uint64(1_000_000_000_000) << 22
	ts, ok := Decode(id)
	require.True(t, ok)
	assert.Equal(t, time.UnixMilli(Epoch+1_000_000_000_000).UTC(), ts)
}

func TestDecodeMonotonic(t *testing.T) {
	ids := []uint64{0, 1 << 22, 5 << 22, (5 << 22) + 123, 900_000_000_000_000_000}
	var prev time.Time
	for _, id := range ids {
		ts, ok := Decode(id)
		require.True(t, ok, "id %d", id)
		assert.False(t, ts.Before(prev), "decode must be monotonic in id")
		prev = ts
	}
}

func TestDecodeString(t *testing.T) {
	ts, ok := DecodeString("798262465234542592")
	require.True(t, ok)
	assert.Equal(t, 2016, ts.Year())

	for _, bad := range []string{"", "   ", "abc", "12.5", "-4", "not-an-id"} {
		_, ok := DecodeString(bad)
		assert.False(t, ok, "input %q", bad)
	}
}
