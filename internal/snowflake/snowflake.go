// Package snowflake recovers creation timestamps embedded in time-ordered
// 64-bit tweet identifiers. Bits 63-22 hold milliseconds elapsed since the
// platform epoch, so the timestamp comes back with a single shift and add.
package snowflake

import (
	"strconv"
	"strings"
	"time"
)

// Epoch is the platform epoch in milliseconds: 2010-11-04T01:42:54.657Z.
const Epoch = int64(1288834974657)

// Decode returns the creation time embedded in id. A shifted value of
// zero decodes to the epoch itself; the low 22 bits (worker and sequence)
// never affect the result.
func Decode(id uint64) (time.Time, bool) {
	ms := int64(id>>22) + Epoch
	return time.UnixMilli(ms).UTC(), true
}

// DecodeString parses a decimal identifier and decodes it. Empty or
// non-numeric input yields ok=false; callers route such records to the
// imputer rather than fabricating a value.
func DecodeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return Decode(id)
}
