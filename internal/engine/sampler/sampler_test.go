package sampler

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/braid/internal/engine/prng"
	"github.com/crimson-sun/braid/internal/model"
)

func pool(counts map[string]int) []model.Record {
	var out []model.Record
	for _, cat := range []string{"entertainment", "politics", "sports"} {
		for i := 0; i < counts[cat]; i++ {
			out = append(out, model.Record{
				Text:      fmt.Sprintf("%s-%d", cat, i),
				EventType: cat,
			})
		}
	}
	return out
}

func caps(m map[string]int, def int) func(string) int {
	return func(cat string) int {
		if v, ok := m[cat]; ok {
			return v
		}
		return def
	}
}

func TestCategoryBelowCapTakenWhole(t *testing.T) {
	records := pool(map[string]int{"politics": 1830, "sports": 10})
	s := New(prng.New(42, prng.StreamSampler, ""), caps(nil, 20000))

	out, kept := s.Sample(records)
	assert.Equal(t, 1830, kept["politics"], "a category below its cap yields its true size")
	assert.Equal(t, 10, kept["sports"])
	assert.Len(t, out, 1840)
}

func TestCategoryAboveCapBounded(t *testing.T) {
	records := pool(map[string]int{"sports": 500, "entertainment": 40})
	s := New(prng.New(42, prng.StreamSampler, ""), caps(map[string]int{"sports": 100}, 20000))

	out, kept := s.Sample(records)
	assert.Equal(t, 100, kept["sports"])
	assert.Equal(t, 40, kept["entertainment"])
	assert.Len(t, out, 140)
}

func TestCapSharedAcrossSourcesOfOneCategory(t *testing.T) {
	// Two datasets of the same category draw against one shared cap; the
	// bound is per event_type, not per source table.
	var records []model.Record
	for i := 0; i < 80; i++ {
		records = append(records, model.Record{
			Text:          fmt.Sprintf("coachella-%d", i),
			EventType:     "entertainment",
			SourceDataset: "coachella",
		})
		records = append(records, model.Record{
			Text:          fmt.Sprintf("got-%d", i),
			EventType:     "entertainment",
			SourceDataset: "game_of_thrones",
		})
	}
	s := New(prng.New(42, prng.StreamSampler, ""), caps(map[string]int{"entertainment": 100}, 20000))

	out, kept := s.Sample(records)
	assert.Equal(t, 100, kept["entertainment"])
	assert.Len(t, out, 100)

	bySource := map[string]int{}
	for _, r := range out {
		bySource[r.SourceDataset]++
	}
	assert.Equal(t, 100, bySource["coachella"]+bySource["game_of_thrones"])
}

func TestSampleWithoutReplacement(t *testing.T) {
	records := pool(map[string]int{"sports": 300})
	s := New(prng.New(42, prng.StreamSampler, ""), caps(map[string]int{"sports": 150}, 20000))

	out, _ := s.Sample(records)
	seen := make(map[string]bool, len(out))
	for _, r := range out {
		require.False(t, seen[r.Text], "row %q sampled twice", r.Text)
		seen[r.Text] = true
	}
}

func TestSampleDeterministic(t *testing.T) {
	build := func() []model.Record {
		return pool(map[string]int{"sports": 400, "entertainment": 80, "politics": 30})
	}
	limits := caps(map[string]int{"sports": 50}, 60)

	a, _ := New(prng.New(42, prng.StreamSampler, ""), limits).Sample(build())
	b, _ := New(prng.New(42, prng.StreamSampler, ""), limits).Sample(build())
	assert.Empty(t, cmp.Diff(a, b))

	c, _ := New(prng.New(99, prng.StreamSampler, ""), limits).Sample(build())
	assert.NotEmpty(t, cmp.Diff(a, c))
}

func TestSamplePreservesRowOrderWithinCategory(t *testing.T) {
	records := pool(map[string]int{"sports": 200})
	s := New(prng.New(42, prng.StreamSampler, ""), caps(map[string]int{"sports": 50}, 60))

	out, _ := s.Sample(records)
	last := -1
	for _, r := range out {
		var i int
		_, err := fmt.Sscanf(r.Text, "sports-%d", &i)
		require.NoError(t, err)
		require.Greater(t, i, last, "sampled rows must keep original order")
		last = i
	}
}
