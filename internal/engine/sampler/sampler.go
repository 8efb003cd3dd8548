// Package sampler draws bounded-size, per-category subsets of the
// non-crisis pool so the combined training mix stays controlled.
package sampler

import (
	"math/rand"
	"sort"

	"github.com/crimson-sun/braid/internal/model"
)

// Sampler selects up to a configured cap per event_type category, without
// replacement. Categories are visited in lexicographic order and draws
// come from a seeded sub-stream, so the result is reproducible.
type Sampler struct {
	rng  *rand.Rand
	caps func(category string) int
}

// New creates a Sampler. caps returns the per-category bound.
func New(rng *rand.Rand, caps func(string) int) *Sampler {
	return &Sampler{rng: rng, caps: caps}
}

// Sample partitions records by event_type and keeps at most the category
// cap from each partition. event_type is the whole stratum key: every
// non-crisis source carries a fixed category via its classifier override,
// so sources of the same category (several entertainment datasets, say)
// share one cap rather than multiplying it, and the caps stay meaningful
// as bounds on the training mix. A category below its cap is taken whole,
// no error, no padding. Within a category the original row order is kept.
// Returns the sample and the kept count per category.
func (s *Sampler) Sample(records []model.Record) ([]model.Record, map[string]int) {
	byCategory := make(map[string][]int)
	for i := range records {
		byCategory[records[i].EventType] = append(byCategory[records[i].EventType], i)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var out []model.Record
	kept := make(map[string]int, len(categories))
	for _, c := range categories {
		idx := byCategory[c]
		limit := s.caps(c)
		if len(idx) > limit {
			idx = s.choose(idx, limit)
		}
		for _, i := range idx {
			out = append(out, records[i])
		}
		kept[c] = len(idx)
	}
	return out, kept
}

// choose picks k of idx without replacement via a partial Fisher-Yates
// pass, then restores row order.
func (s *Sampler) choose(idx []int, k int) []int {
	pool := make([]int, len(idx))
	copy(pool, idx)
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	picked := pool[:k]
	sort.Ints(picked)
	return picked
}
