// Package imputer fills missing created_at values with statistically
// plausible synthetic timestamps while recording audit metadata.
package imputer

import (
	"math/rand"
	"time"

	"github.com/crimson-sun/braid/internal/model"
)

// Imputer draws replacement timestamps from a seeded generator. Draws are
// consumed in the row order of the table being imputed; that consumption
// order is part of the contract, because it is what makes re-runs against
// identical input bit-identical. Records that already carry a timestamp
// consume no draws.
type Imputer struct {
	rng      *rand.Rand
	jitter   time.Duration
	fallback time.Time
}

// New creates an Imputer. jitter is the half-width of the uniform jitter
// interval applied to sampled timestamps; fallback is the fixed constant
// used when a table has no known timestamps at all.
func New(rng *rand.Rand, jitter time.Duration, fallback time.Time) *Imputer {
	return &Imputer{rng: rng, jitter: jitter, fallback: fallback}
}

// Impute fills every missing timestamp in records, in row order. Strategy
// per record, in priority order:
//
//  1. same_event_sample — uniform draw from known timestamps within the
//     record's event_name group, when that group has any.
//  2. global_sample — uniform draw from all known timestamps in records.
//  3. fixed_fallback — the fixed constant, only when the table holds no
//     known timestamp anywhere.
//
// Methods 1-2 receive independent uniform jitter on the closed interval
// [-jitter, +jitter]; the fallback is a deterministic sentinel and never
// jittered. Returns imputation counts per method.
func (im *Imputer) Impute(records []model.Record) map[model.ImputeMethod]int {
	byEvent := make(map[string][]time.Time)
	var global []time.Time
	for i := range records {
		if !records[i].MissingTimestamp() {
			byEvent[records[i].EventName] = append(byEvent[records[i].EventName], records[i].CreatedAt)
			global = append(global, records[i].CreatedAt)
		}
	}

	counts := make(map[model.ImputeMethod]int)
	for i := range records {
		r := &records[i]
		if !r.MissingTimestamp() {
			continue
		}
		var sampled time.Time
		var method model.ImputeMethod
		if group := byEvent[r.EventName]; len(group) > 0 {
			sampled = group[im.rng.Intn(len(group))]
			method = model.MethodSameEvent
		} else if len(global) > 0 {
			sampled = global[im.rng.Intn(len(global))]
			method = model.MethodGlobal
		} else {
			r.CreatedAt = im.fallback
			r.Imputed = true
			r.ImputedMethod = model.MethodFallback
			counts[model.MethodFallback]++
			continue
		}
		r.CreatedAt = sampled.Add(im.drawJitter())
		r.Imputed = true
		r.ImputedMethod = method
		counts[method]++
	}
	return counts
}

// ImputeFromPool fills missing timestamps from an externally assembled
// pool of known timestamps, used when imputing the combined master table
// where per-event grouping no longer applies. Empty pool falls back to
// the fixed constant.
func (im *Imputer) ImputeFromPool(records []model.Record, pool []time.Time) map[model.ImputeMethod]int {
	counts := make(map[model.ImputeMethod]int)
	for i := range records {
		r := &records[i]
		if !r.MissingTimestamp() {
			continue
		}
		if len(pool) == 0 {
			r.CreatedAt = im.fallback
			r.Imputed = true
			r.ImputedMethod = model.MethodFallback
			counts[model.MethodFallback]++
			continue
		}
		r.CreatedAt = pool[im.rng.Intn(len(pool))].Add(im.drawJitter())
		r.Imputed = true
		r.ImputedMethod = model.MethodGlobal
		counts[model.MethodGlobal]++
	}
	return counts
}

// drawJitter returns a uniform offset on the closed interval
// [-jitter, +jitter], at second resolution to match the output format.
func (im *Imputer) drawJitter() time.Duration {
	half := int64(im.jitter / time.Second)
	off := im.rng.Int63n(2*half+1) - half
	return time.Duration(off) * time.Second
}
