// Package taxonomy remaps the fine-grained GoEmotions label set onto the
// coarse 13-label training taxonomy via a static lookup table.
package taxonomy

import (
	"fmt"

	"github.com/crimson-sun/braid/internal/model"
)

// FineLabels lists the 27 fine emotion labels in dataset id order
// (ids 0-26). The dataset's separate neutral class carries id 27 and is
// already a coarse label, so it bypasses the table.
var FineLabels = []string{
	"admiration", "amusement", "anger", "annoyance", "approval",
	"caring", "confusion", "curiosity", "desire", "disappointment",
	"disapproval", "disgust", "embarrassment", "excitement", "fear",
	"gratitude", "grief", "joy", "love", "nervousness",
	"optimism", "pride", "realization", "relief", "remorse",
	"sadness", "surprise",
}

// NeutralID is the raw label id of the dataset's neutral class.
const NeutralID = 27

// Neutral is the coarse label assigned to raw neutral rows.
const Neutral = "neutral"

// CoarseLabels is the closed 13-label target set.
var CoarseLabels = []string{
	"anger", "fear", "sadness", "nervousness", "disgust", "surprise",
	"confusion", "caring", "grief", "disappointment", "joy", "relief",
	Neutral,
}

// Taxonomy holds a validated fine-to-coarse lookup table.
type Taxonomy struct {
	mapping map[string]string
}

// New validates that mapping is a partition of the fine label set: every
// fine label maps to exactly one defined coarse label, every coarse label
// has at least one fine source, and no unknown fine label appears. Any
// violation is a configuration error raised before row processing.
func New(mapping map[string]string) (*Taxonomy, error) {
	fine := make(map[string]bool, len(FineLabels))
	for _, f := range FineLabels {
		fine[f] = true
	}
	coarse := make(map[string]bool, len(CoarseLabels))
	for _, c := range CoarseLabels {
		coarse[c] = true
	}

	covered := make(map[string]bool, len(CoarseLabels))
	for f, c := range mapping {
		if !fine[f] {
			return nil, fmt.Errorf("taxonomy: unknown fine label %q in table: %w", f, model.ErrConfiguration)
		}
		if !coarse[c] {
			return nil, fmt.Errorf("taxonomy: fine label %q maps to undefined coarse label %q: %w", f, c, model.ErrConfiguration)
		}
		covered[c] = true
	}
	for _, f := range FineLabels {
		if _, ok := mapping[f]; !ok {
			return nil, fmt.Errorf("taxonomy: fine label %q missing from table: %w", f, model.ErrConfiguration)
		}
	}
	covered[Neutral] = true // raw neutral class feeds the coarse neutral label
	for _, c := range CoarseLabels {
		if !covered[c] {
			return nil, fmt.Errorf("taxonomy: coarse label %q has no fine source: %w", c, model.ErrConfiguration)
		}
	}

	m := make(map[string]string, len(mapping))
	for f, c := range mapping {
		m[f] = c
	}
	return &Taxonomy{mapping: m}, nil
}

// Remap looks up the coarse label for a fine label. No fuzzy matching:
// unknown labels report ok=false.
func (t *Taxonomy) Remap(fine string) (string, bool) {
	c, ok := t.mapping[fine]
	return c, ok
}

// RemapID maps a raw dataset label id to its coarse label.
func (t *Taxonomy) RemapID(id int) (string, bool) {
	if id == NeutralID {
		return Neutral, true
	}
	if id < 0 || id >= len(FineLabels) {
		return "", false
	}
	return t.Remap(FineLabels[id])
}
