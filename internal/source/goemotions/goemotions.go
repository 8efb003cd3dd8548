// Package goemotions standardizes the emotion-labeled comment dataset.
// It is the one source with fine-grained emotion labels and the only one
// with no temporal data at all: every record's timestamp is imputed,
// which for an empty pool means the fixed fallback.
package goemotions

import (
	"strconv"
	"strings"

	"github.com/crimson-sun/braid/internal/engine/imputer"
	"github.com/crimson-sun/braid/internal/engine/taxonomy"
	"github.com/crimson-sun/braid/internal/model"
	"github.com/crimson-sun/braid/internal/source"
)

const name = "goemotions"

// Adapter implements source.Adapter for GoEmotions.
type Adapter struct {
	tax *taxonomy.Taxonomy
	imp *imputer.Imputer
}

// New creates the GoEmotions adapter.
func New(tax *taxonomy.Taxonomy, imp *imputer.Imputer) *Adapter {
	return &Adapter{tax: tax, imp: imp}
}

func (a *Adapter) Name() string { return name }

func (a *Adapter) Crisis() bool { return false }

// Standardize reads the GoEmotions table (text, labels, id). The labels
// field holds a bracketed list of fine label ids; the first listed id is
// remapped to the coarse taxonomy. Rows whose label field is empty or
// unparseable keep a null emotion_label rather than being dropped.
func (a *Adapter) Standardize(path string) (*source.Result, error) {
	t, err := source.ReadTable(path, ',')
	if err != nil {
		return nil, err
	}
	textCol, err := t.Col(path, "text")
	if err != nil {
		return nil, err
	}
	labelsCol, err := t.Col(path, "labels")
	if err != nil {
		return nil, err
	}

	stats := source.Stats{RowsRead: len(t.Rows)}
	records := make([]model.Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row == nil {
			stats.DroppedBadRow++
			continue
		}
		text := source.CleanText(source.Field(row, textCol))
		if text == "" {
			stats.DroppedEmptyText++
			continue
		}
		r := model.Record{
			Text:          text,
			SourceDataset: name,
			EmotionLabel:  a.remap(source.Field(row, labelsCol)),
		}
		stats.Missing++
		records = append(records, r)
	}

	stats.Imputed = a.imp.Impute(records)
	records, dup := source.DropDuplicates(records)
	stats.DroppedDuplicate = dup
	return &source.Result{Records: records, Stats: stats}, nil
}

// remap extracts the first fine label id from a bracketed list like
// "[2, 27]" and maps it to its coarse label. Returns "" when the field
// is empty, malformed, or out of range.
func (a *Adapter) remap(labels string) string {
	labels = strings.Trim(strings.TrimSpace(labels), "[]")
	if labels == "" {
		return ""
	}
	first := labels
	if i := strings.IndexAny(labels, ", "); i >= 0 {
		first = labels[:i]
	}
	id, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return ""
	}
	coarse, ok := a.tax.RemapID(id)
	if !ok {
		return ""
	}
	return coarse
}
