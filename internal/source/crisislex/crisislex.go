// Package crisislex standardizes the CrisisLex dataset: native
// timestamps, per-tweet informativeness annotations.
package crisislex

import (
	"strings"

	"github.com/crimson-sun/braid/internal/engine/classifier"
	"github.com/crimson-sun/braid/internal/engine/imputer"
	"github.com/crimson-sun/braid/internal/model"
	"github.com/crimson-sun/braid/internal/source"
)

const name = "crisislex"

// Adapter implements source.Adapter for CrisisLex.
type Adapter struct {
	cls *classifier.Classifier
	imp *imputer.Imputer
}

// New creates the CrisisLex adapter.
func New(cls *classifier.Classifier, imp *imputer.Imputer) *Adapter {
	return &Adapter{cls: cls, imp: imp}
}

func (a *Adapter) Name() string { return name }

func (a *Adapter) Crisis() bool { return true }

// Standardize reads the combined CrisisLex table. This is the one source
// that carries informativeness labels; they are normalized to the closed
// label set and pass through to the canonical schema.
func (a *Adapter) Standardize(path string) (*source.Result, error) {
	t, err := source.ReadTable(path, ',')
	if err != nil {
		return nil, err
	}
	textCol, err := t.Col(path, "Tweet Text")
	if err != nil {
		return nil, err
	}
	timeCol, err := t.Col(path, "created_at")
	if err != nil {
		return nil, err
	}
	eventCol, err := t.Col(path, "event_name")
	if err != nil {
		return nil, err
	}
	infoCol, err := t.Col(path, "Informativeness")
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
		event := source.Field(row, eventCol)
		r := model.Record{
			Text:            text,
			EventName:       event,
			EventType:       a.cls.Classify(event, name),
			CrisisLabel:     true,
			SourceDataset:   name,
			Informativeness: cleanInformativeness(source.Field(row, infoCol)),
		}
		if ts, ok := source.ParseTime(source.Field(row, timeCol)); ok {
			r.CreatedAt = ts
			stats.ParsedTimes++
		} else {
			stats.Missing++
		}
		records = append(records, r)
	}

	stats.Imputed = a.imp.Impute(records)
	records, dup := source.DropDuplicates(records)
	stats.DroppedDuplicate = dup
	return &source.Result{Records: records, Stats: stats}, nil
}

// cleanInformativeness normalizes the free-form annotation strings the
// raw data uses. Unlabeled and unrecognized values become null.
func cleanInformativeness(raw string) string {
	label := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case label == "":
		return ""
	case strings.Contains(label, "not related"), strings.Contains(label, "notrelated"):
		return model.NotRelated
	case strings.Contains(label, "not informative"), strings.Contains(label, "not-informative"):
		return model.RelatedNotInformative
	case strings.Contains(label, "informative"):
		return model.RelatedInformative
	default:
		return ""
	}
}
