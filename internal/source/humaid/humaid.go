// Package humaid standardizes the HumAID crisis tweet dataset. The raw
// table is tab-delimited and carries no timestamp column; creation times
// are recovered from the tweet identifiers themselves.
package humaid

import (
	"github.com/crimson-sun/braid/internal/engine/classifier"
	"github.com/crimson-sun/braid/internal/engine/imputer"
	"github.com/crimson-sun/braid/internal/model"
	"github.com/crimson-sun/braid/internal/snowflake"
	"github.com/crimson-sun/braid/internal/source"
)

const name = "humaid"

// Adapter implements source.Adapter for HumAID.
type Adapter struct {
	cls *classifier.Classifier
	imp *imputer.Imputer
}

// New creates the HumAID adapter.
func New(cls *classifier.Classifier, imp *imputer.Imputer) *Adapter {
	return &Adapter{cls: cls, imp: imp}
}

func (a *Adapter) Name() string { return name }

func (a *Adapter) Crisis() bool { return true }

// Standardize reads the combined HumAID table (tweet_id, tweet_text,
// event_name) and produces canonical records. Identifiers that fail to
// decode leave the timestamp missing for the imputer.
func (a *Adapter) Standardize(path string) (*source.Result, error) {
	t, err := source.ReadTable(path, '\t')
	if err != nil {
		return nil, err
	}
	idCol, err := t.Col(path, "tweet_id")
	if err != nil {
		return nil, err
	}
	textCol, err := t.Col(path, "tweet_text")
	if err != nil {
		return nil, err
	}
	eventCol, err := t.Col(path, "event_name")
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
			Text:          text,
			EventName:     event,
			EventType:     a.cls.Classify(event, name),
			CrisisLabel:   true,
			SourceDataset: name,
		}
		if ts, ok := snowflake.DecodeString(source.Field(row, idCol)); ok {
			r.CreatedAt = ts
			stats.DecodedIDs++
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
