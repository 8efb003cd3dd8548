// Package noncrisis standardizes the high-emotion non-crisis tweet
// datasets (sports, entertainment, politics). Each dataset gets its own
// adapter instance carrying that dataset's column layout; the classifier
// holds a source-level override so every record maps to the dataset's
// fixed category regardless of event name.
package noncrisis

import (
	"github.com/crimson-sun/braid/internal/config"
	"github.com/crimson-sun/braid/internal/engine/classifier"
	"github.com/crimson-sun/braid/internal/engine/imputer"
	"github.com/crimson-sun/braid/internal/model"
	"github.com/crimson-sun/braid/internal/source"
)

// Adapter implements source.Adapter for one configured non-crisis table.
type Adapter struct {
	table config.NonCrisisTable
	cls   *classifier.Classifier
	imp   *imputer.Imputer
}

// New creates an adapter for one non-crisis dataset layout.
func New(table config.NonCrisisTable, cls *classifier.Classifier, imp *imputer.Imputer) *Adapter {
	return &Adapter{table: table, cls: cls, imp: imp}
}

func (a *Adapter) Name() string { return a.table.Name }

func (a *Adapter) Crisis() bool { return false }

// Standardize reads one non-crisis table using its configured column
// layout. Unparseable timestamps are imputed rather than dropped.
func (a *Adapter) Standardize(path string) (*source.Result, error) {
	t, err := source.ReadTable(path, ',')
	if err != nil {
		return nil, err
	}
	textCol, err := t.Col(path, a.table.TextColumn)
	if err != nil {
		return nil, err
	}
	timeCol, err := t.Col(path, a.table.TimeColumn)
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
			EventName:     a.table.EventName,
			EventType:     a.cls.Classify(a.table.EventName, a.table.Name),
			CrisisLabel:   false,
			SourceDataset: a.table.Name,
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
