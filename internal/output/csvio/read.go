package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/crimson-sun/braid/internal/model"
)

// ReadRecords loads a table previously written in the canonical schema,
// so the combine stage can run against standardized outputs on disk.
func ReadRecords(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("csvio: %s: %w", path, model.ErrSourceMissing)
		}
		return nil, fmt.Errorf("csvio: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csvio: read header of %s: %w", path, err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}
	for _, want := range model.Columns {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("csvio: %s has no column %q: %w", path, want, model.ErrSourceMissing)
		}
	}

	var records []model.Record
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: read %s: %w", path, err)
		}
		rec := model.Record{
			Text:            row[cols["text"]],
			EventName:       row[cols["event_name"]],
			EventType:       row[cols["event_type"]],
			CrisisLabel:     row[cols["crisis_label"]] == "1",
			SourceDataset:   row[cols["source_dataset"]],
			Informativeness: row[cols["informativeness"]],
			EmotionLabel:    row[cols["emotion_label"]],
			Imputed:         row[cols["created_at_imputed"]] == "true",
			ImputedMethod:   model.ImputeMethod(row[cols["created_at_imputed_method"]]),
		}
		if raw := row[cols["created_at"]]; raw != "" {
			ts, err := time.Parse(model.TimeLayout, raw)
			if err != nil {
				return nil, fmt.Errorf("csvio: %s line %d: bad created_at %q: %w", path, line, raw, err)
			}
			rec.CreatedAt = ts.UTC()
		}
		records = append(records, rec)
	}
	return records, nil
}
