package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/crimson-sun/braid/internal/model"
	"github.com/crimson-sun/braid/internal/source"
)

// SourceReport is one source's row accounting for a run.
type SourceReport struct {
	Source           string         `json:"source"`
	Crisis           bool           `json:"crisis"`
	RowsRead         int            `json:"rows_read"`
	DroppedEmptyText int            `json:"dropped_empty_text"`
	DroppedDuplicate int            `json:"dropped_duplicate"`
	DroppedBadRow    int            `json:"dropped_bad_row"`
	DecodedIDs       int            `json:"decoded_ids"`
	ParsedTimes      int            `json:"parsed_timestamps"`
	Imputed          map[string]int `json:"imputed_by_method,omitempty"`
	Written          int            `json:"rows_written"`
	Error            string         `json:"error,omitempty"`
}

// Report is the per-run audit summary: every row read, dropped, imputed,
// and written, per stage, surfaced to the operator and written as JSON.
type Report struct {
	RunID      string         `json:"run_id"`
	Seed       int64          `json:"seed"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Sources    []SourceReport `json:"sources,omitempty"`
	Sampled    map[string]int `json:"non_crisis_sampled_by_category,omitempty"`
	MasterRows int            `json:"master_rows,omitempty"`
	SampleRows int            `json:"sample_rows,omitempty"`
	Imputed    map[string]int `json:"master_imputed_by_method,omitempty"`
	FullWrite  bool           `json:"full_write"`
}

func (r *Report) addSource(a source.Adapter, stats source.Stats, written int) {
	sr := SourceReport{
		Source:           a.Name(),
		Crisis:           a.Crisis(),
		RowsRead:         stats.RowsRead,
		DroppedEmptyText: stats.DroppedEmptyText,
		DroppedDuplicate: stats.DroppedDuplicate,
		DroppedBadRow:    stats.DroppedBadRow,
		DecodedIDs:       stats.DecodedIDs,
		ParsedTimes:      stats.ParsedTimes,
		Imputed:          methodCounts(stats.Imputed),
		Written:          written,
	}
	r.Sources = append(r.Sources, sr)
}

func (r *Report) addFailure(a source.Adapter, err error) {
	r.Sources = append(r.Sources, SourceReport{Source: a.Name(), Crisis: a.Crisis(), Error: err.Error()})
}

// Write persists the report as run_report_<runid>.json in dir.
func (r *Report) Write(dir string) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("run_report_%s.json", r.RunID))
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}

// Log emits the per-source summaries through the structured logger.
func (r *Report) Log(log *zap.Logger) {
	for _, s := range r.Sources {
		if s.Error != "" {
			log.Error("source failed",
				zap.String("source", s.Source),
				zap.String("error", s.Error))
			continue
		}
		log.Info("source standardized",
			zap.String("source", s.Source),
			zap.Int("rows_read", s.RowsRead),
			zap.Int("dropped_empty_text", s.DroppedEmptyText),
			zap.Int("dropped_duplicate", s.DroppedDuplicate),
			zap.Int("dropped_bad_row", s.DroppedBadRow),
			zap.Any("imputed_by_method", s.Imputed),
			zap.Int("rows_written", s.Written))
	}
}

func methodCounts(m map[model.ImputeMethod]int) map[string]int {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}
