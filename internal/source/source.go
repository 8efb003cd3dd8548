// Package source defines the adapter contract all raw dataset sources
// implement, plus the table-reading and cleaning helpers they share.
// One adapter variant exists per source schema; new sources are added by
// adding a new variant, never by branching inside a shared function.
package source

import (
	"github.com/crimson-sun/braid/internal/model"
)

// Adapter standardizes one raw source table into canonical records.
type Adapter interface {
	// Name is the source_dataset provenance tag.
	Name() string

	// Crisis reports the fixed crisis_label for this source.
	Crisis() bool

	// Standardize reads the raw table and produces canonical records.
	// Every returned record has a populated created_at. Rows with empty
	// text are dropped and counted, never silently included; rows are
	// never dropped solely for a missing timestamp.
	Standardize(path string) (*Result, error)
}

// Result is one source's standardized table plus its row accounting.
type Result struct {
	Records []model.Record
	Stats   Stats
}

// Stats counts what happened to every row read from a raw table.
type Stats struct {
	RowsRead         int
	DroppedEmptyText int
	DroppedDuplicate int
	DroppedBadRow    int
	DecodedIDs       int
	ParsedTimes      int
	Missing          int
	Imputed          map[model.ImputeMethod]int
}

// Dropped is the total number of rows excluded from the output.
func (s Stats) Dropped() int {
	return s.DroppedEmptyText + s.DroppedDuplicate + s.DroppedBadRow
}
