// Package csvio writes the pipeline's output tables. All writes are
// non-destructive with respect to inputs: writers only ever create files
// under the configured output directory, and the full master table
// refuses to replace an existing file.
package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/crimson-sun/braid/internal/model"
)

const bufSize = 256 * 1024

// datesOnlyColumns is the schema of the *_dates_only.csv audit tables:
// a stable row key plus the date-standardized columns.
var datesOnlyColumns = []string{
	"row_key",
	"created_at",
	"created_at_imputed",
	"created_at_imputed_method",
}

// WriteRecords writes records in the canonical schema, replacing any
// previous run's output of the same name.
func WriteRecords(path string, records []model.Record) error {
	return write(path, false, records)
}

// WriteRecordsNew writes records in the canonical schema but fails if
// path already exists. Used for the versioned full master table.
func WriteRecordsNew(path string, records []model.Record) error {
	return write(path, true, records)
}

// WriteDatesOnly writes the parallel dates-only table: row key plus the
// standardized/imputed date columns, nothing else.
func WriteDatesOnly(path string, records []model.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: create %s: %w", path, err)
	}
	return writeRows(f, path, datesOnlyColumns, len(records), func(i int) []string {
		r := &records[i]
		imputed := "false"
		if r.Imputed {
			imputed = "true"
		}
		return []string{
			strconv.Itoa(i),
			r.CreatedAt.UTC().Format(model.TimeLayout),
			imputed,
			string(r.ImputedMethod),
		}
	})
}

func write(path string, exclusive bool, records []model.Record) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if exclusive {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if exclusive && os.IsExist(err) {
			return fmt.Errorf("csvio: %s already exists; refusing to replace a prior canonical output", path)
		}
		return fmt.Errorf("csvio: create %s: %w", path, err)
	}
	return writeRows(f, path, model.Columns, len(records), func(i int) []string {
		return records[i].Row()
	})
}

func writeRows(f *os.File, path string, header []string, n int, row func(int) []string) error {
	bw := bufio.NewWriterSize(f, bufSize)
	w := csv.NewWriter(bw)

	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("csvio: write header %s: %w", path, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			f.Close()
			return fmt.Errorf("csvio: write %s row %d: %w", path, i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("csvio: flush %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("csvio: flush %s: %w", path, err)
	}
	return f.Close()
}
