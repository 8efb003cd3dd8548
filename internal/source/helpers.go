package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/crimson-sun/braid/internal/model"
)

// Table is a raw delimited file loaded into memory with a header index.
type Table struct {
	Header []string
	Rows   [][]string
	cols   map[string]int
}

// ReadTable loads a comma- or tab-delimited file. A missing file is a
// source-missing error: fatal for this source's standardization only.
func ReadTable(path string, comma rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("source: %s: %w", path, model.ErrSourceMissing)
		}
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("source: read header of %s: %w", path, err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	t := &Table{Header: header, cols: cols}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: recovered locally, counted by the adapter.
			if _, ok := err.(*csv.ParseError); ok {
				t.Rows = append(t.Rows, nil)
				continue
			}
			return nil, fmt.Errorf("source: read %s: %w", path, err)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Col resolves a column name to its index. A missing expected column is
// a source-missing error identifying the offending table and column.
func (t *Table) Col(path, name string) (int, error) {
	i, ok := t.cols[name]
	if !ok {
		return 0, fmt.Errorf("source: %s has no column %q (found %v): %w", path, name, t.Header, model.ErrSourceMissing)
	}
	return i, nil
}

// Field returns row[i], or "" when the row is short or malformed.
func Field(row []string, i int) string {
	if row == nil || i >= len(row) {
		return ""
	}
	return row[i]
}

// CleanText NFC-normalizes and trims a raw text field. Returns "" for
// rows that carry no usable text.
func CleanText(s string) string {
	s = norm.NFC.String(s)
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "null") {
		return ""
	}
	return s
}

// timeLayouts covers every timestamp format the shipped sources use,
// including the platform's native created_at format.
var timeLayouts = []string{
	model.TimeLayout,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"Mon Jan 02 15:04:05 -0700 2006",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"02 Jan 2006 15:04:05",
	"2006-01-02",
}

// ParseTime tries each known layout in order. ok=false routes the row to
// the imputer; it never drops the row.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// DropDuplicates removes records whose (text, created_at) pair was seen
// earlier in the table, keeping the first occurrence. Runs after
// imputation so the key is always complete.
func DropDuplicates(records []model.Record) ([]model.Record, int) {
	seen := make(map[string]bool, len(records))
	out := records[:0]
	dropped := 0
	for _, r := range records {
		key := r.Text + "\x00" + r.CreatedAt.UTC().Format(model.TimeLayout)
		if seen[key] {
			dropped++
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out, dropped
}
