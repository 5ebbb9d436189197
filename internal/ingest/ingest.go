// Package ingest loads the raw survey dataset: CSV parsing, header
// title→key mapping via the catalog, and dropping of columns no
// catalog field claims. Rows are immutable once loaded; all typing
// and cleanup happens downstream in the normalization pipeline.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

// Row is one survey submission: field key → raw cell text. Cells that
// were blank in the source are stored as empty strings.
type Row map[string]string

// Get returns the raw cell for a field. ok is false when the cell is
// absent or blank — the explicit emptiness test the duplicate detector
// and the pipeline share.
func (r Row) Get(key string) (string, bool) {
	v, ok := r[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// Dataset is the full immutable set of survey submissions for one run.
type Dataset struct {
	rows    []Row
	columns []string
}

// Len returns the number of submissions (the respondent count).
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Rows returns the submissions in file order.
func (d *Dataset) Rows() []Row {
	return d.rows
}

// Columns returns the field keys present in the source, in header order.
func (d *Dataset) Columns() []string {
	return d.columns
}

// Load reads a CSV dataset from path. See Read.
func Load(path string, cat *schema.Catalog) (*Dataset, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer fh.Close()
	ds, err := Read(fh, cat)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ds, nil
}

// Read parses a CSV dataset. The header row holds human-language field
// titles, which are mapped to keys via the catalog; columns whose
// titles match no catalog field are dropped. Repeated header titles
// get ".1", ".2" suffixes before lookup, matching how the catalog
// names duplicated source columns.
func Read(r io.Reader, cat *schema.Catalog) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	keys := make([]string, len(header))
	seen := make(map[string]int)
	var columns []string
	for i, h := range header {
		orig := strings.TrimSpace(h)
		title := orig
		if n := seen[orig]; n > 0 {
			title = fmt.Sprintf("%s.%d", orig, n)
		}
		seen[orig]++
		if f, ok := cat.FieldByTitle(title); ok {
			keys[i] = f.Key
			columns = append(columns, f.Key)
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("no header title matches any catalog field")
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+2, err)
		}
		row := make(Row, len(columns))
		for i, cell := range record {
			if i >= len(keys) || keys[i] == "" {
				continue
			}
			row[keys[i]] = cell
		}
		rows = append(rows, row)
	}
	return &Dataset{rows: rows, columns: columns}, nil
}
