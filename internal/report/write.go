package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes the report as one plain JSON document with data,
// columns, structure and total keys.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteDataJS writes the report as an ES-module source file, the form
// the site renderer imports directly:
//
//	export const data = {...};
//	export const columns = [...];
//	export const structure = [...];
//	export const total = N;
func (r *Report) WriteDataJS(w io.Writer) error {
	sections := []struct {
		name  string
		value any
	}{
		{"data", r.Data},
		{"columns", r.Columns},
		{"structure", r.Structure},
		{"total", r.Total},
	}
	for _, s := range sections {
		blob, err := json.Marshal(s.value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", s.name, err)
		}
		if _, err := fmt.Fprintf(w, "export const %s = %s;\n", s.name, blob); err != nil {
			return fmt.Errorf("failed to write %s: %w", s.name, err)
		}
	}
	return nil
}
