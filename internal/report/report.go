package report

import (
	"time"

	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

// ValueCount is one frequency-table row in the output document.
// Value is nil for the absent bucket, otherwise a string or integer.
type ValueCount struct {
	Value any `json:"value"`
	Count int `json:"count"`
}

// FieldReport is the published summary of one survey question: the
// schema metadata a renderer needs plus the aggregated table.
type FieldReport struct {
	Title      string            `json:"title"`
	Type       schema.FieldType  `json:"type"`
	OutputType schema.FieldType  `json:"output_type"`
	Sort       schema.SortPolicy `json:"sort"`
	Limit      int               `json:"limit"`
	Multiple   bool              `json:"multiple"`
	TextTail   bool              `json:"text_tail"`
	Show       schema.ShowMode   `json:"show"`
	Shortcuts  map[string]string `json:"shortcuts"`
	Note       string            `json:"note,omitempty"`
	CustomSort []string          `json:"custom_sort,omitempty"`

	Values []ValueCount `json:"values"`

	// OtherValues holds suppressed singleton answers as a bare sorted
	// list. Counts are deliberately dropped: each entry occurred
	// exactly once, and publishing that fact would re-identify the
	// respondent.
	OtherValues []string `json:"other_values,omitempty"`

	// Answered is bookkeeping for the run archive, not part of the
	// published document.
	Answered int `json:"-"`
}

// Report is the full output of one pipeline run.
type Report struct {
	// RunID identifies this run in the archive.
	RunID string `json:"-"`

	// CreatedAt is when the run was assembled.
	CreatedAt time.Time `json:"-"`

	// Data maps field key to its published summary.
	Data map[string]*FieldReport `json:"data"`

	// Columns is the field key list in catalog order.
	Columns []string `json:"columns"`

	// Structure is the UI sectioning: group title → ordered field keys.
	Structure []schema.Group `json:"structure"`

	// Total is the respondent count. Suppression and truncation never
	// change it.
	Total int `json:"total"`

	// Warnings carries non-fatal findings (shortcut label collisions)
	// for the operator; not part of the published document.
	Warnings []string `json:"-"`
}
