package schema

import (
	"fmt"
	"strings"
)

// FieldType is the declared value type of a survey field.
type FieldType string

const (
	TypeString  FieldType = "str"
	TypeInteger FieldType = "int"
)

// IsValid checks if the field type is one of the known values
func (t FieldType) IsValid() bool {
	switch t {
	case TypeString, TypeInteger:
		return true
	}
	return false
}

// SortPolicy controls how a field's frequency table is ordered.
type SortPolicy string

const (
	// SortByFrequency orders by descending count and truncates to the
	// field's display limit.
	SortByFrequency SortPolicy = "top"
	// SortNumeric orders by ascending numeric value.
	SortNumeric SortPolicy = "numerical"
	// SortLexical orders by the field's declared lexical ordering
	// (e.g. the CEFR scale), not plain alphabetical order.
	SortLexical SortPolicy = "lexical"
	// SortLastInt orders by the last integer embedded in the label.
	// Used for range labels like "111-120" or "40-49 тыс. р.".
	SortLastInt SortPolicy = "last_int"
	// SortCustom orders by the field's explicit custom_order list.
	SortCustom SortPolicy = "custom"
)

// IsValid checks if the sort policy is one of the known values
func (p SortPolicy) IsValid() bool {
	switch p {
	case SortByFrequency, SortNumeric, SortLexical, SortLastInt, SortCustom:
		return true
	}
	return false
}

// ShowMode is a rendering hint: histogram fields get a frequency chart,
// text fields get a plain answer list.
type ShowMode string

const (
	ShowHistogram ShowMode = "histogram"
	ShowText      ShowMode = "text"
)

// IsValid checks if the show mode is one of the known values
func (m ShowMode) IsValid() bool {
	switch m {
	case ShowHistogram, ShowText:
		return true
	}
	return false
}

// SplitMode controls how one raw cell is split into atomic answers.
type SplitMode string

const (
	// SplitNone treats the cell as a single answer.
	SplitNone SplitMode = "none"
	// SplitCommas removes parenthesized asides and splits on commas.
	// For free-form multi-select fields (occupation, hobbies, specialty).
	SplitCommas SplitMode = "commas"
	// SplitPresets extracts known preset phrases as literal substrings,
	// in declared order, keeping the residual free text as one extra
	// answer when text_tail is set.
	SplitPresets SplitMode = "presets"
)

// IsValid checks if the split mode is one of the known values
func (m SplitMode) IsValid() bool {
	switch m {
	case SplitNone, SplitCommas, SplitPresets:
		return true
	}
	return false
}

// BucketKind selects the numeric anonymization transform for a field.
type BucketKind string

const (
	BucketNone   BucketKind = ""
	BucketIQ     BucketKind = "iq"
	BucketIncome BucketKind = "income"
)

// IsValid checks if the bucket kind is one of the known values
func (k BucketKind) IsValid() bool {
	switch k {
	case BucketNone, BucketIQ, BucketIncome:
		return true
	}
	return false
}

// BandScheme selects the income band table for fields with bucket=income.
type BandScheme string

const (
	BandsRUB BandScheme = "rub"
	BandsUSD BandScheme = "usd"
)

// IsValid checks if the band scheme is one of the known values
func (b BandScheme) IsValid() bool {
	switch b {
	case BandsRUB, BandsUSD:
		return true
	}
	return false
}

// ContentRule rewrites any value containing Marker (case-insensitive)
// to the fixed Label. Used for fixes that a plain synonym lookup
// cannot express.
type ContentRule struct {
	Marker string `yaml:"marker"`
	Label  string `yaml:"label"`
}

// FieldSchema declares one survey question: its identity, value type,
// and all the per-field special-casing the pipeline needs. Adding a
// field to the survey requires only a schema entry, never new branch
// logic in the pipeline.
type FieldSchema struct {
	// Key is the unique alphanumerical identifier used in the output document.
	Key string `yaml:"key"`

	// Title is the human-language column header in the raw dataset.
	Title string `yaml:"title"`

	// Type is the declared value type. Defaults to str.
	Type FieldType `yaml:"type"`

	// Limit is the maximum number of distinct buckets shown before the
	// by_frequency sort truncates the table. Defaults to 10.
	Limit int `yaml:"limit"`

	// Sort is the frequency-table ordering policy. Defaults to top.
	Sort SortPolicy `yaml:"sort"`

	// Multiple marks fields where one raw cell yields a set of answers.
	Multiple bool `yaml:"multiple"`

	// Split controls cell splitting. Defaults to none.
	Split SplitMode `yaml:"split"`

	// TextTail keeps the residual free text left over after preset
	// extraction as one extra answer.
	TextTail bool `yaml:"text_tail"`

	// Show is a rendering hint. Defaults to histogram.
	Show ShowMode `yaml:"show"`

	// Shortcuts maps full answer strings to abbreviated display labels.
	// Applied after counting and sorting; purely cosmetic.
	Shortcuts map[string]string `yaml:"shortcuts"`

	// Private fields never appear in the output document and are
	// excluded from duplicate detection.
	Private bool `yaml:"private"`

	// ExtractOther marks privacy-sensitive fields: answers that occur
	// exactly once are suppressed from the counted table and surface
	// only as a bare sorted list.
	ExtractOther bool `yaml:"extract_other"`

	// Note is an optional display annotation.
	Note string `yaml:"note"`

	// CustomOrder is the explicit value ordering for sort=custom.
	CustomOrder []string `yaml:"custom_order"`

	// LexicalOrder is the declared external ordering for sort=lexical.
	LexicalOrder []string `yaml:"lexical_order"`

	// Synonyms maps known spelling variants (lowercased) to one
	// canonical label. Lookup is case-insensitive on the cleaned value.
	Synonyms map[string]string `yaml:"synonyms"`

	// ContentRules are applied after the synonym lookup.
	ContentRules []ContentRule `yaml:"content_rules"`

	// Presets are the canned phrases recognized by split=presets,
	// matched as literal substrings in declared order.
	Presets []string `yaml:"presets"`

	// Bucket selects the numeric anonymization transform, if any.
	Bucket BucketKind `yaml:"bucket"`

	// Bands selects the income band table for bucket=income.
	// Defaults to rub.
	Bands BandScheme `yaml:"bands"`

	// NumericText marks free-text fields holding numbers, which keep
	// a trailing period during cleanup (it may be a decimal point).
	NumericText bool `yaml:"numeric_text"`
}

// applyDefaults fills zero values with the catalog defaults.
func (f *FieldSchema) applyDefaults() {
	if f.Type == "" {
		f.Type = TypeString
	}
	if f.Limit == 0 {
		f.Limit = 10
	}
	if f.Sort == "" {
		f.Sort = SortByFrequency
	}
	if f.Split == "" {
		f.Split = SplitNone
	}
	if f.Show == "" {
		f.Show = ShowHistogram
	}
	if f.Bucket == BucketIncome && f.Bands == "" {
		f.Bands = BandsRUB
	}
}

// Validate checks if the field declaration is internally consistent
func (f *FieldSchema) Validate() error {
	if f.Key == "" {
		return fmt.Errorf("key is required")
	}
	if f.Title == "" {
		return fmt.Errorf("field %s: title is required", f.Key)
	}
	if !f.Type.IsValid() {
		return fmt.Errorf("field %s: invalid type %q", f.Key, f.Type)
	}
	if !f.Sort.IsValid() {
		return fmt.Errorf("field %s: invalid sort %q", f.Key, f.Sort)
	}
	if !f.Show.IsValid() {
		return fmt.Errorf("field %s: invalid show %q", f.Key, f.Show)
	}
	if !f.Split.IsValid() {
		return fmt.Errorf("field %s: invalid split %q", f.Key, f.Split)
	}
	if !f.Bucket.IsValid() {
		return fmt.Errorf("field %s: invalid bucket %q", f.Key, f.Bucket)
	}
	if f.Limit < 0 {
		return fmt.Errorf("field %s: limit cannot be negative (got %d)", f.Key, f.Limit)
	}
	if f.Sort == SortCustom && len(f.CustomOrder) == 0 {
		return fmt.Errorf("field %s: sort=custom requires custom_order", f.Key)
	}
	if f.Sort == SortLexical && len(f.LexicalOrder) == 0 {
		return fmt.Errorf("field %s: sort=lexical requires lexical_order", f.Key)
	}
	if f.Split == SplitPresets && len(f.Presets) == 0 {
		return fmt.Errorf("field %s: split=presets requires a preset list", f.Key)
	}
	if f.Split != SplitPresets && len(f.Presets) > 0 {
		return fmt.Errorf("field %s: presets declared but split is %q", f.Key, f.Split)
	}
	if f.Bucket == BucketIncome && !f.Bands.IsValid() {
		return fmt.Errorf("field %s: invalid bands %q", f.Key, f.Bands)
	}
	if f.Bucket != BucketNone && f.Type != TypeInteger {
		return fmt.Errorf("field %s: bucket=%s requires type int", f.Key, f.Bucket)
	}

	// Preset extraction removes matches in declared order. If an
	// earlier preset were a substring of a later one, the earlier match
	// would destroy the later phrase before it could be seen, silently
	// misclassifying the answer. Reject such lists at load time so
	// declaration order is always safe.
	for i := 0; i < len(f.Presets); i++ {
		for j := i + 1; j < len(f.Presets); j++ {
			if strings.Contains(f.Presets[j], f.Presets[i]) {
				return fmt.Errorf("field %s: preset %q is a substring of later preset %q; declare the longer phrase first",
					f.Key, f.Presets[i], f.Presets[j])
			}
		}
	}
	return nil
}

// Group is one UI section: a title and the ordered field keys it shows.
type Group struct {
	Title   string   `yaml:"title" json:"title"`
	Columns []string `yaml:"columns" json:"columns"`
}

// Catalog is the full set of field declarations for one survey.
type Catalog struct {
	Fields []*FieldSchema
}

// FieldByKey returns the field with the given key.
func (c *Catalog) FieldByKey(key string) (*FieldSchema, bool) {
	for _, f := range c.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return nil, false
}

// FieldByTitle returns the field whose raw-dataset column header
// matches the given title.
func (c *Catalog) FieldByTitle(title string) (*FieldSchema, bool) {
	for _, f := range c.Fields {
		if f.Title == title {
			return f, true
		}
	}
	return nil, false
}

// PublicFields returns the non-private fields in declared order.
func (c *Catalog) PublicFields() []*FieldSchema {
	var out []*FieldSchema
	for _, f := range c.Fields {
		if !f.Private {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks the catalog for duplicate keys/titles and invalid
// field declarations.
func (c *Catalog) Validate() error {
	if len(c.Fields) == 0 {
		return fmt.Errorf("catalog has no fields")
	}
	keys := make(map[string]bool, len(c.Fields))
	titles := make(map[string]bool, len(c.Fields))
	for _, f := range c.Fields {
		if err := f.Validate(); err != nil {
			return err
		}
		if keys[f.Key] {
			return fmt.Errorf("duplicate field key %q", f.Key)
		}
		keys[f.Key] = true
		if titles[f.Title] {
			return fmt.Errorf("duplicate field title %q", f.Title)
		}
		titles[f.Title] = true
	}
	return nil
}

// Survey bundles a catalog with its UI grouping.
type Survey struct {
	Catalog   *Catalog
	Structure []Group
}

// Validate checks catalog consistency and the structure↔catalog
// contract: every structure column exists in the catalog, and every
// public field appears in exactly one group. This is a
// configuration-integrity check and fails the run before any
// aggregation.
func (s *Survey) Validate() error {
	if err := s.Catalog.Validate(); err != nil {
		return err
	}
	seen := make(map[string]int)
	for _, g := range s.Structure {
		if g.Title == "" {
			return fmt.Errorf("structure group with empty title")
		}
		for _, key := range g.Columns {
			f, ok := s.Catalog.FieldByKey(key)
			if !ok {
				return fmt.Errorf("structure group %q references unknown field %q", g.Title, key)
			}
			if f.Private {
				return fmt.Errorf("structure group %q references private field %q", g.Title, key)
			}
			seen[key]++
		}
	}
	for key, n := range seen {
		if n > 1 {
			return fmt.Errorf("field %q appears in %d structure groups", key, n)
		}
	}
	for _, f := range s.Catalog.PublicFields() {
		if seen[f.Key] == 0 {
			return fmt.Errorf("public field %q missing from structure groups", f.Key)
		}
	}
	return nil
}
