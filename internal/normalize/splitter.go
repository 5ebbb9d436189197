package normalize

import (
	"regexp"
	"strings"

	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

var (
	parenAside = regexp.MustCompile(`\(.*?\)`)
	commaSep   = regexp.MustCompile(`,\s*`)
)

// Sentinel left in place of an extracted preset phrase so the residual
// text keeps its separator positions. NUL cannot occur in survey text.
const presetMark = "\x00"

// Split turns one raw cell into an ordered sequence of raw answer
// strings, before any normalization. The output order is stable:
// downstream suppression and sorting depend on a canonical enumeration.
func Split(f *schema.FieldSchema, raw string) []string {
	switch f.Split {
	case schema.SplitCommas:
		return splitCommas(raw)
	case schema.SplitPresets:
		return splitPresets(f, raw)
	default:
		return []string{raw}
	}
}

// splitCommas handles free-form multi-select fields. Parenthesized
// asides are removed first: they often contain commas that are not
// list separators.
func splitCommas(raw string) []string {
	return commaSep.Split(parenAside.ReplaceAllString(raw, ""), -1)
}

// splitPresets handles fields answered from a fixed preset menu but
// recorded as free text, where the respondent could also type extra
// commentary. Each preset phrase is matched as a literal substring in
// declared order and extracted; the catalog loader guarantees that no
// preset is a substring of a later one, so declared order cannot
// destroy a longer phrase. Whatever text remains after all presets are
// removed is kept as one residual answer when the field declares
// text_tail, otherwise discarded.
func splitPresets(f *schema.FieldSchema, raw string) []string {
	var values []string
	rest := raw
	for _, preset := range f.Presets {
		if strings.Contains(rest, preset) {
			rest = strings.ReplaceAll(rest, preset, presetMark)
			values = append(values, preset)
		}
	}
	if !f.TextTail {
		return values
	}

	// Reassemble the residual free text, dropping the separators that
	// belonged to extracted presets.
	var parts []string
	for _, part := range strings.Split(rest, ", ") {
		part = strings.ReplaceAll(part, presetMark, "")
		if strings.TrimSpace(part) == "" {
			continue
		}
		parts = append(parts, part)
	}
	values = append(values, strings.Join(parts, ", "))
	return values
}
