package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

// NormalizeOne cleans a single raw answer string for the given field.
// It returns the canonical answer text, or ok=false when the cleaned
// value is empty (the respondent effectively gave no answer).
//
// Cleanup, in order: NFC unicode normalization, trailing smiley and
// trailing period removal, whitespace trimming, first-rune
// capitalization, field synonym lookup, field content rules. The
// function is pure and never fails; malformed input degrades to a
// best-effort string.
func NormalizeOne(f *schema.FieldSchema, raw string) (string, bool) {
	v := norm.NFC.String(raw)

	v = strings.TrimSuffix(v, ":)")
	if !f.NumericText {
		// A trailing period is typo noise everywhere except in
		// numeric free text, where it may be a decimal point.
		v = strings.TrimSuffix(v, ".")
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}

	v = upperFirst(v)

	if len(f.Synonyms) > 0 {
		if canonical, ok := f.Synonyms[strings.ToLower(v)]; ok {
			v = canonical
		}
	}
	for _, rule := range f.ContentRules {
		if strings.Contains(strings.ToLower(v), strings.ToLower(rule.Marker)) {
			v = rule.Label
		}
	}
	return v, true
}

// upperFirst capitalizes the first rune only, preserving the rest of
// the string's casing. Unicode-aware: answers are mostly Cyrillic.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	up := unicode.ToUpper(r)
	if up == r {
		return s
	}
	return string(up) + s[size:]
}
