package normalize

import (
	"strconv"
	"strings"

	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

// Atomize runs the full per-cell pipeline for one field: numeric
// bucketing for anonymized fields, integer coercion for plain numeric
// fields, split + normalize for everything else. An absent or
// unparseable cell yields a single absent answer so every row
// contributes to every field's table.
func Atomize(f *schema.FieldSchema, raw string, present bool) []Answer {
	if !present || strings.TrimSpace(raw) == "" {
		return []Answer{Absent()}
	}

	switch f.Bucket {
	case schema.BucketIQ:
		v, ok := parseInt(raw)
		if !ok {
			return []Answer{Absent()}
		}
		return []Answer{String(BucketIQ(v))}
	case schema.BucketIncome:
		label, ok := BucketIncome(f, raw)
		if !ok {
			return []Answer{Absent()}
		}
		return []Answer{String(label)}
	}

	if f.Type == schema.TypeInteger {
		v, ok := parseInt(raw)
		if !ok {
			return []Answer{Absent()}
		}
		return []Answer{Int(v)}
	}

	var answers []Answer
	for _, part := range Split(f, raw) {
		if v, ok := NormalizeOne(f, part); ok {
			answers = append(answers, String(v))
		} else {
			answers = append(answers, Absent())
		}
	}
	return answers
}

// parseInt accepts integer answers that arrive as floats ("25.0") or
// with a decimal comma.
func parseInt(raw string) (int, bool) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if v, err := strconv.Atoi(raw); err == nil {
		return v, true
	}
	fv, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return int(fv), true
}
