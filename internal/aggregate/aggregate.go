package aggregate

import (
	"fmt"
	"sort"

	"github.com/lesswrong-ru/surveyctl/internal/normalize"
	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

// Bucket is one row of a frequency table.
type Bucket struct {
	Value normalize.Answer
	Count int
}

// Result is the frequency table for one field.
//
// Values is the main table, ordered per the field's sort policy, with
// the absent bucket (if any) always first. OtherValues holds suppressed
// singleton answers on privacy-sensitive fields, as a bare sorted list
// with counts deliberately dropped: a visible count of 1 tied to a
// unique answer re-identifies the respondent.
type Result struct {
	Values      []Bucket
	OtherValues []string

	// Answered is the number of non-absent atomic answers aggregated.
	Answered int

	// Hidden is the answer mass removed by display-limit truncation
	// under the by_frequency policy. Truncation is presentation-only;
	// Hidden keeps the mass accountable.
	Hidden int

	// Collisions lists shortcut labels that two originally-distinct
	// answers were relabeled to. Such answers are NOT merged; the
	// collision is surfaced for review instead.
	Collisions []string
}

// Validate checks the table's mass conservation: every non-absent
// answer is counted exactly once across the main table, the
// suppression list, and the truncated remainder.
func (r *Result) Validate() error {
	sum := 0
	for _, b := range r.Values {
		if b.Count <= 0 {
			return fmt.Errorf("bucket %q has non-positive count %d", b.Value.Label(), b.Count)
		}
		if !b.Value.IsAbsent() {
			sum += b.Count
		}
	}
	if got := sum + len(r.OtherValues) + r.Hidden; got != r.Answered {
		return fmt.Errorf("mass mismatch: main %d + other %d + hidden %d != answered %d",
			sum, len(r.OtherValues), r.Hidden, r.Answered)
	}
	return nil
}

// Aggregate builds the frequency table for one field from its atomic
// answers: count, suppress singletons on privacy-sensitive fields,
// sort per policy, truncate, relabel shortcuts. An empty answer slice
// yields an empty table.
func Aggregate(f *schema.FieldSchema, answers []normalize.Answer) *Result {
	counts := make(map[normalize.Answer]int)
	res := &Result{}
	for _, a := range answers {
		counts[a]++
		if !a.IsAbsent() {
			res.Answered++
		}
	}

	if f.ExtractOther {
		for a, n := range counts {
			if n == 1 && !a.IsAbsent() {
				res.OtherValues = append(res.OtherValues, a.Label())
				delete(counts, a)
			}
		}
		sort.Strings(res.OtherValues)
	}

	absentCount := counts[normalize.Absent()]
	delete(counts, normalize.Absent())

	buckets := make([]Bucket, 0, len(counts))
	for a, n := range counts {
		buckets = append(buckets, Bucket{Value: a, Count: n})
	}
	sortBuckets(f, buckets)

	if f.Sort == schema.SortByFrequency && len(buckets) > f.Limit {
		for _, b := range buckets[f.Limit:] {
			res.Hidden += b.Count
		}
		buckets = buckets[:f.Limit]
	}

	// The absent bucket always leads the table and is never truncated:
	// "no answer" is part of the story for every question.
	if absentCount > 0 {
		buckets = append([]Bucket{{Value: normalize.Absent(), Count: absentCount}}, buckets...)
	}
	res.Values = buckets

	applyShortcuts(f, res)
	return res
}

// applyShortcuts relabels answers per the field's shortcut map. This
// runs after counting and sorting and is purely cosmetic. When two
// distinct answers end up with the same label they are deliberately
// not merged — whether they should be is an authoring question, so the
// collision is reported instead of resolved silently.
func applyShortcuts(f *schema.FieldSchema, res *Result) {
	if len(f.Shortcuts) == 0 {
		return
	}
	labels := make(map[string]int)
	for i, b := range res.Values {
		if b.Value.Kind != normalize.KindString {
			labels[b.Value.Label()]++
			continue
		}
		if short, ok := f.Shortcuts[b.Value.Str]; ok {
			res.Values[i].Value = normalize.String(short)
		}
		labels[res.Values[i].Value.Str]++
	}
	for label, n := range labels {
		if n > 1 {
			res.Collisions = append(res.Collisions,
				fmt.Sprintf("field %s: %d distinct answers share label %q after shortcuts", f.Key, n, label))
		}
	}
	sort.Strings(res.Collisions)
}
