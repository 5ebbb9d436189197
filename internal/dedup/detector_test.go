package dedup

import (
	"fmt"
	"testing"

	"github.com/lesswrong-ru/surveyctl/internal/ingest"
)

func TestScorePair(t *testing.T) {
	a := ingest.Row{
		"country": "Россия",
		"city":    "Москва",
		"age":     "25",
		"gender":  "М",
		"hobby":   "шахматы",
	}
	b := ingest.Row{
		"country": "Россия",
		"city":    "Минск",
		"age":     "25",
		"gender":  "",
		"english": "Свободно",
	}
	fields := []string{"country", "city", "age", "gender", "hobby", "english", "religion"}

	got := ScorePair(a, b, fields)
	want := PairScore{
		Equal:     2, // country, age
		Different: 1, // city
		EmptyBoth: 1, // religion
		EmptyA:    1, // english
		EmptyB:    2, // gender (blank counts as empty), hobby
	}
	if got != want {
		t.Errorf("ScorePair = %+v, want %+v", got, want)
	}
}

// A pair agreeing on 20 of 30 compared fields, differing on 2, with 8
// fields empty on one or both sides, is flagged under thresholds
// min_equal=15 max_different=10. Empty fields are neutral.
func TestFindDuplicatesFlagsNearDuplicate(t *testing.T) {
	var fields []string
	a := ingest.Row{"timestamp": "2018-04-01 10:00:00"}
	b := ingest.Row{"timestamp": "2018-04-02 21:30:00"}
	c := ingest.Row{"timestamp": "2018-04-03 09:15:00"}

	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("same_%d", i)
		fields = append(fields, key)
		a[key] = fmt.Sprintf("общий ответ %d", i)
		b[key] = fmt.Sprintf("общий ответ %d", i)
		c[key] = fmt.Sprintf("другой ответ %d", i)
	}
	for i := 0; i < 2; i++ {
		key := fmt.Sprintf("diff_%d", i)
		fields = append(fields, key)
		a[key] = "да"
		b[key] = "нет"
		c[key] = "может быть"
	}
	for i := 0; i < 8; i++ {
		key := fmt.Sprintf("empty_%d", i)
		fields = append(fields, key)
		if i%2 == 0 {
			a[key] = "ответил только первый"
		}
	}

	cfg := Config{MinEqual: 15, MaxDifferent: 10}
	findings := FindDuplicates([]ingest.Row{a, b, c}, fields, "timestamp", cfg)

	if len(findings) != 1 {
		t.Fatalf("findings = %d, want exactly the (0,1) pair", len(findings))
	}
	f := findings[0]
	if f.I != 0 || f.J != 1 {
		t.Errorf("flagged pair (%d, %d), want (0, 1)", f.I, f.J)
	}
	if f.Score.Equal != 20 {
		t.Errorf("Equal = %d, want 20", f.Score.Equal)
	}
	if f.Score.Different != 2 {
		t.Errorf("Different = %d, want 2", f.Score.Different)
	}
	if f.StampA != "2018-04-01 10:00:00" || f.StampB != "2018-04-02 21:30:00" {
		t.Errorf("stamps = %q, %q", f.StampA, f.StampB)
	}
}

func TestFlaggedThresholds(t *testing.T) {
	cfg := Config{MinEqual: 10, MaxDifferent: 10}
	tests := []struct {
		score PairScore
		want  bool
	}{
		{PairScore{Equal: 10, Different: 10}, true},
		{PairScore{Equal: 9, Different: 0}, false},
		{PairScore{Equal: 30, Different: 11}, false},
		{PairScore{Equal: 30, Different: 0, EmptyBoth: 40}, true},
	}
	for _, tt := range tests {
		if got := tt.score.Flagged(cfg); got != tt.want {
			t.Errorf("Flagged(%+v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
