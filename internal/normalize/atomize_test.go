package normalize

import (
	"reflect"
	"testing"

	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

func TestAtomize(t *testing.T) {
	iq := &schema.FieldSchema{Key: "iq", Type: schema.TypeInteger, Bucket: schema.BucketIQ}
	age := &schema.FieldSchema{Key: "age", Type: schema.TypeInteger}
	income := &schema.FieldSchema{
		Key: "income_amount", Type: schema.TypeInteger,
		Bucket: schema.BucketIncome, Bands: schema.BandsRUB, NumericText: true,
	}
	city := &schema.FieldSchema{Key: "city"}
	meetups := &schema.FieldSchema{
		Key: "meetups_why", Split: schema.SplitPresets, TextTail: true,
		Presets: []string{"Обсудить интересные темы"},
	}

	tests := []struct {
		name    string
		field   *schema.FieldSchema
		raw     string
		present bool
		want    []Answer
	}{
		{"absent cell", city, "", false, []Answer{Absent()}},
		{"blank cell", city, "   ", true, []Answer{Absent()}},
		{"iq bucketed", iq, "117", true, []Answer{String("111-120")}},
		{"iq as float", iq, "117.0", true, []Answer{String("111-120")}},
		{"iq malformed degrades to absent", iq, "сто", true, []Answer{Absent()}},
		{"plain integer", age, "25", true, []Answer{Int(25)}},
		{"integer with decimal comma", age, "25,0", true, []Answer{Int(25)}},
		{"integer malformed degrades to absent", age, "двадцать", true, []Answer{Absent()}},
		{"income bucketed", income, "45000", true, []Answer{String("40-49 тыс. р.")}},
		{"string normalized", city, "москва.", true, []Answer{String("Москва")}},
		{
			// Residual free text is capitalized like any other answer.
			"preset split then normalized",
			meetups, "Обсудить интересные темы, хочу просто поболтать", true,
			[]Answer{String("Обсудить интересные темы"), String("Хочу просто поболтать")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Atomize(tt.field, tt.raw, tt.present)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Atomize(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
