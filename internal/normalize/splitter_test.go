package normalize

import (
	"reflect"
	"testing"

	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

func meetupField(textTail bool) *schema.FieldSchema {
	return &schema.FieldSchema{
		Key:      "meetups_why",
		Split:    schema.SplitPresets,
		TextTail: textTail,
		Presets: []string{
			"Обсудить интересные темы",
			"Узнать что-то новое",
			"Пообщаться с единомышленниками",
		},
	}
}

func TestSplitCommas(t *testing.T) {
	f := &schema.FieldSchema{Key: "hobby", Split: schema.SplitCommas}

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "plain list",
			raw:  "шахматы, покер, футбол",
			want: []string{"шахматы", "покер", "футбол"},
		},
		{
			name: "parenthesized aside with comma removed",
			raw:  "игры (настольные, компьютерные), спорт",
			want: []string{"игры ", "спорт"},
		},
		{
			name: "single value unchanged",
			raw:  "программирование",
			want: []string{"программирование"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(f, tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSplitPresets(t *testing.T) {
	tests := []struct {
		name     string
		textTail bool
		raw      string
		want     []string
	}{
		{
			name:     "preset plus free text residual",
			textTail: true,
			raw:      "Обсудить интересные темы, хочу просто поболтать",
			want:     []string{"Обсудить интересные темы", "хочу просто поболтать"},
		},
		{
			name:     "two presets extracted in declared order",
			textTail: true,
			raw:      "Узнать что-то новое, Обсудить интересные темы",
			want:     []string{"Обсудить интересные темы", "Узнать что-то новое", ""},
		},
		{
			name:     "free text only",
			textTail: true,
			raw:      "за компанию",
			want:     []string{"за компанию"},
		},
		{
			name:     "residual discarded without text_tail",
			textTail: false,
			raw:      "Обсудить интересные темы, хочу просто поболтать",
			want:     []string{"Обсудить интересные темы"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(meetupField(tt.textTail), tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// Splitting a string with no separators and no preset phrases must be
// the identity: downstream suppression and sorting rely on a stable,
// canonical enumeration.
func TestSplitIdempotentOnAtomicInput(t *testing.T) {
	fields := []*schema.FieldSchema{
		{Key: "plain"},
		{Key: "multi", Split: schema.SplitCommas},
		meetupField(true),
	}
	for _, f := range fields {
		got := Split(f, "одиночное значение")
		if len(got) != 1 || got[0] != "одиночное значение" {
			t.Errorf("field %s: Split of atomic input = %q, want single identical element", f.Key, got)
		}
	}
}

func TestSplitOrderStable(t *testing.T) {
	f := meetupField(true)
	raw := "Пообщаться с единомышленниками, Обсудить интересные темы, и вообще"
	first := Split(f, raw)
	for i := 0; i < 10; i++ {
		if got := Split(f, raw); !reflect.DeepEqual(got, first) {
			t.Fatalf("Split order unstable: %q vs %q", got, first)
		}
	}
}
