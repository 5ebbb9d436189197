package normalize

import (
	"testing"

	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

func TestNormalizeOne(t *testing.T) {
	plain := &schema.FieldSchema{Key: "city"}
	speciality := &schema.FieldSchema{
		Key: "speciality",
		Synonyms: map[string]string{
			"it":  "IT",
			"ит":  "IT",
			"информационные технологии": "IT",
		},
	}
	source := &schema.FieldSchema{
		Key: "source",
		ContentRules: []schema.ContentRule{
			{Marker: "gipsy", Label: "Покерный форум GipsyTeam.ru"},
		},
	}
	income := &schema.FieldSchema{Key: "income_amount", NumericText: true}

	tests := []struct {
		name   string
		field  *schema.FieldSchema
		raw    string
		want   string
		wantOK bool
	}{
		{"trailing smiley stripped", plain, "Москва:)", "Москва", true},
		{"trailing period stripped", plain, "Москва.", "Москва", true},
		{"surrounding whitespace trimmed", plain, "  Минск  ", "Минск", true},
		{"empty is absent", plain, "", "", false},
		{"whitespace only is absent", plain, "   ", "", false},
		{"smiley alone is absent", plain, ":)", "", false},
		{"first letter capitalized", plain, "москва", "Москва", true},
		{"rest of casing preserved", plain, "санкт-Петербург", "Санкт-Петербург", true},
		{"latin capitalization", plain, "berlin", "Berlin", true},
		{"synonym lowercase cyrillic", speciality, "ит", "IT", true},
		{"synonym mixed case", speciality, "ИТ", "IT", true},
		{"synonym long form", speciality, "информационные технологии", "IT", true},
		{"synonym latin", speciality, "it", "IT", true},
		{"non-synonym passes through", speciality, "физика", "Физика", true},
		{"content rule rewrites", source, "Форум GipsyTeam", "Покерный форум GipsyTeam.ru", true},
		{"content rule case-insensitive", source, "GIPSYteam news", "Покерный форум GipsyTeam.ru", true},
		{"numeric text keeps trailing period", income, "45000.", "45000.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeOne(tt.field, tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeOne(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("NormalizeOne(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeOnePure(t *testing.T) {
	f := &schema.FieldSchema{Key: "city"}
	a1, _ := NormalizeOne(f, "москва.")
	a2, _ := NormalizeOne(f, "москва.")
	if a1 != a2 {
		t.Errorf("NormalizeOne not deterministic: %q vs %q", a1, a2)
	}
}
