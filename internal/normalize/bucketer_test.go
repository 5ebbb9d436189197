package normalize

import (
	"testing"

	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

func TestBucketIQ(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{117, "111-120"},
		{111, "111-120"},
		{120, "111-120"},
		{110, "101-110"},
		{121, "121-130"},
		{100, "91-100"},
		{101, "101-110"},
	}
	for _, tt := range tests {
		if got := BucketIQ(tt.value); got != tt.want {
			t.Errorf("BucketIQ(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

// Band assignment must be monotonic: a higher score never lands in a
// band whose upper bound is lower.
func TestBucketIQMonotonic(t *testing.T) {
	prev := ""
	prevUpper := -1
	for v := 60; v <= 160; v++ {
		label := BucketIQ(v)
		upper, ok := lastIntOf(label)
		if !ok {
			t.Fatalf("BucketIQ(%d) = %q has no integer", v, label)
		}
		if upper < prevUpper {
			t.Fatalf("BucketIQ not monotonic: %d → %q after %q", v, label, prev)
		}
		prev, prevUpper = label, upper
	}
}

func TestBucketIncomeRUB(t *testing.T) {
	f := &schema.FieldSchema{Key: "income_amount", Bands: schema.BandsRUB}

	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"45000", "40-49 тыс. р.", true},
		{"4999", "до 5 тыс. р.", true},
		{"7500", "5-9 тыс. р.", true},
		{"149999", "140-149 тыс. р.", true},
		{"150000", "150-199 тыс. р.", true},
		{"200000", "200-249 тыс. р.", true},
		// Small answers are given in thousands.
		{"45", "40-49 тыс. р.", true},
		{"45000,50", "40-49 тыс. р.", true},
		{"сорок пять тысяч", "", false},
	}
	for _, tt := range tests {
		got, ok := BucketIncome(f, tt.raw)
		if ok != tt.wantOK {
			t.Errorf("BucketIncome(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			continue
		}
		if got != tt.want {
			t.Errorf("BucketIncome(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestBucketIncomeUSD(t *testing.T) {
	f := &schema.FieldSchema{Key: "income_amount", Bands: schema.BandsUSD}

	tests := []struct {
		raw  string
		want string
	}{
		{"99", "до $100"},
		{"100", "$100 - $499"},
		{"499", "$100 - $499"},
		{"2345", "$2000 - $2499"},
		{"4999", "$4500 - $4999"},
		{"5000", "> $5000"},
		{"12000", "> $5000"},
	}
	for _, tt := range tests {
		got, ok := BucketIncome(f, tt.raw)
		if !ok {
			t.Errorf("BucketIncome(%q) unexpectedly failed", tt.raw)
			continue
		}
		if got != tt.want {
			t.Errorf("BucketIncome(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

// lastIntOf extracts the trailing band bound for the monotonicity check.
func lastIntOf(label string) (int, bool) {
	n := 0
	found := false
	cur := -1
	for _, r := range label {
		if r >= '0' && r <= '9' {
			if cur < 0 {
				cur = 0
			}
			cur = cur*10 + int(r-'0')
		} else if cur >= 0 {
			n, found = cur, true
			cur = -1
		}
	}
	if cur >= 0 {
		n, found = cur, true
	}
	return n, found
}
