package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

// BucketIQ maps an IQ score to its decile band label, e.g. 117 →
// "111-120". The transform is lossy on purpose: an exact rare score
// could identify a respondent.
func BucketIQ(v int) string {
	low := (v-1)/10*10 + 1
	return fmt.Sprintf("%d-%d", low, low+9)
}

// BucketIncome maps a raw monthly-income answer to a coarse band label
// under the field's declared band scheme. Decimal commas are accepted;
// the value is truncated to integer currency units first. Returns
// ok=false when the value does not parse as a number — one malformed
// answer must not abort the run.
func BucketIncome(f *schema.FieldSchema, raw string) (string, bool) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	fv, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", false
	}
	v := int(fv)
	switch f.Bands {
	case schema.BandsUSD:
		return bucketUSD(v), true
	default:
		return bucketRUB(v), true
	}
}

// bucketRUB implements the ruble band scheme. Small positive values
// are answers given in thousands ("45" meaning 45000 р.) and are
// scaled up before banding.
func bucketRUB(v int) string {
	if v > 0 && v < 300 {
		v *= 1000
	}
	switch {
	case v < 5000:
		return "до 5 тыс. р."
	case v < 10000:
		return "5-9 тыс. р."
	case v < 150000:
		g := v / 10000
		return fmt.Sprintf("%d-%d тыс. р.", 10*g, 10*g+9)
	default:
		g := v / 50000
		return fmt.Sprintf("%d-%d тыс. р.", 50*g, 50*g+49)
	}
}

// bucketUSD implements the dollar band scheme.
func bucketUSD(v int) string {
	switch {
	case v < 100:
		return "до $100"
	case v < 500:
		return "$100 - $499"
	case v < 5000:
		g := v / 500
		return fmt.Sprintf("$%d00 - $%d99", 5*g, 5*g+4)
	default:
		return "> $5000"
	}
}
