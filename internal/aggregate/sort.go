package aggregate

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/lesswrong-ru/surveyctl/internal/normalize"
	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

var leadingInt = regexp.MustCompile(`^-?\d+`)
var anyInt = regexp.MustCompile(`\d+`)

// sortBuckets orders the main table in place per the field's policy.
// All orderings are total and deterministic.
func sortBuckets(f *schema.FieldSchema, buckets []Bucket) {
	switch f.Sort {
	case schema.SortNumeric:
		sort.SliceStable(buckets, func(i, j int) bool {
			return numericLess(buckets[i].Value, buckets[j].Value)
		})
	case schema.SortLexical:
		rank := orderRank(f.LexicalOrder)
		sort.SliceStable(buckets, func(i, j int) bool {
			return rankedLess(rank, buckets[i].Value, buckets[j].Value)
		})
	case schema.SortLastInt:
		sort.SliceStable(buckets, func(i, j int) bool {
			return lastIntLess(buckets[i].Value, buckets[j].Value)
		})
	case schema.SortCustom:
		rank := orderRank(f.CustomOrder)
		sort.SliceStable(buckets, func(i, j int) bool {
			a, b := buckets[i], buckets[j]
			ra, aListed := rank[a.Value.Label()]
			rb, bListed := rank[b.Value.Label()]
			switch {
			case aListed && bListed:
				return ra < rb
			case aListed:
				return true
			case bListed:
				return false
			default:
				// Unlisted values sort after all listed ones,
				// most frequent first.
				if a.Count != b.Count {
					return a.Count > b.Count
				}
				return naturalLess(a.Value, b.Value)
			}
		})
	default: // by frequency
		sort.SliceStable(buckets, func(i, j int) bool {
			if buckets[i].Count != buckets[j].Count {
				return buckets[i].Count > buckets[j].Count
			}
			return naturalLess(buckets[i].Value, buckets[j].Value)
		})
	}
}

// naturalLess is the tie-break ordering: integers numerically, then
// strings lexically, integers before strings.
func naturalLess(a, b normalize.Answer) bool {
	if a.Kind == normalize.KindInt && b.Kind == normalize.KindInt {
		return a.Int < b.Int
	}
	if a.Kind != b.Kind {
		return a.Kind == normalize.KindInt
	}
	return a.Label() < b.Label()
}

// numericLess orders by ascending numeric value. String answers are
// ordered by their leading integer ("25%" style percentage scales);
// values with no leading number sort last, lexically.
func numericLess(a, b normalize.Answer) bool {
	av, aok := numericValue(a)
	bv, bok := numericValue(b)
	switch {
	case aok && bok:
		if av != bv {
			return av < bv
		}
		return a.Label() < b.Label()
	case aok:
		return true
	case bok:
		return false
	default:
		return a.Label() < b.Label()
	}
}

func numericValue(a normalize.Answer) (int, bool) {
	if a.Kind == normalize.KindInt {
		return a.Int, true
	}
	m := leadingInt.FindString(a.Label())
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	return v, err == nil
}

// lastIntLess orders by the last integer embedded in the label, the
// upper bound of range labels like "111-120" or "40-49 тыс. р.".
// Labels with no integer sort last, lexically.
func lastIntLess(a, b normalize.Answer) bool {
	av, aok := lastInt(a.Label())
	bv, bok := lastInt(b.Label())
	switch {
	case aok && bok:
		if av != bv {
			return av < bv
		}
		return a.Label() < b.Label()
	case aok:
		return true
	case bok:
		return false
	default:
		return a.Label() < b.Label()
	}
}

func lastInt(label string) (int, bool) {
	ms := anyInt.FindAllString(label, -1)
	if len(ms) == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(ms[len(ms)-1])
	return v, err == nil
}

// rankedLess orders by position in a declared external ordering.
// Unlisted values sort after all listed ones, lexically among
// themselves.
func rankedLess(rank map[string]int, a, b normalize.Answer) bool {
	ra, aListed := rank[a.Label()]
	rb, bListed := rank[b.Label()]
	switch {
	case aListed && bListed:
		return ra < rb
	case aListed:
		return true
	case bListed:
		return false
	default:
		return a.Label() < b.Label()
	}
}

func orderRank(order []string) map[string]int {
	rank := make(map[string]int, len(order))
	for i, v := range order {
		rank[v] = i
	}
	return rank
}
