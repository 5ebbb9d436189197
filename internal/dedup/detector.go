package dedup

import (
	"github.com/lesswrong-ru/surveyctl/internal/ingest"
)

// PairScore is the field-level agreement profile of one pair of
// submissions. Every compared field falls into exactly one bucket.
type PairScore struct {
	// Equal counts fields where both sides answered and the raw values
	// match exactly.
	Equal int

	// Different counts fields where both sides answered and the raw
	// values conflict.
	Different int

	// EmptyBoth counts fields neither side answered.
	EmptyBoth int

	// EmptyA counts fields only the first submission left blank.
	EmptyA int

	// EmptyB counts fields only the second submission left blank.
	EmptyB int
}

// Finding is one flagged pair: the row indices, the submission
// timestamps for manual review, and the full score.
type Finding struct {
	I, J   int
	StampA string
	StampB string
	Score  PairScore
}

// ScorePair classifies every compared field of a submission pair.
// Comparison uses raw pre-normalization values and an explicit
// emptiness test: normalization could manufacture agreement between
// independently-typed answers, so it is deliberately kept out.
func ScorePair(a, b ingest.Row, fields []string) PairScore {
	var s PairScore
	for _, key := range fields {
		va, aok := a.Get(key)
		vb, bok := b.Get(key)
		switch {
		case !aok && !bok:
			s.EmptyBoth++
		case !aok:
			s.EmptyA++
		case !bok:
			s.EmptyB++
		case va == vb:
			s.Equal++
		default:
			s.Different++
		}
	}
	return s
}

// Flagged reports whether the score crosses the duplicate thresholds:
// many fields agree exactly and few genuinely conflict. Empty fields
// are neutral either way.
func (s PairScore) Flagged(cfg Config) bool {
	return s.Equal >= cfg.MinEqual && s.Different <= cfg.MaxDifferent
}

// FindDuplicates scores every unordered pair of submissions and
// returns the flagged ones in (i, j) order. O(n²) over the respondent
// count, which is a few hundred at most.
//
// This is a diagnostic report for manual review, not a
// correctness-critical transform; false positives and negatives are
// acceptable.
func FindDuplicates(rows []ingest.Row, fields []string, stampKey string, cfg Config) []Finding {
	var findings []Finding
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			score := ScorePair(rows[i], rows[j], fields)
			if !score.Flagged(cfg) {
				continue
			}
			stampA, _ := rows[i].Get(stampKey)
			stampB, _ := rows[j].Get(stampKey)
			findings = append(findings, Finding{
				I:      i,
				J:      j,
				StampA: stampA,
				StampB: stampB,
				Score:  score,
			})
		}
	}
	return findings
}
