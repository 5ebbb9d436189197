// Package dedup finds survey submissions that are likely edits or
// resubmissions of an earlier answer rather than independent
// respondents.
//
// The detector scores every unordered pair of rows by field-level
// agreement on raw pre-normalization values: fields where both sides
// answered either agree exactly or conflict; fields blank on either
// side are neutral. A pair is flagged when enough fields agree and few
// conflict (see Config).
//
// Output is a diagnostic report for manual review only — it never
// feeds back into aggregation.
package dedup
