// Package normalize turns raw survey cells into atomic answers: text
// cleanup and synonym reconciliation (NormalizeOne), multi-value
// splitting with preset-phrase extraction (Split), and privacy
// bucketing of sensitive numeric answers (BucketIQ, BucketIncome).
// Atomize composes them into the full per-cell pipeline.
//
// Everything here is pure: no I/O, no errors. Malformed input degrades
// to a best-effort value or the absent marker, never an abort — one
// bad respondent answer must not block the report.
package normalize
