// Package aggregate builds per-field frequency tables from atomic
// answers: occurrence counting, singleton suppression on
// privacy-sensitive fields, policy-driven ordering, display-limit
// truncation, and cosmetic shortcut relabeling.
//
// Suppression hides rare values, never respondents: the total answer
// mass is conserved across the main table, the other_values list, and
// the truncated remainder. Result.Validate checks this invariant.
package aggregate
