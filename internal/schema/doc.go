// Package schema holds the declarative survey catalog: one FieldSchema
// per question, plus the UI grouping structure.
//
// All per-field special-casing the pipeline performs — splitting,
// synonym fixes, numeric bucketing, suppression, sort policy — is
// declared here rather than scattered through the pipeline code, so
// adding a question to the survey requires only a catalog entry.
//
// Declarations are loaded from YAML (see Load and Parse); the 2018
// survey ships embedded as Builtin().
package schema
