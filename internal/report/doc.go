// Package report assembles the published survey summary: it runs the
// normalization and aggregation pipeline over every public field,
// validates the survey declaration up front, and serializes the result
// as JSON or as the data.js ES module the renderer consumes.
package report
