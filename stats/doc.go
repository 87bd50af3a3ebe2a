// Package stats provides the calculated-statistics engine for FalconVis.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - record.go: one team's observed performance in one match, and value coercion
//   - dataset.go: the immutable, match-ordered collection of records for an event
//   - engine.go: CalculatedStats, the per-team and population aggregations
//
// # Architecture
//
// The stats package holds the schema registry (schema.go), the criteria tables
// that turn categorical observations into numbers (criteria.go) and the game
// scoring configuration (game.go). distribution.go holds the summary
// statistics shared by the engine and the predictor; coop.go and lint.go add
// co-op estimates and data checks. Everything else builds on top of it:
//   - stats/predict/: match outcome prediction from per-team scoring distributions
//   - stats/report/: team metric cards and picklist rows composed from an engine
//   - stats/source/: JSON, CSV and SQLite loaders producing records
//
// # Defaults
//
// Aggregations never fail on missing or malformed per-match data. A missing
// field, an unmappable categorical value or an empty population contributes 0.
// Only dataset construction (unparseable match keys, duplicate rows) returns
// errors.
//
// All types in this package are immutable after construction and safe for
// concurrent use.
package stats
