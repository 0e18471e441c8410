// Package rfp defines the canonical domain types produced by the
// requirement-extraction pipeline: Requirement records with derived
// metadata (category, priority, evidence, submission format, budget
// caps, due dates) and the AccuracyResult coverage view.
//
// Requirement records are created once per extraction run. The derived
// attribute fields are immutable outputs of the core; Keywords and
// CoverageStatus are the only fields later mutated by collaborators
// (keyword enrichment and proposal-generation coverage tracking).
package rfp
