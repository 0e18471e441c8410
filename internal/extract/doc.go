// Package extract assembles Requirement records from raw RFP text.
//
// The pipeline is section detection, clause splitting, attribute
// extraction and assembly, composed behind a single Service.Extract call.
// Two splitting strategies exist behind the Strategy interface:
//
//   - items (canonical): clause items from bullet/numbered/lettered list
//     markers, whole-section fallback when a section has none.
//   - sentences: sentence-level splitting filtered to modal-requirement
//     verbs (must/shall/required/...), one soft requirement per section
//     when no sentence qualifies but a category signal exists.
//
// Strategies are selected by configuration and never merged. Extraction is
// total: it performs no I/O, never fails on arbitrary string input, and
// always returns at least one Requirement (placeholder policy).
//
// Evidence, submission format, budget caps and due dates are computed once
// per section and copied onto every clause Requirement from that section;
// priority alone is recomputed per clause. This bulk-apply coarseness is
// deliberate.
package extract
