// Package redact heuristically masks PII-like tokens (emails, phone
// numbers, street addresses, company names, person names, city/state/zip)
// before any text is handed to an external summarization or keyword
// collaborator. This ordering is a hard contract of the pipeline, not an
// optional hygiene step.
//
// The substitutions lean conservative: capitalized common bigrams may be
// masked as names, and that is accepted. Redaction is idempotent: the
// replacement tokens never match any rule on a second pass.
package redact
