// Package enrich is the keyword-enrichment boundary of the pipeline. The
// actual keyword generator (an external LLM service) lives behind the
// Generator interface; this package owns everything the core is responsible
// for around that call: condensing and redacting the document text before
// it leaves the process, normalizing returned keywords, swallowing
// generator failures, and broadcasting the final keyword set identically
// onto every Requirement of a document.
//
// Broadcast semantics are deliberate: the source system applies one keyword
// set per document, not per-requirement relevance, and this core preserves
// that.
package enrich
