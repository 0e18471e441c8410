// Package attrs holds the independent per-section attribute extractors:
// evidence labels, submission format, budget caps and due dates. Each is a
// pure function over text and can be tested in isolation. Regex contracts
// are exact string-pattern matches; none of these extractors attempts
// semantic interpretation.
package attrs
