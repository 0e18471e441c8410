package segment

import (
	"regexp"
	"strings"
)

// clauseMarkerRe matches bullet (-, •, *), numbered (1.) and lettered (a))
// list markers at line starts. Content is prefixed with a newline before
// splitting so a marker on the first line is recognized too.
var clauseMarkerRe = regexp.MustCompile(`\n\s*(?:[-•*]|\d+\.|[a-z]\))\s+`)

// SplitClauses breaks a section's content into enumerable clause items.
//
// When the content carries no list markers at all the result is empty and
// the assembler falls back to treating the whole section as one clause.
// Text preceding the first marker becomes the first clause.
func SplitClauses(sec Section) []Clause {
	content := strings.Join(sec.Content, "\n")
	probe := "\n" + content
	if !clauseMarkerRe.MatchString(probe) {
		return nil
	}

	var clauses []Clause
	for _, part := range clauseMarkerRe.Split(probe, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		clauses = append(clauses, Clause{
			SectionTitle: sec.Title,
			Index:        len(clauses),
			RawText:      part,
		})
	}
	return clauses
}
