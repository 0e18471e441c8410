package segment

import (
	"regexp"
	"strings"
)

// headingKeywords is the fixed list of section headers recognized behind an
// optional enumeration prefix. Longer phrases come before their prefixes
// ("Scope of Work" before "Scope") so the matched title is the full phrase.
var headingKeywords = []string{
	"Eligibility",
	"Submission Requirements",
	"Scope of Work",
	"Scope",
	"Budget",
	"Funding",
	"Timeline",
	"Schedule",
	"Evaluation Criteria",
	"Compliance",
	"Contact",
	"Instructions",
	"Deliverables",
	"Proposal Format",
	"Administrative",
	"Terms and Conditions",
}

var (
	keywordHeadingRe = regexp.MustCompile(
		`(?i)^(?:\d+\.|[A-Z]{1,3}\.|[IVX]{1,4}\.)?\s*(?:` + strings.Join(headingKeywords, "|") + `)\b`)

	// Decimal-numeric prefix headings, e.g. "2.3 Vendor Qualifications".
	decimalHeadingRe = regexp.MustCompile(`^\d+(?:\.\d+)*\s+.{3,}$`)

	// ALL-CAPS headings of length >= 4.
	allCapsHeadingRe = regexp.MustCompile(`^[A-Z][A-Z\s]{3,}$`)

	leadingNonLetterRe = regexp.MustCompile(`^[^A-Za-z]*`)
)

// headingTitle returns the section title for a heading line, or "" when the
// line is not a heading.
func headingTitle(line string) string {
	switch {
	case keywordHeadingRe.MatchString(line):
		return strings.TrimSpace(leadingNonLetterRe.ReplaceAllString(line, ""))
	case decimalHeadingRe.MatchString(line):
		return line
	case allCapsHeadingRe.MatchString(line):
		return line
	}
	return ""
}

// DetectSections splits raw text into an ordered list of titled sections.
//
// Blank lines are dropped from content and never create boundaries. A
// heading seen before any content has accumulated renames the in-progress
// section instead of emitting an empty one. When no heading is found the
// whole input becomes a single section titled "General".
func DetectSections(text string) []Section {
	var sections []Section
	current := Section{Title: "General"}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}
		if title := headingTitle(line); title != "" {
			if len(current.Content) > 0 {
				sections = append(sections, current)
			}
			current = Section{Title: title}
			continue
		}
		current.Content = append(current.Content, line)
	}
	if len(current.Content) > 0 {
		sections = append(sections, current)
	}

	return sections
}
