package classify

import (
	"regexp"

	"github.com/fyrsmithlabs/rfpd/internal/rfp"
)

// categoryRule pairs a compiled regex with the category it detects.
// Rules are evaluated in order; the first match wins.
type categoryRule struct {
	regex    *regexp.Regexp
	category rfp.Category
}

// categoryRules is the fixed evaluation order for category detection.
// Ties on ambiguous text break by position in this list, not alphabetically.
var categoryRules = []categoryRule{
	{regexp.MustCompile(`(?i)eligib`), rfp.CategoryEligibility},
	{regexp.MustCompile(`(?i)budget|funding`), rfp.CategoryBudget},
	{regexp.MustCompile(`(?i)timeline|schedule`), rfp.CategoryTimeline},
	{regexp.MustCompile(`(?i)evaluation`), rfp.CategoryEvaluation},
	{regexp.MustCompile(`(?i)compliance|terms`), rfp.CategoryCompliance},
	{regexp.MustCompile(`(?i)deliverable|scope`), rfp.CategoryScope},
	{regexp.MustCompile(`(?i)submission|format|instructions`), rfp.CategorySubmission},
	{regexp.MustCompile(`(?i)contact`), rfp.CategoryContact},
}

// Category classifies text against the ordered rule list, returning
// CategoryGeneral when nothing matches.
func Category(text string) rfp.Category {
	for _, rule := range categoryRules {
		if rule.regex.MatchString(text) {
			return rule.category
		}
	}
	return rfp.CategoryGeneral
}

// SectionCategory classifies a section by title first, falling back to its
// content when the title alone carries no signal.
func SectionCategory(title, content string) rfp.Category {
	if c := Category(title); c != rfp.CategoryGeneral {
		return c
	}
	return Category(content)
}
