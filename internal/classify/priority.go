package classify

import (
	"regexp"

	"github.com/fyrsmithlabs/rfpd/internal/rfp"
)

// Whole-word priority signals. Must/shall language takes precedence over
// should language even when both appear in the same clause.
var (
	highPriorityRe   = regexp.MustCompile(`(?i)\b(?:must|shall|required|mandatory)\b`)
	mediumPriorityRe = regexp.MustCompile(`(?i)\b(?:should|recommended|strongly encouraged|expected)\b`)
)

// Priority derives a clause priority from its text.
func Priority(text string) rfp.Priority {
	if highPriorityRe.MatchString(text) {
		return rfp.PriorityHigh
	}
	if mediumPriorityRe.MatchString(text) {
		return rfp.PriorityMedium
	}
	return rfp.PriorityLow
}
