package attrs

import "regexp"

// dateRe accepts three shapes: "Month D, YYYY" (month abbreviations
// allowed), "M/D/YY[YY]" and "YYYY-MM-DD". Captured tokens keep the string
// form found in the text; no calendar parsing or normalization happens
// here, preserving ambiguous formats as-is.
var dateRe = regexp.MustCompile(
	`(?i)\b((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2},\s+\d{4}|\d{1,2}/\d{1,2}/\d{2,4}|\d{4}-\d{2}-\d{2})\b`)

// DueDates returns every date-like token in the text, in input order.
func DueDates(text string) []string {
	var out []string
	for _, m := range dateRe.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}
