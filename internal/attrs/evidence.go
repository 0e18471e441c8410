package attrs

import "regexp"

// evidencePattern pairs a fixed evidence label with its detection regex.
type evidencePattern struct {
	label string
	regex *regexp.Regexp
}

// evidenceVocabulary is the fixed evidence vocabulary. Output order follows
// this list, not input order; labels are not mutually exclusive.
var evidenceVocabulary = []evidencePattern{
	{"IRS letter", regexp.MustCompile(`(?i)501\s*\(c\)\s*\(3\)|irs\s+(?:determination\s+)?letter|tax[- ]exempt`)},
	{"letters of support", regexp.MustCompile(`(?i)letters?\s+of\s+support`)},
	{"resumes", regexp.MustCompile(`(?i)\bresumes?\b|\bcvs?\b`)},
	{"certifications", regexp.MustCompile(`(?i)certifications?|licenses?`)},
	{"financial statements", regexp.MustCompile(`(?i)financial\s+statements?|audited\s+financials?`)},
	{"work samples", regexp.MustCompile(`(?i)work\s+samples?|portfolio`)},
	{"past performance", regexp.MustCompile(`(?i)past\s+performance|references?`)},
	{"budget worksheet", regexp.MustCompile(`(?i)budget\s+(?:worksheet|breakdown|narrative)`)},
	{"compliance forms", regexp.MustCompile(`(?i)\bforms?\b|(?:affidavit|debarment|insurance)\s+(?:form|certificate)`)},
}

// Evidence returns every evidence label whose pattern matches the text, in
// fixed vocabulary order.
func Evidence(text string) []string {
	var out []string
	for _, p := range evidenceVocabulary {
		if p.regex.MatchString(text) {
			out = append(out, p.label)
		}
	}
	return out
}
