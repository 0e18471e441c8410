package redact

import (
	"regexp"
	"strings"
)

var (
	emailRe   = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phoneRe   = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-])?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}\b`)
	addressRe = regexp.MustCompile(`(?i)\b\d{1,6}\s+[A-Za-z0-9'.\-]+\s+(?:Street|St\.|Road|Rd\.|Avenue|Ave\.|Boulevard|Blvd\.|Lane|Ln\.|Drive|Dr\.|Court|Ct\.|Way)\b`)
	companyRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s+(?:Inc\.|LLC|Ltd\.|Corporation|Corp\.)`)
	cityZipRe = regexp.MustCompile(`\b[A-Z][a-zA-Z]+,\s*[A-Z]{2}\s*\d{5}(?:-\d{4})?\b`)
	personRe  = regexp.MustCompile(`\b[A-Z][a-z]{2,}\s+[A-Z][a-z]{2,}\b`)
)

// personBlacklist keeps common document phrase bigrams from being masked as
// person names.
var personBlacklist = []string{
	"Scope Of",
	"Table Of",
	"Statement Of",
	"Request For",
	"Terms And",
}

// Text masks PII-like tokens with [REDACTED_*] markers. Substitutions run
// in a fixed order (email, phone, address, company, name, location); the
// markers themselves match no rule, so re-running the filter is a no-op.
func Text(input string) string {
	out := emailRe.ReplaceAllString(input, "[REDACTED_EMAIL]")
	out = phoneRe.ReplaceAllString(out, "[REDACTED_PHONE]")
	out = addressRe.ReplaceAllString(out, "[REDACTED_ADDRESS]")
	out = companyRe.ReplaceAllString(out, "[REDACTED_COMPANY]")
	out = personRe.ReplaceAllStringFunc(out, func(m string) string {
		for _, b := range personBlacklist {
			if strings.HasPrefix(m, b) {
				return m
			}
		}
		return "[REDACTED_NAME]"
	})
	out = cityZipRe.ReplaceAllString(out, "[REDACTED_LOCATION]")
	return out
}
