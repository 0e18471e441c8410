package attrs

import (
	"regexp"
	"strconv"

	"github.com/fyrsmithlabs/rfpd/internal/rfp"
)

var (
	pageLimitRe = regexp.MustCompile(`(?i)\b(?:maximum|max|no more than)\s+(\d+)\s+pages?\b`)
	fontSizeRe  = regexp.MustCompile(`(?i)\b(?:font|typeface)[^.\n]*?(\d{1,2})\s*(?:pt|point)`)

	pdfRe  = regexp.MustCompile(`(?i)\bpdf\b`)
	docxRe = regexp.MustCompile(`(?i)\bdocx\b|\bword\b`)
	htmlRe = regexp.MustCompile(`(?i)\bhtml\b`)

	portalRe   = regexp.MustCompile(`(?i)portal|online submission|website|\burl\b`)
	hardCopyRe = regexp.MustCompile(`(?i)hard ?copy|\bmail\b|postmarked`)
)

// SubmissionFormat detects page limits, font-size floors, explicit file
// types and submission methods. Returns nil when no format signal is found.
func SubmissionFormat(text string) *rfp.SubmissionFormat {
	var f rfp.SubmissionFormat

	if m := pageLimitRe.FindStringSubmatch(text); m != nil {
		// The capture is \d+ so Atoi cannot fail.
		f.MaxPages, _ = strconv.Atoi(m[1])
	}
	if m := fontSizeRe.FindStringSubmatch(text); m != nil {
		f.Font = ">=" + m[1] + "pt"
	}

	if pdfRe.MatchString(text) {
		f.FileTypes = append(f.FileTypes, "PDF")
	}
	if docxRe.MatchString(text) {
		f.FileTypes = append(f.FileTypes, "DOCX")
	}
	if htmlRe.MatchString(text) {
		f.FileTypes = append(f.FileTypes, "HTML")
	}

	if portalRe.MatchString(text) {
		f.Methods = append(f.Methods, "Online Portal")
	}
	if hardCopyRe.MatchString(text) {
		f.Methods = append(f.Methods, "Hard Copy")
	}

	if f.MaxPages == 0 && f.Font == "" && len(f.FileTypes) == 0 && len(f.Methods) == 0 {
		return nil
	}
	return &f
}
