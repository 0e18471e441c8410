package attrs

import (
	"regexp"

	"github.com/fyrsmithlabs/rfpd/internal/rfp"
)

var (
	moneyRe = regexp.MustCompile(`\$\s?([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{2})?)`)

	capLanguageRe    = regexp.MustCompile(`(?i)not to exceed|maximum|\bcap\b`)
	budgetLanguageRe = regexp.MustCompile(`(?i)total budget|available funding|award amount`)
)

// BudgetCaps finds every dollar amount in the text and classifies the set
// by the qualifying language present: cap language wins over budget
// language, and bare amounts fall back to the generic "amounts" kind.
// Returns nil when the text carries no dollar amounts.
func BudgetCaps(text string) *rfp.BudgetCaps {
	matches := moneyRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, "$"+m[1])
	}

	kind := rfp.BudgetKindAmounts
	switch {
	case capLanguageRe.MatchString(text):
		kind = rfp.BudgetKindCap
	case budgetLanguageRe.MatchString(text):
		kind = rfp.BudgetKindBudget
	}

	return &rfp.BudgetCaps{Type: kind, Values: values}
}
