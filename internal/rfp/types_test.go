package rfp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirementJSONShape(t *testing.T) {
	req := Requirement{
		ID:               "req-1-1",
		ClauseRef:        "Eligibility > Item 1",
		Title:            "Be a nonprofit",
		Category:         CategoryEligibility,
		Priority:         PriorityHigh,
		TextSnippet:      "Applicants must be a nonprofit.",
		EvidenceRequired: []string{"IRS letter"},
		BudgetCaps:       &BudgetCaps{Type: BudgetKindCap, Values: []string{"$50,000"}},
		DueDates:         []string{},
		Keywords:         []string{},
		CoverageStatus:   StatusUncovered,
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	for _, key := range []string{
		"id", "clauseRef", "title", "category", "priority", "textSnippet",
		"evidenceRequired", "budgetCaps", "dueDates", "keywords", "coverageStatus",
	} {
		assert.Contains(t, m, key)
	}

	// Absent format is omitted entirely; empty lists render as [], not null.
	assert.NotContains(t, m, "submissionFormat")
	assert.JSONEq(t, `[]`, mustRaw(t, data, "dueDates"))
	assert.JSONEq(t, `[]`, mustRaw(t, data, "keywords"))
}

func mustRaw(t *testing.T, data []byte, key string) string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	return string(m[key])
}
