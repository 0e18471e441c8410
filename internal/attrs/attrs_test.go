package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/rfpd/internal/rfp"
)

func TestEvidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "501c3 status",
			text: "Applicants must be a 501(c)(3) nonprofit.",
			want: []string{"IRS letter"},
		},
		{
			name: "irs determination letter",
			text: "Attach your IRS determination letter.",
			want: []string{"IRS letter"},
		},
		{
			name: "tax exempt wording",
			text: "Proof of tax-exempt status is required.",
			want: []string{"IRS letter"},
		},
		{
			name: "support letters and resumes",
			text: "Include two letters of support and resumes for key staff.",
			want: []string{"letters of support", "resumes"},
		},
		{
			name: "budget narrative",
			text: "A detailed budget narrative is required.",
			want: []string{"budget worksheet"},
		},
		{
			name: "references map to past performance",
			text: "Provide three references from prior clients.",
			want: []string{"past performance"},
		},
		{
			name: "no evidence",
			text: "The program serves rural communities.",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evidence(tt.text))
		})
	}
}

func TestEvidence_VocabularyOrder(t *testing.T) {
	// Input order is resumes-then-501(c)(3); output follows vocabulary order.
	got := Evidence("Submit resumes along with your 501(c)(3) letter.")
	assert.Equal(t, []string{"IRS letter", "resumes"}, got)
}

func TestBudgetCaps(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *rfp.BudgetCaps
	}{
		{
			name: "cap language",
			text: "Total project costs not to exceed $50,000.",
			want: &rfp.BudgetCaps{Type: rfp.BudgetKindCap, Values: []string{"$50,000"}},
		},
		{
			name: "budget language",
			text: "Total budget for this program is $1,250,000.",
			want: &rfp.BudgetCaps{Type: rfp.BudgetKindBudget, Values: []string{"$1,250,000"}},
		},
		{
			name: "bare amounts",
			text: "Grants of $5,000 and $10,000 are offered.",
			want: &rfp.BudgetCaps{Type: rfp.BudgetKindAmounts, Values: []string{"$5,000", "$10,000"}},
		},
		{
			name: "cents and space after dollar sign",
			text: "A maximum of $ 1,500.00 per participant.",
			want: &rfp.BudgetCaps{Type: rfp.BudgetKindCap, Values: []string{"$1,500.00"}},
		},
		{
			name: "no amounts",
			text: "Funding is available, see the maximum award schedule.",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BudgetCaps(tt.text))
		})
	}
}

func TestBudgetCaps_CapLanguageWinsOverBudgetLanguage(t *testing.T) {
	got := BudgetCaps("Total budget not to exceed $75,000.")
	require.NotNil(t, got)
	assert.Equal(t, rfp.BudgetKindCap, got.Type)
}

func TestDueDates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "long month form",
			text: "Proposals are due March 15, 2026 by 5pm.",
			want: []string{"March 15, 2026"},
		},
		{
			name: "abbreviated month",
			text: "Award notification by Sept 1, 2026.",
			want: []string{"Sept 1, 2026"},
		},
		{
			name: "slash form",
			text: "Deadline: 3/15/2026.",
			want: []string{"3/15/2026"},
		},
		{
			name: "iso form",
			text: "Submit by 2026-03-15 at noon.",
			want: []string{"2026-03-15"},
		},
		{
			name: "multiple dates in order",
			text: "Open January 5, 2026, close 2/28/26.",
			want: []string{"January 5, 2026", "2/28/26"},
		},
		{
			name: "no dates",
			text: "A rolling deadline applies.",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DueDates(tt.text))
		})
	}
}

func TestSubmissionFormat(t *testing.T) {
	t.Run("full signal", func(t *testing.T) {
		got := SubmissionFormat(
			"Proposals must be no more than 10 pages, in a font of at least 12pt, submitted as PDF via the online portal.")
		require.NotNil(t, got)
		assert.Equal(t, 10, got.MaxPages)
		assert.Equal(t, ">=12pt", got.Font)
		assert.Equal(t, []string{"PDF"}, got.FileTypes)
		assert.Equal(t, []string{"Online Portal"}, got.Methods)
	})

	t.Run("word documents by mail", func(t *testing.T) {
		got := SubmissionFormat("Submit Word documents, postmarked by the deadline.")
		require.NotNil(t, got)
		assert.Equal(t, 0, got.MaxPages)
		assert.Equal(t, []string{"DOCX"}, got.FileTypes)
		assert.Equal(t, []string{"Hard Copy"}, got.Methods)
	})

	t.Run("maximum pages phrasing", func(t *testing.T) {
		got := SubmissionFormat("A maximum 5 pages narrative is allowed.")
		require.NotNil(t, got)
		assert.Equal(t, 5, got.MaxPages)
	})

	t.Run("no signal", func(t *testing.T) {
		assert.Nil(t, SubmissionFormat("Describe your project goals."))
	})
}
