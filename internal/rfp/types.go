package rfp

// Category is the closed set of requirement categories. Classifier rules
// emit the base labels; the coverage scorer folds near-synonyms into the
// rubric-level labels (see the scorer's alias table).
type Category string

const (
	CategoryEligibility Category = "Eligibility"
	CategoryBudget      Category = "Budget"
	CategoryTimeline    Category = "Timeline"
	CategoryEvaluation  Category = "Evaluation"
	CategoryCompliance  Category = "Compliance"
	CategoryScope       Category = "Scope"
	CategorySubmission  Category = "Submission"
	CategoryContact     Category = "Contact"
	CategoryGeneral     Category = "General"

	// Rubric-level labels used by reference rubrics and the coverage scorer.
	CategoryScopeActivities        Category = "Scope & Activities"
	CategorySubmissionCompliance   Category = "Submission & Compliance"
	CategoryOrganizationalCapacity Category = "Organizational Capacity"
	CategoryOutcomesImpact         Category = "Outcomes & Impact"
	CategoryRiskMitigation         Category = "Risk & Mitigation"
	CategoryExecutiveSummary       Category = "Executive Summary"
	CategoryGoalsObjectives        Category = "Goals & Objectives"
)

// Priority is the requirement priority lexicon. The alternate
// must/should/nice lexicon maps onto it one-to-one
// (must=high, should=medium, nice=low).
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// CoverageStatus tracks how well a downstream proposal draft addresses a
// requirement. The extraction core always emits StatusUncovered; only the
// proposal-generation collaborator advances it.
type CoverageStatus string

const (
	StatusUncovered CoverageStatus = "uncovered"
	StatusPartial   CoverageStatus = "partial"
	StatusCovered   CoverageStatus = "covered"
)

// Budget cap kinds, in detection precedence order.
const (
	BudgetKindCap     = "cap"     // "not to exceed", "maximum", "cap"
	BudgetKindBudget  = "budget"  // "total budget", "available funding", "award amount"
	BudgetKindAmounts = "amounts" // dollar amounts with no qualifying language
)

// BudgetCaps holds the dollar amounts found in a section, classified by the
// qualifying language around them. Values keep the string form found in the
// source text (e.g. "$1,200.00"); no numeric normalization is performed.
type BudgetCaps struct {
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

// SubmissionFormat holds structured submission constraints detected in a
// section. A nil *SubmissionFormat means no format signal was found.
type SubmissionFormat struct {
	MaxPages  int      `json:"maxPages,omitempty"`
	Font      string   `json:"font,omitempty"` // e.g. ">=12pt"
	FileTypes []string `json:"fileTypes,omitempty"`
	Methods   []string `json:"methods,omitempty"`
}

// Requirement is the canonical output record of one extracted requirement.
//
// IDs follow req-{sectionIndex+1}-{itemIndex+1} and are deterministic and
// unique for a given input text. Evidence, submission format, budget caps
// and due dates are computed once per section and copied onto every
// clause-level Requirement from that section; priority is per clause.
type Requirement struct {
	ID               string            `json:"id"`
	ClauseRef        string            `json:"clauseRef"`
	Title            string            `json:"title"`
	Category         Category          `json:"category"`
	Priority         Priority          `json:"priority"`
	TextSnippet      string            `json:"textSnippet"`
	EvidenceRequired []string          `json:"evidenceRequired"`
	SubmissionFormat *SubmissionFormat `json:"submissionFormat,omitempty"`
	BudgetCaps       *BudgetCaps       `json:"budgetCaps,omitempty"`
	DueDates         []string          `json:"dueDates"`
	Keywords         []string          `json:"keywords"`
	CoverageStatus   CoverageStatus    `json:"coverageStatus"`
}

// AccuracyResult is the derived coverage view over a Requirement set. It is
// a heuristic category-coverage gauge, not a quality score, and has no
// independent lifecycle: recompute it whenever the Requirement set or the
// available keyword set changes.
type AccuracyResult struct {
	Accuracy          int      `json:"accuracy"` // 0-100
	MissingCategories []string `json:"missingCategories"`
}
