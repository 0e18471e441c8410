package score

import (
	"math"

	"github.com/fyrsmithlabs/rfpd/internal/rfp"
)

// Config holds coverage scoring knobs.
type Config struct {
	// KeywordBonus is added to the coverage ratio when any keywords are
	// available. Default 0.1.
	KeywordBonus float64 `koanf:"keyword_bonus"`

	// CriticalCategories lists expected categories whose absence triggers
	// the penalty. Empty means no category is critical.
	CriticalCategories []string `koanf:"critical_categories"`

	// CriticalPenalty is subtracted from the coverage ratio per missing
	// critical category. Default 0 (disabled), preserving the plain
	// coverage formula.
	CriticalPenalty float64 `koanf:"critical_penalty"`
}

// DefaultConfig returns scoring defaults.
func DefaultConfig() Config {
	return Config{KeywordBonus: 0.1}
}

// DefaultExpectedCategories is the static expected-category rubric used when
// no reference rubric is supplied.
func DefaultExpectedCategories() []string {
	return []string{
		string(rfp.CategoryEligibility),
		string(rfp.CategoryBudget),
		string(rfp.CategoryTimeline),
		string(rfp.CategoryEvaluation),
		string(rfp.CategoryScopeActivities),
		string(rfp.CategorySubmissionCompliance),
	}
}

// categoryAliases collapses near-synonym category labels into the
// rubric-level labels before comparison. Requirement records arrive from
// external JSON too, so the table covers labels the classifier itself
// never emits (Deliverables, Schedule, Funding).
var categoryAliases = map[rfp.Category]string{
	rfp.CategoryCompliance: string(rfp.CategorySubmissionCompliance),
	rfp.CategorySubmission: string(rfp.CategorySubmissionCompliance),
	rfp.CategoryScope:      string(rfp.CategoryScopeActivities),
	"Deliverables":         string(rfp.CategoryScopeActivities),
	"Schedule":             string(rfp.CategoryTimeline),
	"Funding":              string(rfp.CategoryBudget),
}

// Normalize maps a classifier category onto its rubric-level label.
func Normalize(c rfp.Category) string {
	if alias, ok := categoryAliases[c]; ok {
		return alias
	}
	return string(c)
}

// Scorer computes AccuracyResult views over Requirement sets.
type Scorer struct {
	cfg Config
}

// NewScorer creates a scorer. A zero KeywordBonus disables the keyword
// boost; the config loader is responsible for defaulting an unset bonus.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score compares the categories present across requirements against the
// expected list. A nil expected list uses DefaultExpectedCategories.
//
//	accuracy = round(min(1, present/expected + keywordBonus) * 100)
//
// minus the configured penalty per missing critical category, clamped to
// [0, 100]. Missing categories preserve expected-list order.
func (s *Scorer) Score(requirements []rfp.Requirement, keywords []string, expected []string) rfp.AccuracyResult {
	if len(expected) == 0 {
		expected = DefaultExpectedCategories()
	}

	present := make(map[string]bool, len(requirements))
	for _, r := range requirements {
		present[Normalize(r.Category)] = true
	}

	presentCount := 0
	missing := make([]string, 0, len(expected))
	for _, want := range expected {
		if present[want] {
			presentCount++
		} else {
			missing = append(missing, want)
		}
	}

	ratio := float64(presentCount) / float64(len(expected))
	if len(keywords) > 0 {
		ratio += s.cfg.KeywordBonus
	}
	if ratio > 1 {
		ratio = 1
	}

	if s.cfg.CriticalPenalty > 0 {
		for _, crit := range s.cfg.CriticalCategories {
			if !present[crit] {
				ratio -= s.cfg.CriticalPenalty
			}
		}
		if ratio < 0 {
			ratio = 0
		}
	}

	return rfp.AccuracyResult{
		Accuracy:          int(math.Round(ratio * 100)),
		MissingCategories: missing,
	}
}
