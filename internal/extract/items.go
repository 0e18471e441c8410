package extract

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/rfpd/internal/attrs"
	"github.com/fyrsmithlabs/rfpd/internal/classify"
	"github.com/fyrsmithlabs/rfpd/internal/rfp"
	"github.com/fyrsmithlabs/rfpd/internal/segment"
)

// ItemStrategy is the canonical item-based splitter: one Requirement per
// clause item, whole-section fallback when a section carries no list
// markers.
type ItemStrategy struct {
	cfg Config
}

// NewItemStrategy creates the item-based extraction strategy.
func NewItemStrategy(cfg Config) *ItemStrategy {
	return &ItemStrategy{cfg: cfg.withDefaults()}
}

// Name implements Strategy.
func (s *ItemStrategy) Name() string { return StrategyItems }

// Extract implements Strategy.
func (s *ItemStrategy) Extract(text string) []rfp.Requirement {
	var reqs []rfp.Requirement

	for si, sec := range segment.DetectSections(text) {
		content := strings.Join(sec.Content, "\n")
		shared := sectionAttributes(sec.Title, content)

		clauses := segment.SplitClauses(sec)
		if len(clauses) == 0 {
			snippet := truncate(content, s.cfg.SnippetMaxLen)
			reqs = append(reqs, newRequirement(
				reqID(si, 0),
				sec.Title,
				truncate(sec.Title, s.cfg.TitleMaxLen),
				classify.Priority(snippet),
				snippet,
				shared,
			))
			continue
		}

		for _, cl := range clauses {
			reqs = append(reqs, newRequirement(
				reqID(si, cl.Index),
				fmt.Sprintf("%s > Item %d", sec.Title, cl.Index+1),
				truncate(firstLine(cl.RawText), s.cfg.TitleMaxLen),
				classify.Priority(cl.RawText),
				truncate(cl.RawText, s.cfg.SnippetMaxLen),
				shared,
			))
		}
	}

	return reqs
}

// sectionAttrs carries the once-per-section attribute values that are
// bulk-applied to every clause Requirement of that section.
type sectionAttrs struct {
	category rfp.Category
	evidence []string
	format   *rfp.SubmissionFormat
	caps     *rfp.BudgetCaps
	dates    []string
}

func sectionAttributes(title, content string) sectionAttrs {
	return sectionAttrs{
		category: classify.SectionCategory(title, content),
		evidence: attrs.Evidence(content),
		format:   attrs.SubmissionFormat(content),
		caps:     attrs.BudgetCaps(content),
		dates:    attrs.DueDates(content),
	}
}

// hasSignal reports whether any category-specific attribute was detected.
func (a sectionAttrs) hasSignal() bool {
	return a.category != rfp.CategoryGeneral ||
		len(a.evidence) > 0 || a.format != nil || a.caps != nil || len(a.dates) > 0
}

func newRequirement(id, clauseRef, title string, priority rfp.Priority, snippet string, a sectionAttrs) rfp.Requirement {
	return rfp.Requirement{
		ID:               id,
		ClauseRef:        clauseRef,
		Title:            title,
		Category:         a.category,
		Priority:         priority,
		TextSnippet:      snippet,
		EvidenceRequired: orEmpty(a.evidence),
		SubmissionFormat: a.format,
		BudgetCaps:       a.caps,
		DueDates:         orEmpty(a.dates),
		Keywords:         []string{},
		CoverageStatus:   rfp.StatusUncovered,
	}
}

// reqID builds the deterministic requirement identifier
// req-{sectionIndex+1}-{itemIndex+1}.
func reqID(sectionIndex, itemIndex int) string {
	return fmt.Sprintf("req-%d-%d", sectionIndex+1, itemIndex+1)
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}

// truncate bounds a string to max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func orEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

var _ Strategy = (*ItemStrategy)(nil)
