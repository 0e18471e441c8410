package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fyrsmithlabs/rfpd/internal/classify"
	"github.com/fyrsmithlabs/rfpd/internal/rfp"
	"github.com/fyrsmithlabs/rfpd/internal/segment"
)

// modalVerbRe marks requirement-bearing sentences.
var modalVerbRe = regexp.MustCompile(`(?i)\b(?:must|shall|required|need to|is required to|will)\b`)

// minSentenceLen filters fragments produced by abbreviation periods.
const minSentenceLen = 10

// SentenceStrategy is the alternate modal-verb splitter: one Requirement
// per requirement-bearing sentence. When a section yields no such sentence
// but still carries a category signal, a single soft requirement covers the
// whole section.
type SentenceStrategy struct {
	cfg Config
}

// NewSentenceStrategy creates the sentence-based extraction strategy.
func NewSentenceStrategy(cfg Config) *SentenceStrategy {
	return &SentenceStrategy{cfg: cfg.withDefaults()}
}

// Name implements Strategy.
func (s *SentenceStrategy) Name() string { return StrategySentences }

// Extract implements Strategy.
func (s *SentenceStrategy) Extract(text string) []rfp.Requirement {
	var reqs []rfp.Requirement

	for si, sec := range segment.DetectSections(text) {
		content := strings.Join(sec.Content, "\n")
		shared := sectionAttributes(sec.Title, content)

		item := 0
		for _, sentence := range splitSentences(content) {
			if !modalVerbRe.MatchString(sentence) {
				continue
			}
			reqs = append(reqs, newRequirement(
				reqID(si, item),
				fmt.Sprintf("%s > Item %d", sec.Title, item+1),
				truncate(firstLine(sentence), s.cfg.TitleMaxLen),
				classify.Priority(sentence),
				truncate(sentence, s.cfg.SnippetMaxLen),
				shared,
			))
			item++
		}

		if item == 0 && shared.hasSignal() {
			snippet := truncate(content, s.cfg.SnippetMaxLen)
			reqs = append(reqs, newRequirement(
				reqID(si, 0),
				sec.Title,
				truncate(sec.Title, s.cfg.TitleMaxLen),
				classify.Priority(snippet),
				snippet,
				shared,
			))
		}
	}

	return reqs
}

// splitSentences breaks text at ./!/? boundaries, dropping fragments
// shorter than minSentenceLen.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			sentence := strings.TrimSpace(current.String())
			if len(sentence) >= minSentenceLen {
				sentences = append(sentences, sentence)
				current.Reset()
			}
		}
	}
	if trailing := strings.TrimSpace(current.String()); len(trailing) >= minSentenceLen {
		sentences = append(sentences, trailing)
	}

	return sentences
}

var _ Strategy = (*SentenceStrategy)(nil)
