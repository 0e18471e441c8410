package enrich

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/rfpd/internal/redact"
	"github.com/fyrsmithlabs/rfpd/internal/rfp"
)

// Service drives keyword enrichment around a Generator.
type Service struct {
	cfg    Config
	gen    Generator
	logger *zap.Logger
}

// NewService creates an enrichment service. A nil generator behaves as
// NoOpGenerator; a nil logger disables logging.
func NewService(cfg Config, gen Generator, logger *zap.Logger) *Service {
	if cfg.MaxSummaryChars == 0 {
		cfg.MaxSummaryChars = DefaultConfig().MaxSummaryChars
	}
	if cfg.MaxKeywords == 0 {
		cfg.MaxKeywords = DefaultConfig().MaxKeywords
	}
	if gen == nil {
		gen = NoOpGenerator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, gen: gen, logger: logger}
}

// Keywords generates the document keyword set. Document text is condensed
// and redacted before it reaches the generator, so nothing leaves this call
// unmasked. Generator failure or unavailability yields an empty set, never
// an error: the pipeline's coverage scoring has documented fallbacks.
//
// Callers own timeout and retry policy via ctx.
func (s *Service) Keywords(ctx context.Context, documentText, goalHint string) []string {
	if !s.cfg.Enabled || !s.gen.Available() {
		return nil
	}

	summary := Condense(documentText, s.cfg.MaxSummaryChars)
	redacted := redact.Text(summary)

	raw, err := s.gen.Generate(ctx, redacted, goalHint)
	if err != nil {
		s.logger.Warn("keyword generation failed, continuing without keywords", zap.Error(err))
		return nil
	}

	return normalize(raw, s.cfg.MaxKeywords)
}

// Apply broadcasts one keyword set identically onto every requirement.
// Each record gets its own copy so later mutation of one does not alias
// the others.
func Apply(requirements []rfp.Requirement, keywords []string) {
	for i := range requirements {
		kw := make([]string, len(keywords))
		copy(kw, keywords)
		requirements[i].Keywords = kw
	}
}

// Condense collapses whitespace and bounds the text to maxChars, producing
// the lightweight excerpt handed to the generator.
func Condense(text string, maxChars int) string {
	condensed := strings.Join(strings.Fields(text), " ")
	r := []rune(condensed)
	if len(r) > maxChars {
		return string(r[:maxChars])
	}
	return condensed
}

// normalize lowercases, trims, de-duplicates preserving order, and caps the
// keyword list.
func normalize(raw []string, max int) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, k := range raw {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
		if len(out) == max {
			break
		}
	}
	return out
}
