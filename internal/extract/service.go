package extract

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/rfpd/internal/rfp"
)

// Service is the extraction entry point exposed to collaborators.
type Service struct {
	cfg      Config
	strategy Strategy
	logger   *zap.Logger
	metrics  *Metrics
}

// NewService creates an extraction service with the configured strategy.
// A nil logger disables logging.
func NewService(cfg Config, logger *zap.Logger) (*Service, error) {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	strategy, err := NewStrategy(cfg)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:      cfg,
		strategy: strategy,
		logger:   logger,
		metrics:  NewMetrics(logger),
	}, nil
}

// Extract converts document text into an ordered, non-empty Requirement
// set. Empty or signal-free input degrades to a single placeholder
// Requirement rather than an error; the call never fails.
//
// The context is used for metric recording only; extraction itself is
// bounded CPU work over a string and is not cancellable.
func (s *Service) Extract(ctx context.Context, text string) []rfp.Requirement {
	start := time.Now()
	runID := uuid.NewString()

	reqs := s.strategy.Extract(text)
	placeholder := len(reqs) == 0
	if placeholder {
		reqs = []rfp.Requirement{placeholderRequirement()}
	}

	took := time.Since(start)
	s.metrics.RecordExtraction(ctx, s.strategy.Name(), took, len(reqs), placeholder)
	s.logger.Debug("extraction complete",
		zap.String("run_id", runID),
		zap.String("strategy", s.strategy.Name()),
		zap.Int("requirements", len(reqs)),
		zap.Bool("placeholder", placeholder),
		zap.Duration("took", took),
	)

	return reqs
}

// placeholderRequirement guarantees callers always have at least one record
// to render. This is policy, not an error condition.
func placeholderRequirement() rfp.Requirement {
	return rfp.Requirement{
		ID:               "req-1-1",
		ClauseRef:        "General",
		Title:            "General requirement (placeholder)",
		Category:         rfp.CategoryGeneral,
		Priority:         rfp.PriorityLow,
		TextSnippet:      "No requirement signal detected; review the document and annotate requirements manually.",
		EvidenceRequired: []string{},
		DueDates:         []string{},
		Keywords:         []string{},
		CoverageStatus:   rfp.StatusUncovered,
	}
}
