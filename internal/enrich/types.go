package enrich

import "context"

// Generator produces keyword suggestions from an already-redacted document
// summary. Implementations wrap external LLM services and may fail or be
// unavailable; the pipeline functions with an empty keyword set.
type Generator interface {
	// Generate returns keyword suggestions for the redacted summary.
	Generate(ctx context.Context, redactedSummary, goalHint string) ([]string, error)

	// Available returns true if the generator is configured and ready.
	Available() bool
}

// Config holds enrichment settings.
type Config struct {
	Enabled bool `koanf:"enabled"`

	// MaxSummaryChars bounds the condensed excerpt handed to the
	// generator. Default 3000.
	MaxSummaryChars int `koanf:"max_summary_chars"`

	// MaxKeywords caps the normalized keyword set. Default 20.
	MaxKeywords int `koanf:"max_keywords"`
}

// DefaultConfig returns enrichment defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		MaxSummaryChars: 3000,
		MaxKeywords:     20,
	}
}

// NoOpGenerator is the disabled-generator placeholder.
type NoOpGenerator struct{}

// Generate returns no keywords.
func (NoOpGenerator) Generate(ctx context.Context, redactedSummary, goalHint string) ([]string, error) {
	return nil, nil
}

// Available returns false.
func (NoOpGenerator) Available() bool { return false }

var _ Generator = NoOpGenerator{}
