package extract

import "github.com/fyrsmithlabs/rfpd/internal/rfp"

// Strategy names accepted by Config.Strategy.
const (
	StrategyItems     = "items"
	StrategySentences = "sentences"
)

// Strategy turns raw document text into Requirement records. Implementations
// are pure and side-effect free; an empty result is valid and triggers the
// placeholder policy in Service.Extract.
type Strategy interface {
	// Name identifies the strategy in logs and metrics.
	Name() string

	// Extract produces ordered Requirement records from document text.
	Extract(text string) []rfp.Requirement
}

// Config holds extraction settings.
type Config struct {
	Strategy      string `koanf:"strategy"`        // "items" (default) or "sentences"
	SnippetMaxLen int    `koanf:"snippet_max_len"` // bounded textSnippet length, default 500
	TitleMaxLen   int    `koanf:"title_max_len"`   // derived title length, default 120
}

// DefaultConfig returns the canonical extraction configuration.
func DefaultConfig() Config {
	return Config{
		Strategy:      StrategyItems,
		SnippetMaxLen: 500,
		TitleMaxLen:   120,
	}
}

// withDefaults fills zero values without mutating the receiver.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Strategy == "" {
		c.Strategy = d.Strategy
	}
	if c.SnippetMaxLen == 0 {
		c.SnippetMaxLen = d.SnippetMaxLen
	}
	if c.TitleMaxLen == 0 {
		c.TitleMaxLen = d.TitleMaxLen
	}
	return c
}
