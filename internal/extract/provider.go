package extract

import "fmt"

// NewStrategy creates an extraction strategy based on configuration.
func NewStrategy(cfg Config) (Strategy, error) {
	cfg = cfg.withDefaults()

	switch cfg.Strategy {
	case StrategyItems:
		return NewItemStrategy(cfg), nil
	case StrategySentences:
		return NewSentenceStrategy(cfg), nil
	default:
		return nil, fmt.Errorf("unknown extraction strategy: %s", cfg.Strategy)
	}
}
