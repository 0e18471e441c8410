// Package config provides configuration loading for rfpd.
//
// Configuration is loaded from a YAML file, then overridden by RFPD_*
// environment variables, then backfilled with defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/fyrsmithlabs/rfpd/internal/enrich"
	"github.com/fyrsmithlabs/rfpd/internal/extract"
	"github.com/fyrsmithlabs/rfpd/internal/logging"
	"github.com/fyrsmithlabs/rfpd/internal/score"
)

const envPrefix = "RFPD_"

// RubricConfig points the scorer at an optional reference rubric file.
type RubricConfig struct {
	Path     string        `koanf:"path"`
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// Config is the complete rfpd configuration.
type Config struct {
	Logging    logging.Config `koanf:"logging"`
	Extraction extract.Config `koanf:"extraction"`
	Scoring    score.Config   `koanf:"scoring"`
	Enrichment enrich.Config  `koanf:"enrichment"`
	Rubric     RubricConfig   `koanf:"rubric"`
}

// Load reads configuration from the YAML file at configPath (skipped when
// empty or absent), applies RFPD_* environment overrides, fills defaults
// and validates.
//
// Environment variables map section-first, e.g.:
//
//	RFPD_EXTRACTION_STRATEGY  -> extraction.strategy
//	RFPD_SCORING_KEYWORD_BONUS -> scoring.keyword_bonus
//	RFPD_LOGGING_LEVEL        -> logging.level
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		} else if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// RFPD_SCORING_KEYWORD_BONUS -> scoring.keyword_bonus:
		// split on the first underscore only, sections have no underscores.
		lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		parts := strings.SplitN(lower, "_", 2)
		if len(parts) == 1 {
			return lower
		}
		return parts[0] + "." + parts[1]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg, k)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config, k *koanf.Koanf) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Extraction.Strategy == "" {
		cfg.Extraction.Strategy = extract.StrategyItems
	}
	if cfg.Extraction.SnippetMaxLen == 0 {
		cfg.Extraction.SnippetMaxLen = extract.DefaultConfig().SnippetMaxLen
	}
	if cfg.Extraction.TitleMaxLen == 0 {
		cfg.Extraction.TitleMaxLen = extract.DefaultConfig().TitleMaxLen
	}
	// Zero is a legal bonus (explicitly disabling the boost), so the
	// default applies only when no source set the key at all.
	if !k.Exists("scoring.keyword_bonus") {
		cfg.Scoring.KeywordBonus = score.DefaultConfig().KeywordBonus
	}
	if cfg.Enrichment.MaxSummaryChars == 0 {
		cfg.Enrichment.MaxSummaryChars = enrich.DefaultConfig().MaxSummaryChars
	}
	if cfg.Enrichment.MaxKeywords == 0 {
		cfg.Enrichment.MaxKeywords = enrich.DefaultConfig().MaxKeywords
	}
	if cfg.Rubric.CacheTTL == 0 {
		cfg.Rubric.CacheTTL = 5 * time.Minute
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	switch c.Extraction.Strategy {
	case extract.StrategyItems, extract.StrategySentences:
	default:
		return fmt.Errorf("invalid extraction strategy: %s", c.Extraction.Strategy)
	}
	if c.Extraction.SnippetMaxLen < 1 {
		return fmt.Errorf("snippet_max_len must be positive, got %d", c.Extraction.SnippetMaxLen)
	}
	if c.Scoring.KeywordBonus < 0 || c.Scoring.KeywordBonus > 1 {
		return fmt.Errorf("keyword_bonus must be in [0, 1], got %v", c.Scoring.KeywordBonus)
	}
	if c.Scoring.CriticalPenalty < 0 || c.Scoring.CriticalPenalty > 1 {
		return fmt.Errorf("critical_penalty must be in [0, 1], got %v", c.Scoring.CriticalPenalty)
	}
	return nil
}
