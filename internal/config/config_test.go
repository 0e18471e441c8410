package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/rfpd/internal/extract"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, extract.StrategyItems, cfg.Extraction.Strategy)
	assert.Equal(t, 500, cfg.Extraction.SnippetMaxLen)
	assert.Equal(t, 120, cfg.Extraction.TitleMaxLen)
	assert.Equal(t, 0.1, cfg.Scoring.KeywordBonus)
	assert.Equal(t, 3000, cfg.Enrichment.MaxSummaryChars)
	assert.Equal(t, 20, cfg.Enrichment.MaxKeywords)
	assert.Equal(t, 5*time.Minute, cfg.Rubric.CacheTTL)
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `
logging:
  level: debug
  format: console
extraction:
  strategy: sentences
  snippet_max_len: 200
scoring:
  keyword_bonus: 0.2
rubric:
  path: /etc/rfpd/rubric.yaml
  cache_ttl: 10m
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, extract.StrategySentences, cfg.Extraction.Strategy)
	assert.Equal(t, 200, cfg.Extraction.SnippetMaxLen)
	assert.Equal(t, 120, cfg.Extraction.TitleMaxLen, "unset fields keep defaults")
	assert.Equal(t, 0.2, cfg.Scoring.KeywordBonus)
	assert.Equal(t, "/etc/rfpd/rubric.yaml", cfg.Rubric.Path)
	assert.Equal(t, 10*time.Minute, cfg.Rubric.CacheTTL)
}

func TestLoad_MissingFileIsSkipped(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, extract.StrategyItems, cfg.Extraction.Strategy)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RFPD_EXTRACTION_STRATEGY", "sentences")
	t.Setenv("RFPD_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, extract.StrategySentences, cfg.Extraction.Strategy)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extraction:\n  strategy: items\n"), 0o644))
	t.Setenv("RFPD_EXTRACTION_STRATEGY", "sentences")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, extract.StrategySentences, cfg.Extraction.Strategy)
}

func TestLoad_ZeroKeywordBonusRespected(t *testing.T) {
	t.Setenv("RFPD_SCORING_KEYWORD_BONUS", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Scoring.KeywordBonus, "explicit zero disables the bonus instead of re-defaulting")
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad strategy", map[string]string{"RFPD_EXTRACTION_STRATEGY": "paragraphs"}},
		{"bad level", map[string]string{"RFPD_LOGGING_LEVEL": "loud"}},
		{"bad format", map[string]string{"RFPD_LOGGING_FORMAT": "xml"}},
		{"bonus out of range", map[string]string{"RFPD_SCORING_KEYWORD_BONUS": "1.5"}},
		{"negative snippet", map[string]string{"RFPD_EXTRACTION_SNIPPET_MAX_LEN": "-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	cfg.Scoring.CriticalPenalty = 2
	assert.Error(t, cfg.Validate())
}
