// Package main implements the rfpd CLI for running the RFP
// requirement-extraction pipeline against local files or stdin.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/rfpd/internal/config"
	"github.com/fyrsmithlabs/rfpd/internal/enrich"
	"github.com/fyrsmithlabs/rfpd/internal/extract"
	"github.com/fyrsmithlabs/rfpd/internal/logging"
	"github.com/fyrsmithlabs/rfpd/internal/redact"
	"github.com/fyrsmithlabs/rfpd/internal/rfp"
	"github.com/fyrsmithlabs/rfpd/internal/rubric"
	"github.com/fyrsmithlabs/rfpd/internal/score"
)

var (
	configPath string
	rubricPath string
	keywords   []string
	strategy   string
	withScore  bool

	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rfpd",
	Short: "RFP requirement extraction pipeline",
	Long: `rfpd converts unstructured RFP text into structured, categorized
requirement records with derived metadata (priority, evidence, budget caps,
due dates) and a category-coverage accuracy score.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	parseCmd.Flags().StringVar(&strategy, "strategy", "", "extraction strategy: items or sentences")
	parseCmd.Flags().BoolVar(&withScore, "score", false, "include the coverage accuracy result")
	parseCmd.Flags().StringVar(&rubricPath, "rubric", "", "path to a YAML reference rubric")
	parseCmd.Flags().StringSliceVar(&keywords, "keywords", nil, "keywords to apply to scoring")

	scoreCmd.Flags().StringVar(&rubricPath, "rubric", "", "path to a YAML reference rubric")
	scoreCmd.Flags().StringSliceVar(&keywords, "keywords", nil, "keywords to apply to scoring")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(redactCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract requirements from RFP text",
	Long: `Extract requirement records from an RFP text file or stdin.

Examples:
  # Parse a file
  rfpd parse rfp.txt

  # Parse stdin and include the coverage score
  cat rfp.txt | rfpd parse --score -

  # Score against a reference rubric
  rfpd parse --score --rubric rubric.yaml rfp.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score a requirements JSON file for category coverage",
	Long: `Compute the coverage accuracy of previously extracted requirements.
The input is a JSON array of requirement records as produced by "rfpd parse".

Examples:
  rfpd parse rfp.txt > reqs.json
  rfpd score --keywords health,education reqs.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

var redactCmd = &cobra.Command{
	Use:   "redact [file]",
	Short: "Mask PII-like tokens in text",
	Long: `Apply the redaction filter to a text file or stdin. Use this to
inspect exactly what an external enrichment service would receive.

Examples:
  rfpd redact rfp.txt
  cat rfp.txt | rfpd redact -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRedact,
}

// parseOutput is the combined parse result when --score is set.
type parseOutput struct {
	Requirements []rfp.Requirement  `json:"requirements"`
	Accuracy     rfp.AccuracyResult `json:"accuracy"`
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if strategy != "" {
		cfg.Extraction.Strategy = strategy
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	svc, err := extract.NewService(cfg.Extraction, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	reqs := svc.Extract(ctx, text)

	// Keyword enrichment runs behind its Generator boundary; without a
	// configured generator the --keywords flag supplies the set.
	enricher := enrich.NewService(cfg.Enrichment, nil, logger)
	kw := enricher.Keywords(ctx, text, "")
	if len(kw) == 0 {
		kw = keywords
	}
	enrich.Apply(reqs, kw)

	if !withScore {
		return printJSON(cmd.OutOrStdout(), reqs)
	}

	accuracy, err := scoreRequirements(cfg, logger, reqs, kw)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), parseOutput{Requirements: reqs, Accuracy: accuracy})
}

func runScore(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	var reqs []rfp.Requirement
	if err := json.Unmarshal([]byte(input), &reqs); err != nil {
		return fmt.Errorf("failed to parse requirements JSON: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	accuracy, err := scoreRequirements(cfg, logger, reqs, keywords)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), accuracy)
}

func runRedact(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), redact.Text(text))
	return err
}

// scoreRequirements runs the coverage scorer, using the rubric from the
// --rubric flag or the configured rubric path when present. The rubric is
// read through a TTL cache so embedders calling this path repeatedly
// control reload policy; the CLI makes a single Get. A rubric that fails
// to load is logged and skipped; scoring falls back to the default
// expected categories.
func scoreRequirements(cfg *config.Config, logger *zap.Logger, reqs []rfp.Requirement, kw []string) (rfp.AccuracyResult, error) {
	var expected []string

	path := rubricPath
	if path == "" {
		path = cfg.Rubric.Path
	}
	if path != "" {
		cache := rubric.NewCache(cfg.Rubric.CacheTTL, func() (*rubric.Rubric, error) {
			return rubric.LoadFile(path)
		})
		r, err := cache.Get()
		if err != nil {
			logger.Warn("failed to load rubric, using default expected categories", zap.Error(err))
		} else {
			expected = r.Keys()
		}
	}

	scorer := score.NewScorer(cfg.Scoring)
	return scorer.Score(reqs, kw, expected), nil
}

// readInput reads from the named file, or stdin when the argument is
// missing or "-".
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func printJSON(w io.Writer, v any) error {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err := fmt.Fprint(w, buf.String())
	return err
}
