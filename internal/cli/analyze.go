package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lance-Yang/semcheck/internal/model"
	"github.com/lance-Yang/semcheck/internal/pipeline"
)

var (
	outJSON             string
	outMD               string
	noCache             bool
	noFooter            bool
	similarityThreshold float64
	minFrequency        int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single document for semantic consistency",
	Long: `Analyze extracts the terms a document is built around, groups
variant spellings of the same concept, detects terminology, style, and
structure inconsistencies, and derives replacement suggestions.

Supports plain text, Markdown, and HTML input.

Example:
  semcheck analyze README.md
  semcheck analyze notes.txt --json report.json --md report.md
  semcheck analyze page.html --similarity-threshold 0.85`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Analysis flags
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the extraction cache")
	analyzeCmd.Flags().Float64Var(&similarityThreshold, "similarity-threshold", 0.8, "term grouping similarity threshold")
	analyzeCmd.Flags().IntVar(&minFrequency, "min-frequency", 2, "minimum occurrences for non-technical terms")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	file := args[0]

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", file)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := buildConfig()

	p := pipeline.NewPipeline(cfg)
	report, err := p.AnalyzeFile(file)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", file, err)
	}

	return p.RenderReport(report, outJSON, outMD, verbose)
}

// buildConfig layers the analyze flags over the defaults
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Analysis.SimilarityThreshold = similarityThreshold
	cfg.Analysis.MinTermFrequency = minFrequency
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	return cfg
}
