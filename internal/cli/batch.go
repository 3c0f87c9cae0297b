package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lance-Yang/semcheck/internal/pipeline"
	"github.com/lance-Yang/semcheck/internal/worker"
)

var (
	concurrency int
	outputDir   string
)

// documentExtensions are the file types batch mode picks up from a
// directory
var documentExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyze every document in a directory in parallel",
	Long: `Batch analyzes all supported documents under a directory:
- Collects .txt, .md, .html, and .htm files recursively
- Analyzes them in parallel with a configurable worker count
- Writes one JSON and one Markdown report per document

Example:
  semcheck batch ./docs
  semcheck batch ./docs --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./semcheck-reports", "output directory for reports")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the extraction cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().Float64Var(&similarityThreshold, "similarity-threshold", 0.8, "term grouping similarity threshold")
	batchCmd.Flags().IntVar(&minFrequency, "min-frequency", 2, "minimum occurrences for non-technical terms")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	files, err := collectDocuments(dir)
	if err != nil {
		return fmt.Errorf("collect documents: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported documents found under %s", dir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Batch analyzing %d documents with %d workers\n", len(files), concurrency)

	cfg := buildConfig()
	cfg.Concurrency.Workers = concurrency

	pool := worker.NewPool(concurrency)
	pool.Start()

	for _, file := range files {
		file := file
		// One pipeline per job keeps engines (and their caches) isolated
		// across workers.
		pool.Submit(worker.Job{
			Path: file,
			Run: func(ctx context.Context) worker.Result {
				p := pipeline.NewPipeline(cfg)
				report, err := p.AnalyzeFile(file)
				if err != nil {
					return worker.Result{Path: file, Err: err}
				}

				base := reportBaseName(file)
				jsonPath := filepath.Join(outputDir, base+".json")
				mdPath := filepath.Join(outputDir, base+".md")
				if err := p.RenderReport(report, jsonPath, mdPath, false); err != nil {
					return worker.Result{Path: file, Report: report, Err: err}
				}
				return worker.Result{Path: file, Report: report}
			},
		})
	}

	results := pool.Wait()

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, res.Err)
		}
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d analyzed, %d failed, reports in %s\n",
		len(results)-failed, failed, outputDir)

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}

// collectDocuments walks dir and returns every supported document path
func collectDocuments(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if documentExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// reportBaseName derives a report file stem from a document path
func reportBaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
