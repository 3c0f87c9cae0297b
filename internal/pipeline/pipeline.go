// Package pipeline orchestrates a complete document analysis: ingest,
// term extraction, inconsistency detection, suggestion synthesis, and
// report rendering.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lance-Yang/semcheck/internal/ingest"
	"github.com/lance-Yang/semcheck/internal/model"
	"github.com/lance-Yang/semcheck/internal/nlp"
	"github.com/lance-Yang/semcheck/internal/semantic"
)

// Pipeline runs whole-document analyses and renders their reports
type Pipeline struct {
	engine   *semantic.Engine
	renderer *Renderer
	cfg      *model.Config
	log      *log.Logger
}

// NewPipeline creates a pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	logger := log.Default()
	return &Pipeline{
		engine:   semantic.New(cfg, logger),
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		cfg:      cfg,
		log:      logger,
	}
}

// Analyze runs the full analysis over content. path is recorded in the
// report metadata and may be empty for in-memory content.
func (p *Pipeline) Analyze(path, content string) *model.Report {
	terms := p.engine.ExtractTerms(content)
	issues := p.engine.DetectInconsistencies(terms, content)
	suggestions := p.engine.GenerateSuggestions(issues, terms, content)

	return &model.Report{
		Document: model.DocumentMeta{
			Path:       path,
			AnalyzedAt: time.Now().UTC(),
			Chars:      len(content),
			Words:      len(strings.Fields(content)),
			Lines:      1 + strings.Count(content, "\n"),
		},
		Terms:       terms,
		Issues:      issues,
		Suggestions: suggestions,
		Signals: model.DocumentSignals{
			Language:    nlp.DetectLanguage(content),
			Readability: nlp.CalculateReadability(content),
			KeyPhrases:  nlp.ExtractKeyPhrases(content, p.cfg.Analysis.MaxKeyPhrases),
		},
	}
}

// AnalyzeFile reads a document from disk and analyzes it
func (p *Pipeline) AnalyzeFile(path string) (*model.Report, error) {
	content, err := ingest.ReadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	return p.Analyze(path, content), nil
}

// RenderReport renders the report to the requested outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
