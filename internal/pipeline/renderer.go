package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lance-Yang/semcheck/internal/model"
)

// Renderer writes analysis reports as JSON, Markdown, or a terminal
// summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON to path
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable Markdown report to path
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	title := report.Document.Path
	if title == "" {
		title = "document"
	}
	fmt.Fprintf(&b, "# Consistency Report: %s\n\n", title)
	fmt.Fprintf(&b, "Analyzed: %s\n\n", report.Document.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))

	fmt.Fprintf(&b, "## Document\n\n")
	fmt.Fprintf(&b, "- Characters: %d\n", report.Document.Chars)
	fmt.Fprintf(&b, "- Words: %d\n", report.Document.Words)
	fmt.Fprintf(&b, "- Lines: %d\n", report.Document.Lines)
	fmt.Fprintf(&b, "- Language: %s\n", report.Signals.Language)
	fmt.Fprintf(&b, "- Readability: %.1f / 100\n\n", report.Signals.Readability)

	if len(report.Signals.KeyPhrases) > 0 {
		fmt.Fprintf(&b, "## Key Phrases\n\n")
		for _, kp := range report.Signals.KeyPhrases {
			fmt.Fprintf(&b, "- %s (%.1f)\n", kp.Phrase, kp.Score)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Terms (%d)\n\n", len(report.Terms))
	if len(report.Terms) > 0 {
		b.WriteString("| Term | Category | Frequency | Variants |\n")
		b.WriteString("|------|----------|-----------|----------|\n")
		for _, t := range report.Terms {
			fmt.Fprintf(&b, "| %s | %s | %d | %s |\n",
				t.Term, t.Category, t.Frequency, strings.Join(t.Variants, ", "))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Issues (%d)\n\n", len(report.Issues))
	for _, issue := range report.Issues {
		fmt.Fprintf(&b, "- **%s/%s** (line %d): %s\n",
			issue.Type, issue.Severity, issue.Position.Line, issue.Message)
	}
	if len(report.Issues) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Suggestions (%d)\n\n", len(report.Suggestions))
	for _, s := range report.Suggestions {
		fmt.Fprintf(&b, "- [%s, %.0f%%] %s\n", s.Type, s.Confidence*100, s.Title)
		if s.SuggestedText != "" {
			fmt.Fprintf(&b, "  - Suggested: %s\n", s.SuggestedText)
		}
	}
	if len(report.Suggestions) > 0 {
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("Generated by semcheck. Heuristics only; review before applying.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints a short result summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	name := report.Document.Path
	if name == "" {
		name = "document"
	}
	fmt.Printf("\n%s: %d terms, %d issues, %d suggestions (readability %.1f, language %s)\n",
		name, len(report.Terms), len(report.Issues), len(report.Suggestions),
		report.Signals.Readability, report.Signals.Language)

	for _, issue := range report.Issues {
		fmt.Printf("  [%s/%s] line %d: %s\n",
			issue.Type, issue.Severity, issue.Position.Line, issue.Message)
	}
}
