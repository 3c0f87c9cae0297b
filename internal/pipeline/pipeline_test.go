package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lance-Yang/semcheck/internal/model"
)

const sampleDoc = `The front-end team owns the rendering layer.

- first bullet
1. numbered bullet

We use the API for the api layer and the Api client.
`

func TestPipeline_Analyze_Empty(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())

	report := p.Analyze("", "")

	require.NotNil(t, report)
	assert.Empty(t, report.Terms)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Suggestions)
	assert.Equal(t, "unknown", report.Signals.Language)
	assert.Zero(t, report.Signals.Readability)
	assert.Zero(t, report.Document.Chars)
}

func TestPipeline_Analyze_Document(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())

	report := p.Analyze("sample.md", sampleDoc)

	require.NotNil(t, report)
	assert.Equal(t, "sample.md", report.Document.Path)
	assert.NotEmpty(t, report.Terms, "expected terms from a technical document")
	assert.Equal(t, "en", report.Signals.Language)

	// Mixed bullet styles must surface as a style issue with a
	// derived suggestion.
	styleIssues := 0
	for _, issue := range report.Issues {
		if issue.Type == model.IssueStyle {
			styleIssues++
		}
	}
	assert.Equal(t, 1, styleIssues)
	assert.NotEmpty(t, report.Suggestions)
}

func TestPipeline_AnalyzeFile_And_Render(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "sample.md")
	require.NoError(t, os.WriteFile(docPath, []byte(sampleDoc), 0o644))

	p := NewPipeline(model.DefaultConfig())
	report, err := p.AnalyzeFile(docPath)
	require.NoError(t, err)

	jsonPath := filepath.Join(dir, "report.json")
	mdPath := filepath.Join(dir, "report.md")
	require.NoError(t, p.RenderReport(report, jsonPath, mdPath, false))

	// JSON round-trips into a report with the same counts.
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded model.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Terms, len(report.Terms))
	assert.Len(t, decoded.Issues, len(report.Issues))

	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	text := string(md)
	assert.True(t, strings.HasPrefix(text, "# Consistency Report:"))
	assert.Contains(t, text, "## Terms")
	assert.Contains(t, text, "## Issues")
	assert.Contains(t, text, "## Suggestions")
}

func TestPipeline_AnalyzeFile_Missing(t *testing.T) {
	p := NewPipeline(model.DefaultConfig())
	_, err := p.AnalyzeFile(filepath.Join(t.TempDir(), "absent.md"))
	assert.Error(t, err)
}
