package semantic

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lance-Yang/semcheck/internal/model"
)

func makeTerm(term string, frequency int, positions ...model.Position) model.SemanticTerm {
	return model.SemanticTerm{
		ID:        "test-" + term,
		Term:      term,
		Variants:  []string{term},
		Category:  model.CategoryGeneral,
		Frequency: frequency,
		Positions: positions,
	}
}

func TestDetectTerminology_VariantGroup(t *testing.T) {
	e := newTestEngine(t)

	terms := []model.SemanticTerm{
		makeTerm("frontend", 2,
			model.Position{Start: 0, End: 8, Line: 1, Column: 1},
			model.Position{Start: 50, End: 58, Line: 1, Column: 51}),
		makeTerm("front-end", 1, model.Position{Start: 24, End: 33, Line: 1, Column: 25}),
		makeTerm("front end", 1, model.Position{Start: 70, End: 79, Line: 1, Column: 71}),
	}

	issues := e.detectTerminology(terms)

	require.Len(t, issues, 2, "one issue per non-canonical member occurrence")
	for _, issue := range issues {
		assert.Equal(t, model.IssueTerminology, issue.Type)
		assert.Equal(t, model.SeverityMedium, issue.Severity)
		assert.Equal(t, []string{"frontend"}, issue.Suggestions)
		assert.Contains(t, issue.Message, `"frontend"`)
		assert.Contains(t, issue.RelatedTerms, "frontend")
	}
}

func TestDetectTerminology_CanonicalByFrequency(t *testing.T) {
	e := newTestEngine(t)

	// The later, more frequent member wins the canonical slot.
	terms := []model.SemanticTerm{
		makeTerm("front-end", 1, model.Position{Start: 0, End: 9, Line: 1, Column: 1}),
		makeTerm("frontend", 3,
			model.Position{Start: 20, End: 28, Line: 1, Column: 21},
			model.Position{Start: 40, End: 48, Line: 1, Column: 41},
			model.Position{Start: 60, End: 68, Line: 1, Column: 61}),
	}

	issues := e.detectTerminology(terms)

	require.Len(t, issues, 1)
	assert.Equal(t, []string{"frontend"}, issues[0].Suggestions)
	assert.Contains(t, issues[0].Message, `instead of "front-end"`)
}

func TestDetectTerminology_NoGroups(t *testing.T) {
	e := newTestEngine(t)

	terms := []model.SemanticTerm{
		makeTerm("database", 2, model.Position{Start: 0, End: 8, Line: 1, Column: 1}),
		makeTerm("renderer", 2, model.Position{Start: 20, End: 28, Line: 1, Column: 21}),
	}

	assert.Empty(t, e.detectTerminology(terms))
}

func TestDetectStyle_MixedBullets(t *testing.T) {
	e := newTestEngine(t)

	content := "Intro line\n- first item\n- second item\n1. numbered item\n"
	issues := e.detectStyle(content)

	require.Len(t, issues, 1)
	assert.Equal(t, model.IssueStyle, issues[0].Type)
	assert.Equal(t, model.SeverityLow, issues[0].Severity)
	assert.Equal(t, model.Position{Start: 0, End: 0, Line: 1, Column: 1}, issues[0].Position)
	assert.NotEmpty(t, issues[0].Suggestions)
}

func TestDetectStyle_ConsistentBullets(t *testing.T) {
	e := newTestEngine(t)

	assert.Empty(t, e.detectStyle("- one\n- two\n- three\n"))
	assert.Empty(t, e.detectStyle("1. one\n2. two\n3. three\n"))
	assert.Empty(t, e.detectStyle("# Heading\n\n## Sub\n\nplain prose\n"))
}

func TestDetectStructure_ParagraphBoundary(t *testing.T) {
	e := newTestEngine(t)

	same := "alpha beta gamma delta topics repeat here"
	shifted := "omega psi chi completely unrelated vocabulary"

	// Exactly 5 paragraphs: below the "more than 5" threshold, never flagged.
	five := strings.Join([]string{same, same, same, same, shifted}, "\n\n")
	assert.Empty(t, e.detectStructure(five))

	// 6 paragraphs with one disjoint adjacent pair: exactly one issue.
	six := strings.Join([]string{same, same, same, same, same, shifted}, "\n\n")
	issues := e.detectStructure(six)
	require.Len(t, issues, 1)
	assert.Equal(t, model.IssueStructure, issues[0].Type)
	assert.Equal(t, model.SeverityLow, issues[0].Severity)
	assert.Equal(t, "Potential abrupt topic change detected", issues[0].Message)
	assert.Equal(t, strings.Index(six, "omega"), issues[0].Position.Start)
}

func TestDetectInconsistencies_OrderAndRecovery(t *testing.T) {
	e := newTestEngine(t)

	terms := []model.SemanticTerm{
		makeTerm("front-end", 1, model.Position{Start: 0, End: 9, Line: 1, Column: 1}),
		makeTerm("frontend", 2,
			model.Position{Start: 20, End: 28, Line: 1, Column: 21},
			model.Position{Start: 40, End: 48, Line: 1, Column: 41}),
	}
	content := "- bullet\n1. numbered\n"

	issues := e.DetectInconsistencies(terms, content)

	require.Len(t, issues, 2)
	assert.Equal(t, model.IssueTerminology, issues[0].Type, "terminology issues come first")
	assert.Equal(t, model.IssueStyle, issues[1].Type)
}

func TestDetectInconsistencies_Empty(t *testing.T) {
	e := newTestEngine(t)
	assert.Empty(t, e.DetectInconsistencies(nil, ""))
}

func TestDetectTerminology_MessageFormat(t *testing.T) {
	e := newTestEngine(t)

	terms := []model.SemanticTerm{
		makeTerm("frontend", 2, model.Position{Start: 0, End: 8, Line: 1, Column: 1}),
		makeTerm("front-end", 1, model.Position{Start: 20, End: 29, Line: 1, Column: 21}),
	}

	issues := e.detectTerminology(terms)
	require.Len(t, issues, 1)
	assert.Equal(t,
		fmt.Sprintf("Consider using %q instead of %q for consistency", "frontend", "front-end"),
		issues[0].Message)
}
