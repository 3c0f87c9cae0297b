package semantic

import (
	"github.com/google/uuid"

	"github.com/lance-Yang/semcheck/internal/model"
)

// GenerateSuggestions derives one Suggestion from each issue that
// carries at least one candidate suggestion string; issues without
// candidates are silently skipped. content is the document the issues
// were detected in and is used to recover the original text at each
// issue position; passing "" leaves OriginalText empty.
func (e *Engine) GenerateSuggestions(issues []model.ConsistencyIssue, terms []model.SemanticTerm, content string) (suggestions []model.Suggestion) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("suggestion generation failed", "panic", r)
			suggestions = nil
		}
	}()

	for _, issue := range issues {
		if len(issue.Suggestions) == 0 {
			continue
		}

		sType := model.SuggestionRestructure
		if issue.Type == model.IssueTerminology {
			sType = model.SuggestionReplace
		}

		suggestions = append(suggestions, model.Suggestion{
			ID:            uuid.NewString(),
			Type:          sType,
			Title:         issue.Message,
			Description:   "Suggestion based on " + string(issue.Type) + " analysis",
			OriginalText:  textAt(content, issue.Position),
			SuggestedText: issue.Suggestions[0],
			Confidence:    confidenceFor(issue.Severity),
			Source:        model.SourceSemantic,
		})
	}
	return suggestions
}

func confidenceFor(severity model.IssueSeverity) float64 {
	switch severity {
	case model.SeverityHigh:
		return 0.9
	case model.SeverityMedium:
		return 0.7
	default:
		return 0.5
	}
}

// textAt slices content at a position, best-effort: out-of-range or
// inverted bounds yield an empty string.
func textAt(content string, pos model.Position) string {
	if content == "" || pos.Start < 0 || pos.End > len(content) || pos.Start >= pos.End {
		return ""
	}
	return content[pos.Start:pos.End]
}
