package semantic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/lance-Yang/semcheck/internal/extract"
	"github.com/lance-Yang/semcheck/internal/model"
	"github.com/lance-Yang/semcheck/internal/nlp"
)

// DetectInconsistencies runs the terminology, style, and structure
// detectors over the term set and raw content, in that order.
func (e *Engine) DetectInconsistencies(terms []model.SemanticTerm, content string) (issues []model.ConsistencyIssue) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("inconsistency detection failed", "panic", r)
			issues = nil
		}
	}()

	issues = append(issues, e.detectTerminology(terms)...)
	issues = append(issues, e.detectStyle(content)...)
	issues = append(issues, e.detectStructure(content)...)
	return issues
}

// detectTerminology partitions terms into similarity groups with a
// greedy single pass: each ungrouped term seeds a group and absorbs
// every later ungrouped term similar to it. The grouping is
// order-dependent and not transitive; that matches the one-pass
// strategy downstream behavior depends on, so it is kept rather than
// replaced with a union-find.
func (e *Engine) detectTerminology(terms []model.SemanticTerm) []model.ConsistencyIssue {
	threshold := e.cfg.Analysis.SimilarityThreshold
	processed := make(map[int]bool, len(terms))
	var issues []model.ConsistencyIssue

	for i := range terms {
		if processed[i] {
			continue
		}
		group := []int{i}
		processed[i] = true
		for j := i + 1; j < len(terms); j++ {
			if processed[j] {
				continue
			}
			if nlp.AreTermsSimilar(terms[i].Term, terms[j].Term, threshold) {
				group = append(group, j)
				processed[j] = true
			}
		}
		if len(group) < 2 {
			continue
		}

		canonical := group[0]
		for _, idx := range group[1:] {
			if terms[idx].Frequency > terms[canonical].Frequency {
				canonical = idx
			}
		}

		for _, idx := range group {
			if idx == canonical {
				continue
			}
			for _, pos := range terms[idx].Positions {
				issues = append(issues, model.ConsistencyIssue{
					ID:       uuid.NewString(),
					Type:     model.IssueTerminology,
					Severity: model.SeverityMedium,
					Message: fmt.Sprintf("Consider using %q instead of %q for consistency",
						terms[canonical].Term, terms[idx].Term),
					Position:     pos,
					Suggestions:  []string{terms[canonical].Term},
					RelatedTerms: []string{terms[canonical].Term, terms[idx].Term},
				})
			}
		}
	}
	return issues
}

var (
	dashBulletRe   = regexp.MustCompile(`^\s*[-*+]\s+`)
	numberBulletRe = regexp.MustCompile(`^\s*\d+\.\s+`)
	headingRe      = regexp.MustCompile(`^(#{1,6})\s`)
)

// detectStyle scans line-by-line for formatting drift. Currently only
// mixed list bullet styles produce an issue; heading levels are
// tracked but not yet reported.
func (e *Engine) detectStyle(content string) []model.ConsistencyIssue {
	bulletStyles := make(map[string]bool)
	headingLevels := make(map[int]bool)

	for _, line := range strings.Split(content, "\n") {
		switch {
		case dashBulletRe.MatchString(line):
			bulletStyles["bullet"] = true
		case numberBulletRe.MatchString(line):
			bulletStyles["numbered"] = true
		}
		if m := headingRe.FindStringSubmatch(line); m != nil {
			headingLevels[len(m[1])] = true
		}
	}
	_ = headingLevels // heading-level consistency: tracked, no issue emitted yet

	if len(bulletStyles) < 2 {
		return nil
	}
	return []model.ConsistencyIssue{{
		ID:          uuid.NewString(),
		Type:        model.IssueStyle,
		Severity:    model.SeverityLow,
		Message:     "Inconsistent list bullet styles detected",
		Position:    model.Position{Start: 0, End: 0, Line: 1, Column: 1},
		Suggestions: []string{"Use a consistent bullet style throughout the document"},
	}}
}

var blankLineRe = regexp.MustCompile(`\n[ \t]*\n`)

type paragraph struct {
	text  string
	start int
}

// detectStructure flags abrupt topic changes: in documents with more
// than ParagraphThreshold paragraphs, any paragraph sharing less than
// TopicShiftThreshold word overlap with its predecessor is reported.
func (e *Engine) detectStructure(content string) []model.ConsistencyIssue {
	paragraphs := splitParagraphs(content)
	if len(paragraphs) <= e.cfg.Analysis.ParagraphThreshold {
		return nil
	}

	var issues []model.ConsistencyIssue
	for i := 1; i < len(paragraphs); i++ {
		sim := nlp.CalculateSimilarity(paragraphs[i-1].text, paragraphs[i].text)
		if sim >= e.cfg.Analysis.TopicShiftThreshold {
			continue
		}
		issues = append(issues, model.ConsistencyIssue{
			ID:          uuid.NewString(),
			Type:        model.IssueStructure,
			Severity:    model.SeverityLow,
			Message:     "Potential abrupt topic change detected",
			Position:    extract.PositionAt(content, paragraphs[i].start, paragraphs[i].start),
			Suggestions: []string{"Consider adding a transition sentence"},
		})
	}
	return issues
}

// splitParagraphs splits content on blank lines, keeping each
// paragraph's start offset. Whitespace-only segments are skipped.
func splitParagraphs(content string) []paragraph {
	var paragraphs []paragraph
	start := 0
	seps := blankLineRe.FindAllStringIndex(content, -1)

	flush := func(from, to int) {
		text := content[from:to]
		if strings.TrimSpace(text) == "" {
			return
		}
		paragraphs = append(paragraphs, paragraph{text: text, start: from})
	}

	for _, sep := range seps {
		flush(start, sep[0])
		start = sep[1]
	}
	flush(start, len(content))
	return paragraphs
}
