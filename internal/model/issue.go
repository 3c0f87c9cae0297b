package model

// IssueType classifies the kind of inconsistency detected
type IssueType string

const (
	IssueTerminology IssueType = "terminology" // Competing surface forms of one concept
	IssueStyle       IssueType = "style"       // Formatting drift (bullet styles, headings)
	IssueStructure   IssueType = "structure"   // Abrupt topic changes between paragraphs
	IssueLogic       IssueType = "logic"       // Reserved for contradiction detection
)

// IssueSeverity indicates how strongly an issue should be surfaced
type IssueSeverity string

const (
	SeverityLow    IssueSeverity = "low"
	SeverityMedium IssueSeverity = "medium"
	SeverityHigh   IssueSeverity = "high"
)

// ConsistencyIssue is a detected problem in one document.
// Issues are immutable once created; the caller either derives a
// Suggestion from one or discards it.
type ConsistencyIssue struct {
	ID           string        `json:"id"`
	Type         IssueType     `json:"type"`
	Severity     IssueSeverity `json:"severity"`
	Message      string        `json:"message"`
	Position     Position      `json:"position"`
	Suggestions  []string      `json:"suggestions"`             // Candidate replacement/action strings
	RelatedTerms []string      `json:"related_terms,omitempty"` // Term strings involved
}

// SuggestionType classifies the action a suggestion proposes
type SuggestionType string

const (
	SuggestionReplace     SuggestionType = "replace"
	SuggestionRestructure SuggestionType = "restructure"
	SuggestionClarify     SuggestionType = "clarify"
	SuggestionEnhance     SuggestionType = "enhance"
)

// SuggestionSource records which subsystem produced a suggestion
type SuggestionSource string

const (
	SourceSemantic SuggestionSource = "semantic"
	SourceAI       SuggestionSource = "ai"
	SourceUser     SuggestionSource = "user"
)

// Suggestion is an actionable recommendation derived from an issue.
// Confidence is in [0,1] and maps from the originating issue severity.
type Suggestion struct {
	ID            string           `json:"id"`
	Type          SuggestionType   `json:"type"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	OriginalText  string           `json:"original_text"`
	SuggestedText string           `json:"suggested_text"`
	Confidence    float64          `json:"confidence"`
	Source        SuggestionSource `json:"source"`
}
