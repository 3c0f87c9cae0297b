package model

// TermCategory classifies how a term was recognized
type TermCategory string

const (
	CategoryProperNoun TermCategory = "proper_noun" // Consecutive capitalized words (names, products)
	CategoryTechnical  TermCategory = "technical"   // Acronyms and known technology vocabulary
	CategoryCompound   TermCategory = "compound"    // Long multi-word or hyphenated phrases
	CategoryGeneral    TermCategory = "general"     // Everything else
)

// Position locates one occurrence of a term inside the source text
type Position struct {
	Start  int `json:"start"`  // Character offset of the first character
	End    int `json:"end"`    // Character offset one past the last character
	Line   int `json:"line"`   // 1-based line number
	Column int `json:"column"` // 1-based column (characters since last newline + 1)
}

// SemanticTerm is a canonical concept observed in a document.
// Variants collects the distinct raw surface forms that grouped into it.
type SemanticTerm struct {
	ID        string       `json:"id"`
	Term      string       `json:"term"`      // Normalized canonical surface form
	Variants  []string     `json:"variants"`  // Distinct raw forms, first-seen order
	Category  TermCategory `json:"category"`  // Assigned once from the first-seen form
	Context   []string     `json:"context"`   // Snippet around each occurrence, for display
	Frequency int          `json:"frequency"` // Occurrences across all variants
	Positions []Position   `json:"positions"` // One per occurrence, append-only
}
