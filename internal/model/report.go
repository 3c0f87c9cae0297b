package model

import "time"

// Report is the complete output of one document analysis run
type Report struct {
	Document DocumentMeta `json:"document"` // What was analyzed

	Terms       []SemanticTerm     `json:"terms"`       // Canonical terms found
	Issues      []ConsistencyIssue `json:"issues"`      // Detected inconsistencies
	Suggestions []Suggestion       `json:"suggestions"` // Actionable recommendations

	Signals DocumentSignals `json:"signals"` // Document-level diagnostics
}

// DocumentMeta describes the analyzed document
type DocumentMeta struct {
	Path       string    `json:"path,omitempty"` // Source file, empty for in-memory content
	AnalyzedAt time.Time `json:"analyzed_at"`
	Chars      int       `json:"chars"`
	Words      int       `json:"words"`
	Lines      int       `json:"lines"`
}

// DocumentSignals holds whole-document heuristics computed alongside
// the consistency analysis
type DocumentSignals struct {
	Language    string      `json:"language"`    // "en", "zh", or "unknown"
	Readability float64     `json:"readability"` // Simplified Flesch Reading Ease, 0-100
	KeyPhrases  []KeyPhrase `json:"key_phrases,omitempty"`
}

// KeyPhrase is a scored candidate phrase for document summarization
type KeyPhrase struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}
