package nlp

import "strings"

// stopWords is the English stop-word set used for term filtering and
// the language heuristic
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true,
	"at": true, "be": true, "been": true, "but": true, "by": true,
	"for": true, "from": true, "had": true, "has": true, "have": true,
	"he": true, "her": true, "his": true, "if": true, "in": true,
	"into": true, "is": true, "it": true, "its": true, "of": true,
	"on": true, "or": true, "our": true, "she": true, "that": true,
	"the": true, "their": true, "them": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "to": true, "was": true,
	"we": true, "were": true, "which": true, "will": true, "with": true,
	"would": true, "you": true, "your": true,
}

// commonWords penalizes generic vocabulary in key-phrase scoring.
// Everyday words that rarely carry the topic of a phrase.
var commonWords = map[string]bool{
	"about": true, "after": true, "all": true, "also": true, "any": true,
	"because": true, "before": true, "being": true, "between": true,
	"both": true, "can": true, "could": true, "does": true, "doing": true,
	"down": true, "during": true, "each": true, "few": true, "get": true,
	"good": true, "just": true, "like": true, "made": true, "make": true,
	"many": true, "more": true, "most": true, "much": true, "new": true,
	"now": true, "only": true, "other": true, "over": true, "same": true,
	"should": true, "some": true, "such": true, "than": true, "time": true,
	"under": true, "use": true, "used": true, "using": true, "very": true,
	"way": true, "well": true, "when": true, "where": true, "while": true,
}

// IsStopWord reports whether w is an English stop word
func IsStopWord(w string) bool {
	return stopWords[strings.ToLower(w)]
}

// IsCommonWord reports whether w is generic vocabulary
func IsCommonWord(w string) bool {
	return commonWords[strings.ToLower(w)]
}

// AllStopWords reports whether every whitespace-separated word in s is
// a stop word
func AllStopWords(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !IsStopWord(w) {
			return false
		}
	}
	return true
}
