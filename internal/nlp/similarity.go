package nlp

import (
	"regexp"
	"strings"
)

var tokenCleanRe = regexp.MustCompile(`[^a-z0-9\s-]`)

// Tokenize lowercases text, strips punctuation, and returns the words
// longer than 2 characters.
func Tokenize(text string) []string {
	cleaned := tokenCleanRe.ReplaceAllString(strings.ToLower(text), "")
	var tokens []string
	for _, f := range strings.Fields(cleaned) {
		if len(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// CalculateSimilarity returns the Jaccard similarity of the word sets
// of two texts: |intersection| / |union|. Used to spot abrupt topic
// shifts between adjacent paragraphs.
func CalculateSimilarity(text1, text2 string) float64 {
	set1 := tokenSet(text1)
	set2 := tokenSet(text2)

	union := make(map[string]bool, len(set1)+len(set2))
	intersection := 0
	for w := range set1 {
		union[w] = true
		if set2[w] {
			intersection++
		}
	}
	for w := range set2 {
		union[w] = true
	}

	if len(union) == 0 {
		return 0
	}
	return float64(intersection) / float64(len(union))
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range Tokenize(text) {
		set[t] = true
	}
	return set
}
