// Package nlp provides the string and text heuristics the semantic
// engine is built on: term normalization, similarity measures,
// key-phrase scoring, and language/readability estimates.
//
// All functions are pure and deterministic for a given input.
package nlp

import (
	"regexp"
	"strings"

	"github.com/hbollon/go-edlib"
)

// DefaultSimilarityThreshold is the grouping threshold used when the
// caller has no configured value.
const DefaultSimilarityThreshold = 0.8

var (
	// Everything that is not a letter, digit, whitespace or hyphen.
	// Hyphens survive normalization so compound terms keep their shape.
	punctRe      = regexp.MustCompile(`[^\p{L}\p{N}\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeTerm canonicalizes a term for grouping: lowercase, strip
// punctuation except hyphens, collapse whitespace, trim. Idempotent.
func NormalizeTerm(term string) string {
	s := strings.ToLower(term)
	s = punctRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// LevenshteinDistance returns the edit distance between a and b with
// unit costs for insertion, deletion and substitution.
func LevenshteinDistance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// CalculateStringSimilarity returns 1 - levenshtein(a,b)/max(len(a),len(b)),
// so 1 means identical and 0 means nothing in common. Two empty strings
// are identical.
func CalculateStringSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(sim)
}

// AreTermsSimilar reports whether a and b likely denote the same
// concept: identical normalized forms, recognized spelling variations
// (hyphenation, plural), or normalized similarity at or above threshold.
func AreTermsSimilar(a, b string, threshold float64) bool {
	na, nb := NormalizeTerm(a), NormalizeTerm(b)
	if na == nb {
		return true
	}
	if isVariation(a, b, na, nb) {
		return true
	}
	return CalculateStringSimilarity(na, nb) >= threshold
}

// isVariation checks the common ways one term is respelled as another:
// hyphen dropped ("front-end"/"frontend"), hyphen as space
// ("front-end"/"front end"), a trailing plural s, or pure case change.
func isVariation(a, b, na, nb string) bool {
	if strings.ReplaceAll(na, "-", "") == strings.ReplaceAll(nb, "-", "") {
		return true
	}
	if strings.ReplaceAll(na, "-", " ") == strings.ReplaceAll(nb, "-", " ") {
		return true
	}
	if singularize(na) == singularize(nb) {
		return true
	}
	return strings.ToLower(a) == strings.ToLower(b)
}

// singularize strips a single trailing "s". Naive on purpose; the
// similarity fallback handles irregular plurals well enough.
func singularize(s string) string {
	if len(s) > 3 && strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss") {
		return s[:len(s)-1]
	}
	return s
}
