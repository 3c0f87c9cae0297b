package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

var vowelGroupRe = regexp.MustCompile(`[aeiouy]+`)

// DetectLanguage returns "zh" if the text contains any CJK codepoint,
// "en" if at least 10% of its tokens are English stop words, and
// "unknown" otherwise.
func DetectLanguage(text string) string {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return "zh"
		}
	}

	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return "unknown"
	}
	hits := 0
	for _, t := range tokens {
		if IsStopWord(strings.Trim(t, ".,!?;:\"'()")) {
			hits++
		}
	}
	if float64(hits)/float64(len(tokens)) >= 0.1 {
		return "en"
	}
	return "unknown"
}

// CalculateReadability scores text with a simplified Flesch Reading
// Ease: 206.835 - 1.015*(words/sentence) - 84.6*(syllables/word),
// clamped to [0,100]. Syllables are approximated by vowel groups with a
// minimum of one per word. Returns 0 when there are no sentences or no
// words.
func CalculateReadability(text string) float64 {
	sentences := SplitSentences(text)
	words := strings.Fields(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(len(sentences))) -
		84.6*(float64(syllables)/float64(len(words)))

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func countSyllables(word string) int {
	n := len(vowelGroupRe.FindAllString(strings.ToLower(word), -1))
	if n < 1 {
		return 1
	}
	return n
}
