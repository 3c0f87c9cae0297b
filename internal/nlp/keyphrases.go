package nlp

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lance-Yang/semcheck/internal/model"
)

var sentenceEndRe = regexp.MustCompile(`([.!?])(\s+|$)`)

// SplitSentences splits text on sentence terminators
func SplitSentences(text string) []string {
	delimited := sentenceEndRe.ReplaceAllString(text, "$1|")
	var sentences []string
	for _, s := range strings.Split(delimited, "|") {
		if t := strings.TrimSpace(s); t != "" {
			sentences = append(sentences, t)
		}
	}
	return sentences
}

// ExtractKeyPhrases returns the top maxPhrases 2-3 word n-grams of text,
// scored by frequency * length / (1 + common words in the phrase).
// Ties break alphabetically so the result is stable.
func ExtractKeyPhrases(text string, maxPhrases int) []model.KeyPhrase {
	if maxPhrases <= 0 {
		maxPhrases = 10
	}

	counts := make(map[string]int)
	for _, sentence := range SplitSentences(text) {
		tokens := Tokenize(sentence)
		for size := 2; size <= 3; size++ {
			for i := 0; i+size <= len(tokens); i++ {
				phrase := strings.Join(tokens[i:i+size], " ")
				counts[phrase]++
			}
		}
	}

	phrases := make([]model.KeyPhrase, 0, len(counts))
	for phrase, freq := range counts {
		common := 0
		for _, w := range strings.Fields(phrase) {
			if IsCommonWord(w) {
				common++
			}
		}
		score := float64(freq) * float64(len(phrase)) / float64(1+common)
		phrases = append(phrases, model.KeyPhrase{Phrase: phrase, Score: score})
	}

	sort.Slice(phrases, func(i, j int) bool {
		if phrases[i].Score != phrases[j].Score {
			return phrases[i].Score > phrases[j].Score
		}
		return phrases[i].Phrase < phrases[j].Phrase
	})

	if len(phrases) > maxPhrases {
		phrases = phrases[:maxPhrases]
	}
	return phrases
}
