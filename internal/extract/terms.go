// Package extract mines candidate terms from raw document text.
//
// Four independent pattern families run over the same content and their
// matches are pooled before a frequency/technicality filter decides
// which candidates survive. This is deliberately regex-as-grammar: the
// informal, heuristic nature of the problem does not warrant a parser.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lance-Yang/semcheck/internal/model"
	"github.com/lance-Yang/semcheck/internal/nlp"
)

// Candidate is a raw extracted term together with every location it
// occurs at. Positions are occurrence-ordered.
type Candidate struct {
	Term      string
	Positions []model.Position
}

var (
	// Capitalized word followed by 1-3 lowercase words.
	nounPhraseRe = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[a-z]+){1,3}`)

	// Bare acronyms: 2+ consecutive uppercase letters.
	acronymRe = regexp.MustCompile(`\b[A-Z]{2,}\b`)

	// Known technology vocabulary.
	techWordRe = regexp.MustCompile(`(?i)\b(?:https|http|rest|graphql|json|xml|html|css|javascript|typescript|api|sdk|cli|gui|ui|ux)\b`)

	// Words built on technology suffixes ("JavaScript", "microframework").
	techAffixRe = regexp.MustCompile(`(?i)\b[a-z]+(?:script|framework|library|engine|service|component)\b`)

	// One or more consecutive capitalized words.
	properNounRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)

	// Hyphenated compounds.
	hyphenRe = regexp.MustCompile(`\b\w+(?:-\w+)+\b`)

	// Domain prefix followed by one more word.
	domainCompoundRe = regexp.MustCompile(`(?i)\b(?:data|user|system|application|software|web|mobile|cloud|machine|artificial|deep|neural)\s+[a-z]+\b`)
)

// sentenceStarters are capitalized words that open sentences without
// naming anything.
var sentenceStarters = map[string]bool{
	"This": true, "That": true, "These": true, "Those": true,
	"Here": true, "There": true, "When": true, "Where": true,
	"How": true, "Why": true, "The": true,
}

// occurrence is a single raw match before grouping
type occurrence struct {
	term string
	pos  model.Position
}

// TermExtractor scans raw text for candidate terms
type TermExtractor struct {
	minFrequency int
}

// NewTermExtractor creates an extractor. Non-technical candidates need
// at least minFrequency occurrences to survive filtering.
func NewTermExtractor(minFrequency int) *TermExtractor {
	if minFrequency <= 0 {
		minFrequency = 2
	}
	return &TermExtractor{minFrequency: minFrequency}
}

// Extract returns the filtered, deduplicated term candidates of
// content. Empty input yields an empty result; no input can fail.
func (e *TermExtractor) Extract(content string) []Candidate {
	if content == "" {
		return nil
	}

	var raw []occurrence
	raw = append(raw, e.nounPhrases(content)...)
	raw = append(raw, e.technicalTerms(content)...)
	raw = append(raw, e.properNouns(content)...)
	raw = append(raw, e.compoundTerms(content)...)

	return e.filter(raw)
}

func (e *TermExtractor) nounPhrases(content string) []occurrence {
	var out []occurrence
	for _, loc := range nounPhraseRe.FindAllStringIndex(content, -1) {
		match := content[loc[0]:loc[1]]
		if len(match) <= 3 || containsStopWord(match) {
			continue
		}
		out = append(out, occurrence{term: match, pos: PositionAt(content, loc[0], loc[1])})
	}
	return out
}

func (e *TermExtractor) technicalTerms(content string) []occurrence {
	var out []occurrence
	for _, re := range []*regexp.Regexp{acronymRe, techWordRe, techAffixRe} {
		for _, loc := range re.FindAllStringIndex(content, -1) {
			out = append(out, occurrence{
				term: content[loc[0]:loc[1]],
				pos:  PositionAt(content, loc[0], loc[1]),
			})
		}
	}
	return out
}

func (e *TermExtractor) properNouns(content string) []occurrence {
	var out []occurrence
	for _, loc := range properNounRe.FindAllStringIndex(content, -1) {
		match := content[loc[0]:loc[1]]
		if len(match) <= 2 || sentenceStarters[match] {
			continue
		}
		out = append(out, occurrence{term: match, pos: PositionAt(content, loc[0], loc[1])})
	}
	return out
}

func (e *TermExtractor) compoundTerms(content string) []occurrence {
	var out []occurrence
	for _, loc := range hyphenRe.FindAllStringIndex(content, -1) {
		match := content[loc[0]:loc[1]]
		if len(match) <= 4 {
			continue
		}
		out = append(out, occurrence{term: match, pos: PositionAt(content, loc[0], loc[1])})
	}
	for _, loc := range domainCompoundRe.FindAllStringIndex(content, -1) {
		out = append(out, occurrence{
			term: content[loc[0]:loc[1]],
			pos:  PositionAt(content, loc[0], loc[1]),
		})
	}
	return out
}

// filter groups occurrences by raw surface form and applies the
// frequency/technicality rules. Grouping stays case-sensitive here so
// distinct spellings of one concept reach the semantic engine as
// separate candidates and can accrue as variants there. A group
// survives with fewer than minFrequency occurrences only if its term
// is itself technical, so rare acronyms are kept while rare ordinary
// phrases are dropped as noise.
func (e *TermExtractor) filter(raw []occurrence) []Candidate {
	groups := make(map[string][]model.Position)
	var order []string

	for _, occ := range raw {
		key := strings.TrimSpace(occ.term)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], occ.pos)
	}

	var out []Candidate
	for _, key := range order {
		norm := nlp.NormalizeTerm(key)
		if len(norm) < 3 || nlp.AllStopWords(norm) {
			continue
		}
		positions := dedupeSpans(groups[key])
		if len(positions) < e.minFrequency && !IsTechnicalTerm(key) {
			continue
		}
		out = append(out, Candidate{Term: key, Positions: positions})
	}
	return out
}

// IsTechnicalTerm reports whether term matches the acronym, known
// technology vocabulary, or hyphenation patterns.
func IsTechnicalTerm(term string) bool {
	return acronymRe.MatchString(term) ||
		techWordRe.MatchString(term) ||
		techAffixRe.MatchString(term) ||
		hyphenRe.MatchString(term)
}

func containsStopWord(phrase string) bool {
	for _, w := range strings.Fields(phrase) {
		if nlp.IsStopWord(w) {
			return true
		}
	}
	return false
}

// dedupeSpans drops repeated (start,end) spans produced when several
// pattern families match the same text, then orders by start offset.
func dedupeSpans(positions []model.Position) []model.Position {
	seen := make(map[[2]int]bool, len(positions))
	var out []model.Position
	for _, p := range positions {
		span := [2]int{p.Start, p.End}
		if seen[span] {
			continue
		}
		seen[span] = true
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// PositionAt converts a [start,end) offset pair into a full position by
// counting newlines in the preceding text.
func PositionAt(content string, start, end int) model.Position {
	line := 1 + strings.Count(content[:start], "\n")
	column := start + 1
	if idx := strings.LastIndexByte(content[:start], '\n'); idx >= 0 {
		column = start - idx
	}
	return model.Position{Start: start, End: end, Line: line, Column: column}
}
