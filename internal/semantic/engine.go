// Package semantic turns raw document text into canonical terms,
// consistency issues, and actionable suggestions.
//
// The engine is stateless across calls except for its extraction
// cache, which is keyed by a content fingerprint and invisible to
// callers. All three public operations degrade to empty results on
// internal failure; an analysis error must never take the caller down.
package semantic

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lance-Yang/semcheck/internal/cache"
	"github.com/lance-Yang/semcheck/internal/extract"
	"github.com/lance-Yang/semcheck/internal/model"
	"github.com/lance-Yang/semcheck/internal/nlp"
)

// termSource abstracts the underlying extractor so tests can observe
// and stub extraction.
type termSource interface {
	Extract(content string) []extract.Candidate
}

// Engine runs the semantic consistency analysis
type Engine struct {
	source termSource
	cache  *cache.TermCache // nil when caching is disabled
	cfg    *model.Config
	log    *log.Logger
}

// New creates an engine with the given configuration. A nil logger
// falls back to the default logger.
func New(cfg *model.Config, logger *log.Logger) *Engine {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{
		source: extract.NewTermExtractor(cfg.Analysis.MinTermFrequency),
		cfg:    cfg,
		log:    logger,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewTermCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}
	return e
}

// ExtractTerms extracts and consolidates the canonical terms of
// content. Results are memoized per content fingerprint, so repeated
// calls with identical content skip extraction entirely.
func (e *Engine) ExtractTerms(content string) (terms []model.SemanticTerm) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("term extraction failed", "panic", r)
			terms = nil
		}
	}()

	var key string
	if e.cache != nil {
		key = cache.Key(content)
		if cached, ok := e.cache.Get(key); ok {
			return cached
		}
	}

	terms = e.consolidate(e.source.Extract(content), content)

	if e.cache != nil {
		e.cache.Set(key, terms)
	}
	return terms
}

// consolidate folds raw candidates into SemanticTerm records. Within
// one pass every distinct normalized term maps to exactly one record;
// similarity-based grouping across records happens later in the
// terminology detector.
func (e *Engine) consolidate(candidates []extract.Candidate, content string) []model.SemanticTerm {
	index := make(map[string]int, len(candidates))
	var terms []model.SemanticTerm

	for _, cand := range candidates {
		key := nlp.NormalizeTerm(cand.Term)

		if i, ok := index[key]; ok {
			t := &terms[i]
			t.Frequency += len(cand.Positions)
			t.Positions = append(t.Positions, cand.Positions...)
			if !containsString(t.Variants, cand.Term) {
				t.Variants = append(t.Variants, cand.Term)
			}
			for _, p := range cand.Positions {
				t.Context = append(t.Context, e.contextSnippet(content, p))
			}
			continue
		}

		term := model.SemanticTerm{
			ID:        uuid.NewString(),
			Term:      key,
			Variants:  []string{cand.Term},
			Category:  classifyTerm(cand.Term),
			Frequency: len(cand.Positions),
			Positions: cand.Positions,
		}
		for _, p := range cand.Positions {
			term.Context = append(term.Context, e.contextSnippet(content, p))
		}
		index[key] = len(terms)
		terms = append(terms, term)
	}
	return terms
}

var (
	// Consecutive capitalized words, nothing else.
	properNounShapeRe = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*$`)

	// The API/UI/HTML vocabulary family.
	techFamilyRe = regexp.MustCompile(`(?i)\b(?:api|sdk|cli|gui|ui|ux|html|css|json|xml|http)\b`)
)

// classifyTerm assigns a category from the first-seen surface form.
// Applied once at term creation and never re-evaluated.
func classifyTerm(term string) model.TermCategory {
	switch {
	case properNounShapeRe.MatchString(term):
		return model.CategoryProperNoun
	case techFamilyRe.MatchString(term):
		return model.CategoryTechnical
	case len(term) > 15:
		return model.CategoryCompound
	default:
		return model.CategoryGeneral
	}
}

// contextSnippet slices the source line around an occurrence, keeping
// ContextRadius characters on each side.
func (e *Engine) contextSnippet(content string, pos model.Position) string {
	if pos.Start < 0 || pos.Start >= len(content) {
		return ""
	}

	lineStart := 0
	if idx := strings.LastIndexByte(content[:pos.Start], '\n'); idx >= 0 {
		lineStart = idx + 1
	}
	lineEnd := len(content)
	if idx := strings.IndexByte(content[pos.Start:], '\n'); idx >= 0 {
		lineEnd = pos.Start + idx
	}

	radius := e.cfg.Analysis.ContextRadius
	lo := pos.Start - radius
	if lo < lineStart {
		lo = lineStart
	}
	hi := pos.End + radius
	if hi > lineEnd {
		hi = lineEnd
	}
	if hi < lo {
		hi = lo
	}
	return content[lo:hi]
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
