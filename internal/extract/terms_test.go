package extract

import (
	"strings"
	"testing"

	"github.com/lance-Yang/semcheck/internal/nlp"
)

func findCandidate(cands []Candidate, term string) *Candidate {
	for i := range cands {
		if cands[i].Term == term {
			return &cands[i]
		}
	}
	return nil
}

func TestTermExtractor_FrequencyFilter(t *testing.T) {
	extractor := NewTermExtractor(2)

	// One occurrence of a non-technical phrase: dropped as noise.
	once := "Planning depends on Quality metrics. Nothing else repeats."
	for _, c := range extractor.Extract(once) {
		if nlp.NormalizeTerm(c.Term) == "quality metrics" {
			t.Errorf("single-occurrence phrase should be filtered, got %+v", c)
		}
	}

	// Two occurrences: kept with both positions.
	twice := "Planning depends on Quality metrics. Budgets depend on Quality metrics."
	cand := findCandidate(extractor.Extract(twice), "Quality metrics")
	if cand == nil {
		t.Fatal("expected 'Quality metrics' to survive with two occurrences")
	}
	if len(cand.Positions) != 2 {
		t.Errorf("expected 2 positions, got %d", len(cand.Positions))
	}
}

func TestTermExtractor_TechnicalSurvivesSingleOccurrence(t *testing.T) {
	extractor := NewTermExtractor(2)

	cands := extractor.Extract("Our HTTP layer uses a well-tested parser.")

	if cand := findCandidate(cands, "HTTP"); cand == nil {
		t.Error("expected single-occurrence acronym 'HTTP' to be kept")
	}
	if cand := findCandidate(cands, "well-tested"); cand == nil {
		t.Error("expected single-occurrence hyphenated term 'well-tested' to be kept")
	}

	// Ordinary capitalized words with one occurrence stay out.
	if cand := findCandidate(cands, "Our"); cand != nil {
		t.Errorf("did not expect 'Our' to survive, got %+v", cand)
	}
}

func TestTermExtractor_CaseVariantsStaySeparate(t *testing.T) {
	extractor := NewTermExtractor(2)

	cands := extractor.Extract("We use the API for the api layer and the Api client.")

	for _, want := range []string{"API", "api", "Api"} {
		cand := findCandidate(cands, want)
		if cand == nil {
			t.Errorf("expected candidate %q", want)
			continue
		}
		if len(cand.Positions) != 1 {
			t.Errorf("candidate %q: expected 1 position, got %d", want, len(cand.Positions))
		}
	}
}

func TestTermExtractor_OverlappingFamiliesDeduplicated(t *testing.T) {
	extractor := NewTermExtractor(2)

	// "JSON" matches both the acronym pattern and the known-word list;
	// the shared span must be counted once.
	cands := extractor.Extract("Responses are JSON encoded.")
	cand := findCandidate(cands, "JSON")
	if cand == nil {
		t.Fatal("expected candidate 'JSON'")
	}
	if len(cand.Positions) != 1 {
		t.Errorf("expected 1 deduplicated position, got %d", len(cand.Positions))
	}
}

func TestTermExtractor_PositionMapping(t *testing.T) {
	content := "alpha\nbeta API gamma\n"
	extractor := NewTermExtractor(2)

	cand := findCandidate(extractor.Extract(content), "API")
	if cand == nil {
		t.Fatal("expected candidate 'API'")
	}

	pos := cand.Positions[0]
	if pos.Start != strings.Index(content, "API") {
		t.Errorf("start = %d, want %d", pos.Start, strings.Index(content, "API"))
	}
	if pos.End != pos.Start+len("API") {
		t.Errorf("end = %d, want %d", pos.End, pos.Start+len("API"))
	}
	if pos.Line != 2 {
		t.Errorf("line = %d, want 2", pos.Line)
	}
	if pos.Column != 6 {
		t.Errorf("column = %d, want 6", pos.Column)
	}
}

func TestTermExtractor_StopWordGroupsDropped(t *testing.T) {
	extractor := NewTermExtractor(2)

	// "The" style sentence starters and stop-word-only groups never
	// become candidates no matter how often they repeat.
	cands := extractor.Extract("This and that. This and that. This and that.")
	for _, c := range cands {
		if nlp.AllStopWords(nlp.NormalizeTerm(c.Term)) {
			t.Errorf("stop-word-only candidate survived: %+v", c)
		}
	}
}

func TestTermExtractor_Empty(t *testing.T) {
	extractor := NewTermExtractor(2)
	if cands := extractor.Extract(""); len(cands) != 0 {
		t.Errorf("expected no candidates for empty input, got %d", len(cands))
	}
}
