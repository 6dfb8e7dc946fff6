package pathgen

import (
	"testing"

	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/strategy"
)

func TestRecommendations_OnePerStrategy(t *testing.T) {
	g := newTestGenerator()
	recs, _, err := g.Recommendations(Request{
		StudentID:    "s1",
		TargetTopics: []string{"quadratic_equations"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}

	seen := make(map[string]bool)
	for _, r := range recs {
		seen[r.Path.Strategy] = true
	}
	for _, name := range []string{strategy.NameConservative, strategy.NameBalanced, strategy.NameAggressive} {
		if !seen[name] {
			t.Errorf("no recommendation for strategy %q", name)
		}
	}
}

func TestRecommendations_SortedByConfidence(t *testing.T) {
	g := newTestGenerator()
	records := []profile.ActivityRecord{
		activity("arithmetic", 0.9, 1),
		activity("fractions", 0.6, 2),
		activity("negative_numbers", 0.7, 3),
	}
	recs, _, err := g.Recommendations(Request{
		StudentID:    "s1",
		TargetTopics: []string{"quadratic_equations"},
		Records:      records,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Confidence < recs[i].Confidence {
			t.Errorf("recommendations not sorted: %g before %g", recs[i-1].Confidence, recs[i].Confidence)
		}
	}
}

func TestRecommendations_ConfidenceBounded(t *testing.T) {
	g := newTestGenerator()

	// New student, no evidence: every adjustment goes down, still >= 0.
	recs, _, err := g.Recommendations(Request{
		StudentID:    "fresh",
		TargetTopics: []string{"fractions"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range recs {
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Errorf("confidence %g for %q out of [0, 1]", r.Confidence, r.Path.Strategy)
		}
	}
}

func TestRecommendations_TieKeepsStrategyOrder(t *testing.T) {
	g := newTestGenerator()

	// No activity: all three paths get the identical confidence, so the
	// stable sort must keep the conservative-to-aggressive order.
	recs, _, err := g.Recommendations(Request{
		StudentID:    "fresh",
		TargetTopics: []string{"fractions"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{strategy.NameConservative, strategy.NameBalanced, strategy.NameAggressive}
	for i, r := range recs {
		if r.Path.Strategy != want[i] {
			t.Errorf("recs[%d] = %q, want %q", i, r.Path.Strategy, want[i])
		}
	}
}

func TestRecommendations_ReasoningNonEmpty(t *testing.T) {
	g := newTestGenerator()
	recs, _, err := g.Recommendations(Request{
		StudentID:    "s1",
		TargetTopics: []string{"quadratic_equations"},
		Records: []profile.ActivityRecord{
			activity("arithmetic", 0.4, 1),
			activity("fractions", 0.45, 2),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range recs {
		if r.Reasoning == "" {
			t.Errorf("empty reasoning for strategy %q", r.Path.Strategy)
		}
	}
}

func TestConfidence_EvidenceRaisesIt(t *testing.T) {
	g := newTestGenerator()

	sparse, _, err := g.GeneratePath(Request{
		StudentID:    "s1",
		TargetTopics: []string{"fractions"},
		Strategy:     strategy.NameBalanced,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var records []profile.ActivityRecord
	for i, topic := range []string{"arithmetic", "fractions", "decimals", "negative_numbers", "exponents", "algebra_basics"} {
		records = append(records, activity(topic, 0.7, i+1))
		records = append(records, activity(topic, 0.75, 1))
	}
	rich, _, err := g.GeneratePath(Request{
		StudentID:    "s1",
		TargetTopics: []string{"fractions"},
		Strategy:     strategy.NameBalanced,
		Records:      records,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if confidence(rich) <= confidence(sparse) {
		t.Errorf("rich evidence confidence %g not above sparse %g", confidence(rich), confidence(sparse))
	}
}
