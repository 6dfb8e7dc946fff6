package pathgen

import (
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/pathwise/internal/milestone"
	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/strategy"
	"github.com/abhisek/pathwise/internal/topicgraph"
)

var genNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestGenerator() *Generator {
	subject, graph := topicgraph.Default()
	g := New(subject, graph)
	g.Clock = func() time.Time { return genNow }
	return g
}

func activity(topic string, score float64, daysAgo int) profile.ActivityRecord {
	return profile.ActivityRecord{
		StudentID:  "s1",
		Subject:    "mathematics",
		Topic:      topic,
		ScoreRatio: score,
		Timestamp:  genNow.AddDate(0, 0, -daysAgo),
	}
}

func TestGeneratePath_UnknownStrategy(t *testing.T) {
	g := newTestGenerator()
	_, _, err := g.GeneratePath(Request{StudentID: "s1", Strategy: "warp-speed"})
	if err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestGeneratePath_EmptyTargets(t *testing.T) {
	g := newTestGenerator()
	path, warnings, err := g.GeneratePath(Request{
		StudentID: "s1",
		Strategy:  strategy.NameBalanced,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(path.Topics) != 0 || len(path.Milestones) != 0 {
		t.Errorf("empty targets must yield an empty path, got %d topics, %d milestones", len(path.Topics), len(path.Milestones))
	}
	if path.EstimatedDurationDays != 0 {
		t.Errorf("duration = %d, want 0", path.EstimatedDurationDays)
	}
	if path.StudentID != "s1" || path.Subject != "mathematics" {
		t.Errorf("path identity fields not set: %+v", path)
	}
}

func TestGeneratePath_NewStudentFullChain(t *testing.T) {
	g := newTestGenerator()
	path, warnings, err := g.GeneratePath(Request{
		StudentID:    "s1",
		TargetTopics: []string{"quadratic_equations"},
		Strategy:     strategy.NameBalanced,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	wantOrder := []string{
		"arithmetic", "negative_numbers", "algebra_basics", "exponents",
		"linear_equations", "polynomials", "factoring", "quadratic_equations",
	}
	if len(path.Topics) != len(wantOrder) {
		t.Fatalf("got %d topics, want %d", len(path.Topics), len(wantOrder))
	}
	for i, want := range wantOrder {
		if path.Topics[i].TopicID != want {
			t.Errorf("topic[%d] = %q, want %q", i, path.Topics[i].TopicID, want)
		}
	}

	// Every prerequisite inside the path precedes its dependent.
	pos := make(map[string]int, len(path.Topics))
	for i, n := range path.Topics {
		pos[n.TopicID] = i
	}
	for _, n := range path.Topics {
		for _, prereq := range n.Prerequisites {
			if pp, ok := pos[prereq]; ok && pp >= pos[n.TopicID] {
				t.Errorf("%q does not precede %q", prereq, n.TopicID)
			}
		}
	}

	if len(path.Milestones) != 3 {
		t.Fatalf("got %d milestones, want 3 for an 8-topic path", len(path.Milestones))
	}
	if path.Milestones[0].Type != milestone.TypeFoundation {
		t.Errorf("first milestone = %q, want foundation", path.Milestones[0].Type)
	}
	if path.Milestones[2].Type != milestone.TypeMastery {
		t.Errorf("last milestone = %q, want mastery", path.Milestones[2].Type)
	}

	if path.EstimatedDurationDays <= 0 {
		t.Errorf("duration = %d, want positive", path.EstimatedDurationDays)
	}
	if !path.CreatedAt.Equal(genNow) {
		t.Errorf("created at = %v, want the injected clock value", path.CreatedAt)
	}
	if path.Strategy != strategy.NameBalanced {
		t.Errorf("strategy = %q, want balanced", path.Strategy)
	}
}

func TestGeneratePath_MasteryPrunesPrerequisites(t *testing.T) {
	g := newTestGenerator()

	// Mastered algebra basics: the linear equations edge (threshold 0.7)
	// is satisfied, so the chain below it never enters the path.
	var records []profile.ActivityRecord
	for i := 0; i < 4; i++ {
		records = append(records, activity("algebra_basics", 0.8, i+1))
	}
	path, _, err := g.GeneratePath(Request{
		StudentID:    "s1",
		TargetTopics: []string{"linear_equations"},
		Strategy:     strategy.NameBalanced,
		Records:      records,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path.Topics) != 1 || path.Topics[0].TopicID != "linear_equations" {
		t.Errorf("topics = %v, want only linear_equations", topicIDs(path))
	}
}

func TestGeneratePath_MaxLengthTruncates(t *testing.T) {
	g := newTestGenerator()
	path, _, err := g.GeneratePath(Request{
		StudentID:    "s1",
		TargetTopics: []string{"quadratic_equations"},
		Strategy:     strategy.NameBalanced,
		MaxLength:    3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path.Topics) != 3 {
		t.Errorf("got %d topics, want 3", len(path.Topics))
	}
	if path.Topics[0].TopicID != "arithmetic" {
		t.Errorf("first topic = %q, the cap must not reorder the head", path.Topics[0].TopicID)
	}
}

func TestGeneratePath_Deterministic(t *testing.T) {
	g := newTestGenerator()
	req := Request{
		StudentID:    "s1",
		TargetTopics: []string{"quadratic_equations", "functions"},
		Strategy:     strategy.NameAggressive,
		Records: []profile.ActivityRecord{
			activity("arithmetic", 0.9, 10),
			activity("fractions", 0.5, 5),
			activity("algebra_basics", 0.65, 2),
		},
	}

	first, _, err := g.GeneratePath(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _, err := g.GeneratePath(req)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced a different path", i)
		}
	}
}

func topicIDs(path *PersonalizedPath) []string {
	ids := make([]string, len(path.Topics))
	for i, n := range path.Topics {
		ids[i] = n.TopicID
	}
	return ids
}
