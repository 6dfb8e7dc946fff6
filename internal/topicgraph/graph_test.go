package topicgraph

import (
	"testing"
)

func testGraph() *Graph {
	topics := []Topic{
		{ID: "a", Name: "Topic A"},
		{ID: "b", Name: "Topic B"},
		{ID: "c", Name: "Topic C"},
		{ID: "d", Name: "Topic D"},
	}
	edges := []Prerequisite{
		{TopicID: "b", PrerequisiteID: "a"},
		{TopicID: "c", PrerequisiteID: "a", MasteryThreshold: 0.5},
		{TopicID: "d", PrerequisiteID: "b"},
		{TopicID: "d", PrerequisiteID: "c", Weight: 2.0},
	}
	return New(topics, edges)
}

func TestGetTopic_Exists(t *testing.T) {
	g := testGraph()
	topic, err := g.GetTopic("b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topic.Name != "Topic B" {
		t.Errorf("got name %q, want %q", topic.Name, "Topic B")
	}
}

func TestGetTopic_NotFound(t *testing.T) {
	g := testGraph()
	if _, err := g.GetTopic("nonexistent"); err == nil {
		t.Fatal("expected error for nonexistent topic, got nil")
	}
}

func TestPrerequisites_DefaultsApplied(t *testing.T) {
	g := testGraph()

	prereqs := g.Prerequisites("b")
	if len(prereqs) != 1 {
		t.Fatalf("got %d prerequisites, want 1", len(prereqs))
	}
	if prereqs[0].MasteryThreshold != DefaultMasteryThreshold {
		t.Errorf("threshold = %g, want default %g", prereqs[0].MasteryThreshold, DefaultMasteryThreshold)
	}
	if prereqs[0].Weight != DefaultWeight {
		t.Errorf("weight = %g, want default %g", prereqs[0].Weight, DefaultWeight)
	}

	// Explicit values survive.
	cPrereqs := g.Prerequisites("c")
	if cPrereqs[0].MasteryThreshold != 0.5 {
		t.Errorf("explicit threshold = %g, want 0.5", cPrereqs[0].MasteryThreshold)
	}
}

func TestDependents_Sorted(t *testing.T) {
	g := testGraph()
	deps := g.Dependents("a")
	want := []string{"b", "c"}
	if len(deps) != len(want) {
		t.Fatalf("got %d dependents, want %d", len(deps), len(want))
	}
	for i := range want {
		if deps[i] != want[i] {
			t.Errorf("dependents[%d] = %q, want %q", i, deps[i], want[i])
		}
	}
}

func TestRoots(t *testing.T) {
	g := testGraph()
	roots := g.Roots()
	if len(roots) != 1 || roots[0] != "a" {
		t.Errorf("roots = %v, want [a]", roots)
	}
}

func TestTopicName_Fallback(t *testing.T) {
	g := testGraph()
	if got := g.TopicName("a"); got != "Topic A" {
		t.Errorf("TopicName(a) = %q, want %q", got, "Topic A")
	}
	if got := g.TopicName("unknown"); got != "unknown" {
		t.Errorf("TopicName(unknown) = %q, want ID fallback", got)
	}
}

func TestDifficulty_PromoteDemote(t *testing.T) {
	tests := []struct {
		name string
		in   Difficulty
		op   func(Difficulty) Difficulty
		want Difficulty
	}{
		{"demote hard", DifficultyHard, Difficulty.Demote, DifficultyMedium},
		{"demote medium", DifficultyMedium, Difficulty.Demote, DifficultyEasy},
		{"demote easy stays", DifficultyEasy, Difficulty.Demote, DifficultyEasy},
		{"promote easy", DifficultyEasy, Difficulty.Promote, DifficultyMedium},
		{"promote medium", DifficultyMedium, Difficulty.Promote, DifficultyHard},
		{"promote hard stays", DifficultyHard, Difficulty.Promote, DifficultyHard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(tt.in); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultGraph_Valid(t *testing.T) {
	subject, g := Default()
	if subject != "mathematics" {
		t.Errorf("subject = %q, want mathematics", subject)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("built-in graph failed validation: %v", err)
	}
}
