package strategy

import (
	"reflect"
	"testing"

	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/sequence"
	"github.com/abhisek/pathwise/internal/topicgraph"
)

func strongProfile() *profile.Profile {
	return &profile.Profile{
		StudentID:        "s1",
		OverallScore:     0.9,
		ConsistencyScore: 0.8,
		EngagementLevel:  0.9,
		LearningVelocity: 1.2,
		TopicMastery:     map[string]float64{},
		WeakAreas:        map[string]bool{},
		StrongAreas:      map[string]bool{},
	}
}

func strugglingProfile() *profile.Profile {
	return &profile.Profile{
		StudentID:        "s2",
		OverallScore:     0.45,
		ConsistencyScore: 0.4,
		EngagementLevel:  0.3,
		LearningVelocity: 0.4,
		TopicMastery:     map[string]float64{},
		WeakAreas:        map[string]bool{},
		StrongAreas:      map[string]bool{},
	}
}

func mediumNode() sequence.TopicNode {
	return sequence.TopicNode{
		TopicID:       "linear_equations",
		Name:          "Linear Equations",
		Difficulty:    topicgraph.DifficultyMedium,
		TargetMastery: sequence.DefaultTargetMastery,
		EstimatedDays: 8,
	}
}

func TestAggressive_StrongLearner(t *testing.T) {
	got := Aggressive{}.Adjust(mediumNode(), strongProfile())

	if got.Difficulty != topicgraph.DifficultyHard {
		t.Errorf("difficulty = %v, want Hard", got.Difficulty)
	}
	if got.TargetMastery != 0.85 {
		t.Errorf("target mastery = %g, want 0.85", got.TargetMastery)
	}
	if got.EstimatedDays != 6 {
		t.Errorf("days = %d, want 6 (8 compressed by 0.75)", got.EstimatedDays)
	}
}

func TestAggressive_DaysFloor(t *testing.T) {
	node := mediumNode()
	node.EstimatedDays = 3
	got := Aggressive{}.Adjust(node, strongProfile())
	if got.EstimatedDays != 3 {
		t.Errorf("days = %d, want floor of 3", got.EstimatedDays)
	}
}

func TestAggressive_NoPromotionForAverageLearner(t *testing.T) {
	p := strongProfile()
	p.OverallScore = 0.7
	p.LearningVelocity = 0.9
	got := Aggressive{}.Adjust(mediumNode(), p)

	if got.Difficulty != topicgraph.DifficultyMedium {
		t.Errorf("difficulty = %v, want unchanged Medium", got.Difficulty)
	}
	if got.EstimatedDays != 8 {
		t.Errorf("days = %d, want unchanged 8", got.EstimatedDays)
	}
	if got.TargetMastery != 0.85 {
		t.Errorf("target mastery = %g, aggressive bar applies regardless", got.TargetMastery)
	}
}

func TestConservative(t *testing.T) {
	got := Conservative{}.Adjust(mediumNode(), strugglingProfile())

	if got.Difficulty != topicgraph.DifficultyEasy {
		t.Errorf("difficulty = %v, want Easy", got.Difficulty)
	}
	if got.EstimatedDays != 12 {
		t.Errorf("days = %d, want 12 (8 stretched by 1.5)", got.EstimatedDays)
	}
	if got.TargetMastery != sequence.DefaultTargetMastery {
		t.Errorf("target mastery = %g, non-weak area keeps default", got.TargetMastery)
	}
}

func TestConservative_WeakAreaTargetCap(t *testing.T) {
	node := mediumNode()
	node.IsWeakArea = true
	got := Conservative{}.Adjust(node, strugglingProfile())
	if got.TargetMastery != 0.75 {
		t.Errorf("target mastery = %g, want capped at 0.75", got.TargetMastery)
	}
}

func TestBalanced_PassThrough(t *testing.T) {
	got := Balanced{}.Adjust(mediumNode(), strongProfile())
	if !reflect.DeepEqual(got, mediumNode()) {
		t.Errorf("balanced must not touch a steady learner's node: %+v", got)
	}
}

func TestBalanced_ShakyLearnerTrimsHard(t *testing.T) {
	node := mediumNode()
	node.Difficulty = topicgraph.DifficultyHard
	got := Balanced{}.Adjust(node, strugglingProfile())

	if got.Difficulty != topicgraph.DifficultyMedium {
		t.Errorf("difficulty = %v, want trimmed to Medium", got.Difficulty)
	}
	if got.EstimatedDays != 10 {
		t.Errorf("days = %d, want 10 (8 stretched by 1.2)", got.EstimatedDays)
	}
}

func TestBalanced_ShakyLeavesNonHardAlone(t *testing.T) {
	p := strugglingProfile()
	p.EngagementLevel = 0.6 // only consistency is shaky
	got := Balanced{}.Adjust(mediumNode(), p)
	if got.Difficulty != topicgraph.DifficultyMedium {
		t.Errorf("difficulty = %v, want unchanged Medium", got.Difficulty)
	}
	if got.EstimatedDays != 8 {
		t.Errorf("days = %d, want unchanged 8", got.EstimatedDays)
	}
}

// Across any profile, the three strategies never invert their ordering:
// conservative is never harder or more demanding than balanced, and
// balanced never more than aggressive.
func TestStrategyMonotonicity(t *testing.T) {
	profiles := []*profile.Profile{strongProfile(), strugglingProfile()}
	nodes := []sequence.TopicNode{mediumNode()}

	easy := mediumNode()
	easy.Difficulty = topicgraph.DifficultyEasy
	hard := mediumNode()
	hard.Difficulty = topicgraph.DifficultyHard
	weak := mediumNode()
	weak.IsWeakArea = true
	nodes = append(nodes, easy, hard, weak)

	for _, p := range profiles {
		for _, node := range nodes {
			c := Conservative{}.Adjust(node, p)
			b := Balanced{}.Adjust(node, p)
			a := Aggressive{}.Adjust(node, p)

			if c.Difficulty > b.Difficulty || b.Difficulty > a.Difficulty {
				t.Errorf("difficulty not monotone for %q/%v: %v, %v, %v",
					p.StudentID, node.Difficulty, c.Difficulty, b.Difficulty, a.Difficulty)
			}
			if c.TargetMastery > b.TargetMastery || b.TargetMastery > a.TargetMastery {
				t.Errorf("target mastery not monotone for %q/%v: %g, %g, %g",
					p.StudentID, node.Difficulty, c.TargetMastery, b.TargetMastery, a.TargetMastery)
			}
			if c.EstimatedDays < b.EstimatedDays || b.EstimatedDays < a.EstimatedDays {
				t.Errorf("estimated days not monotone for %q/%v: %d, %d, %d",
					p.StudentID, node.Difficulty, c.EstimatedDays, b.EstimatedDays, a.EstimatedDays)
			}
		}
	}
}

func TestAll_Order(t *testing.T) {
	want := []string{NameConservative, NameBalanced, NameAggressive}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("got %d strategies, want %d", len(all), len(want))
	}
	for i, s := range all {
		if s.Name() != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, s.Name(), want[i])
		}
	}
}

func TestByName(t *testing.T) {
	s, err := ByName("balanced")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name() != NameBalanced {
		t.Errorf("got %q, want balanced", s.Name())
	}

	if _, err := ByName("yolo"); err == nil {
		t.Error("expected error for unknown strategy name")
	}
}
