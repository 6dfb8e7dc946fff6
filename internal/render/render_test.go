package render

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/pathwise/internal/milestone"
	"github.com/abhisek/pathwise/internal/pathgen"
	"github.com/abhisek/pathwise/internal/sequence"
	"github.com/abhisek/pathwise/internal/topicgraph"
)

func renderPath() *pathgen.PersonalizedPath {
	nodes := []sequence.TopicNode{
		{TopicID: "arithmetic", Name: "Arithmetic", Difficulty: topicgraph.DifficultyEasy, TargetMastery: 0.8, EstimatedDays: 5},
		{TopicID: "fractions", Name: "Fractions", Difficulty: topicgraph.DifficultyMedium, TargetMastery: 0.8, EstimatedDays: 6, IsWeakArea: true},
		{TopicID: "decimals", Name: "Decimals", Difficulty: topicgraph.DifficultyEasy, TargetMastery: 0.8, EstimatedDays: 5},
		{TopicID: "algebra_basics", Name: "Algebra Basics", Difficulty: topicgraph.DifficultyHard, TargetMastery: 0.8, EstimatedDays: 7},
	}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &pathgen.PersonalizedPath{
		StudentID:             "s1",
		Subject:               "mathematics",
		Strategy:              "balanced",
		Topics:                nodes,
		Milestones:            milestone.Plan(nodes, now),
		EstimatedDurationDays: 30,
		CreatedAt:             now,
	}
}

func TestPath_RendersTopicsAndMilestones(t *testing.T) {
	out := Path(renderPath())

	for _, want := range []string{"Arithmetic", "Fractions", "Decimals", "Algebra Basics"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing topic %q", want)
		}
	}
	for _, want := range []string{"Foundation", "Mastery"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing milestone title %q", want)
		}
	}
	if !strings.Contains(out, "weak area") {
		t.Error("output missing weak-area marker")
	}
	if !strings.Contains(out, "est. 30 days") {
		t.Error("output missing duration summary")
	}
}

func TestPath_Empty(t *testing.T) {
	p := renderPath()
	p.Topics = nil
	p.Milestones = nil
	p.EstimatedDurationDays = 0

	out := Path(p)
	if !strings.Contains(out, "Nothing to learn") {
		t.Errorf("empty path output missing placeholder, got %q", out)
	}
}

func TestRecommendations(t *testing.T) {
	recs := []pathgen.Recommendation{
		{Path: renderPath(), Confidence: 0.9, Reasoning: "Recent scores are steady."},
		{Path: renderPath(), Confidence: 0.7, Reasoning: "The conservative plan trades speed for confidence."},
	}
	out := Recommendations(recs)

	if !strings.Contains(out, "confidence 0.90") || !strings.Contains(out, "confidence 0.70") {
		t.Error("output missing confidence scores")
	}
	if !strings.Contains(out, "Recent scores are steady.") {
		t.Error("output missing reasoning text")
	}
}

func TestMasteryBar(t *testing.T) {
	full := masteryBar(1.0)
	if strings.Count(full, "▰") != masteryBarWidth || strings.Count(full, "▱") != 0 {
		t.Errorf("full bar = %q, want %d filled cells", full, masteryBarWidth)
	}

	empty := masteryBar(0)
	if strings.Count(empty, "▰") != 0 || strings.Count(empty, "▱") != masteryBarWidth {
		t.Errorf("empty bar = %q, want %d unfilled cells", empty, masteryBarWidth)
	}

	// Out-of-range inputs clamp instead of panicking on Repeat.
	if got := masteryBar(1.5); strings.Count(got, "▰") != masteryBarWidth {
		t.Errorf("over-range bar = %q, want clamped full", got)
	}
}
