package profile

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/pathwise/internal/topicgraph"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func rec(topic string, score float64, daysAgo int) ActivityRecord {
	return ActivityRecord{
		StudentID:  "s1",
		Subject:    "mathematics",
		Topic:      topic,
		ScoreRatio: score,
		Timestamp:  testNow.AddDate(0, 0, -daysAgo),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuild_NoRecords_DefaultProfile(t *testing.T) {
	p := Build("s1", "mathematics", nil, testNow)
	if p.StudentID != "s1" {
		t.Errorf("student ID = %q, want s1", p.StudentID)
	}
	if p.OverallScore != 0.5 {
		t.Errorf("overall score = %g, want 0.5", p.OverallScore)
	}
	if p.PreferredDifficulty != topicgraph.DifficultyEasy {
		t.Errorf("preferred difficulty = %v, want Easy", p.PreferredDifficulty)
	}
	if len(p.TopicMastery) != 0 || len(p.WeakAreas) != 0 || len(p.StrongAreas) != 0 {
		t.Error("default profile must have empty topic maps")
	}
}

func TestBuild_FiltersSubjectAndWindow(t *testing.T) {
	records := []ActivityRecord{
		rec("fractions", 0.9, 2),
		{StudentID: "s1", Subject: "physics", Topic: "optics", ScoreRatio: 0.1, Timestamp: testNow.AddDate(0, 0, -1)},
		rec("fractions", 0.1, 45), // outside the 30-day window
		{StudentID: "s1", Subject: "mathematics", Topic: "fractions", ScoreRatio: 0.2, Timestamp: testNow.Add(time.Hour)}, // future
	}
	p := Build("s1", "mathematics", records, testNow)
	if !almostEqual(p.OverallScore, 0.9) {
		t.Errorf("overall score = %g, want 0.9 (only one usable record)", p.OverallScore)
	}
	if len(p.TopicMastery) != 1 {
		t.Errorf("topic mastery = %v, want only fractions", p.TopicMastery)
	}
}

func TestBuild_TopicMasteryAndBands(t *testing.T) {
	records := []ActivityRecord{
		rec("fractions", 0.9, 1),
		rec("fractions", 0.7, 2),
		rec("decimals", 0.5, 3),
		rec("decimals", 0.5, 4),
		rec("algebra_basics", 0.7, 5),
	}
	p := Build("s1", "mathematics", records, testNow)

	if !almostEqual(p.TopicMastery["fractions"], 0.8) {
		t.Errorf("fractions mastery = %g, want 0.8", p.TopicMastery["fractions"])
	}
	if !p.StrongAreas["fractions"] {
		t.Error("fractions at 0.8 must be a strong area")
	}
	if !p.WeakAreas["decimals"] {
		t.Error("decimals at 0.5 must be a weak area")
	}
	if p.WeakAreas["algebra_basics"] || p.StrongAreas["algebra_basics"] {
		t.Error("algebra_basics at 0.7 belongs to neither band")
	}
	wantOverall := (0.9 + 0.7 + 0.5 + 0.5 + 0.7) / 5
	if !almostEqual(p.OverallScore, wantOverall) {
		t.Errorf("overall score = %g, want %g", p.OverallScore, wantOverall)
	}
}

func TestBuild_LearningVelocity(t *testing.T) {
	// Two topics mastered, records spanning exactly two weeks.
	records := []ActivityRecord{
		rec("fractions", 0.9, 14),
		rec("decimals", 0.85, 7),
		rec("algebra_basics", 0.4, 0),
	}
	p := Build("s1", "mathematics", records, testNow)
	if !almostEqual(p.LearningVelocity, 1.0) {
		t.Errorf("velocity = %g, want 1.0 (2 mastered over 2 weeks)", p.LearningVelocity)
	}
}

func TestBuild_VelocitySingleDay(t *testing.T) {
	// Span under a week is floored at one week.
	records := []ActivityRecord{
		rec("fractions", 0.9, 0),
	}
	p := Build("s1", "mathematics", records, testNow)
	if !almostEqual(p.LearningVelocity, 1.0) {
		t.Errorf("velocity = %g, want 1.0 (1 mastered over floored 1 week)", p.LearningVelocity)
	}
}

func TestConsistency(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{"identical scores", []float64{0.8, 0.8, 0.8}, 1.0},
		{"all zero", []float64{0, 0}, 1.0},
		{"spread", []float64{1.0, 0.5}, 1 - 0.25/0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := consistency(tt.scores); !almostEqual(got, tt.want) {
				t.Errorf("consistency(%v) = %g, want %g", tt.scores, got, tt.want)
			}
		})
	}
}

func TestBuild_PreferredDifficulty(t *testing.T) {
	tests := []struct {
		score float64
		want  topicgraph.Difficulty
	}{
		{0.85, topicgraph.DifficultyHard},
		{0.8, topicgraph.DifficultyHard},
		{0.7, topicgraph.DifficultyMedium},
		{0.6, topicgraph.DifficultyMedium},
		{0.5, topicgraph.DifficultyEasy},
	}
	for _, tt := range tests {
		records := []ActivityRecord{rec("fractions", tt.score, 1)}
		p := Build("s1", "mathematics", records, testNow)
		if p.PreferredDifficulty != tt.want {
			t.Errorf("score %g: preferred = %v, want %v", tt.score, p.PreferredDifficulty, tt.want)
		}
	}
}

func TestBuild_Engagement(t *testing.T) {
	var records []ActivityRecord
	for i := 0; i < 3; i++ {
		records = append(records, rec("fractions", 0.7, i+1))
	}
	// Older than a week; counts toward mastery but not engagement.
	records = append(records, rec("decimals", 0.7, 10))

	p := Build("s1", "mathematics", records, testNow)
	if !almostEqual(p.EngagementLevel, 0.6) {
		t.Errorf("engagement = %g, want 0.6 (3 of 5 target attempts)", p.EngagementLevel)
	}
}

func TestBuild_EngagementCapped(t *testing.T) {
	var records []ActivityRecord
	for i := 0; i < 8; i++ {
		records = append(records, rec("fractions", 0.7, 1))
	}
	p := Build("s1", "mathematics", records, testNow)
	if p.EngagementLevel != 1.0 {
		t.Errorf("engagement = %g, want capped at 1.0", p.EngagementLevel)
	}
}

func TestBuild_RecentActivity(t *testing.T) {
	records := []ActivityRecord{
		rec("fractions", 0.7, 9),
		rec("fractions", 0.7, 3),
		rec("fractions", 0.7, 6),
	}
	p := Build("s1", "mathematics", records, testNow)
	want := testNow.AddDate(0, 0, -3)
	if !p.RecentActivity.Equal(want) {
		t.Errorf("recent activity = %v, want %v", p.RecentActivity, want)
	}
}

func TestMastery_Fallback(t *testing.T) {
	p := Build("s1", "mathematics", []ActivityRecord{rec("fractions", 0.9, 1)}, testNow)
	if got := p.Mastery("fractions"); !almostEqual(got, 0.9) {
		t.Errorf("Mastery(fractions) = %g, want 0.9", got)
	}
	if got := p.Mastery("unseen"); got != 0 {
		t.Errorf("Mastery(unseen) = %g, want 0", got)
	}
}
