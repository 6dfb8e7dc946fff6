package profile

import (
	"time"

	"github.com/abhisek/pathwise/internal/topicgraph"
)

// ActivityRecord is a single scored attempt by a student on a topic.
// This is the inbound contract: callers fetch records from wherever they
// live (the store, an analytics export) and hand them to the builder.
type ActivityRecord struct {
	StudentID  string
	Subject    string
	Topic      string
	ScoreRatio float64 // fraction of available points earned, [0, 1]
	Timestamp  time.Time
}

// Profile summarizes a student's recent performance in one subject.
// Built fresh per request and never mutated after construction.
type Profile struct {
	StudentID           string
	OverallScore        float64
	TopicMastery        map[string]float64
	LearningVelocity    float64 // topics mastered per week
	ConsistencyScore    float64
	PreferredDifficulty topicgraph.Difficulty
	WeakAreas           map[string]bool // mastery < WeakThreshold
	StrongAreas         map[string]bool // mastery >= StrongThreshold
	RecentActivity      time.Time
	EngagementLevel     float64
}

// Mastery returns the student's mastery of a topic, 0 if never attempted.
func (p *Profile) Mastery(topicID string) float64 {
	return p.TopicMastery[topicID]
}
