package profile

import (
	"math"
	"time"

	"github.com/abhisek/pathwise/internal/topicgraph"
)

// Mastery band thresholds shared across the engine.
const (
	WeakThreshold   = 0.6
	StrongThreshold = 0.8
)

// Window is the trailing period of activity considered by the builder.
const Window = 30 * 24 * time.Hour

// engagementTarget is the weekly attempt count that maps to full engagement.
const engagementTarget = 5

// Build computes a performance profile from a student's activity records.
// Records outside the trailing window or for a different subject are
// ignored. A student with no usable records gets the default profile;
// that is a normal state for new students, not an error.
func Build(studentID, subject string, records []ActivityRecord, now time.Time) *Profile {
	cutoff := now.Add(-Window)

	var usable []ActivityRecord
	for _, r := range records {
		if r.Subject != subject {
			continue
		}
		if r.Timestamp.Before(cutoff) || r.Timestamp.After(now) {
			continue
		}
		usable = append(usable, r)
	}

	if len(usable) == 0 {
		return defaultProfile(studentID)
	}

	p := &Profile{
		StudentID:    studentID,
		TopicMastery: make(map[string]float64),
		WeakAreas:    make(map[string]bool),
		StrongAreas:  make(map[string]bool),
	}

	var (
		scores     []float64
		topicSums  = make(map[string]float64)
		topicCount = make(map[string]int)
		first      = usable[0].Timestamp
		last       = usable[0].Timestamp
		recentWeek int
	)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	for _, r := range usable {
		scores = append(scores, r.ScoreRatio)
		topicSums[r.Topic] += r.ScoreRatio
		topicCount[r.Topic]++
		if r.Timestamp.Before(first) {
			first = r.Timestamp
		}
		if r.Timestamp.After(last) {
			last = r.Timestamp
		}
		if !r.Timestamp.Before(weekAgo) {
			recentWeek++
		}
	}

	p.OverallScore = mean(scores)
	p.RecentActivity = last

	masteredCount := 0
	for topic, sum := range topicSums {
		m := sum / float64(topicCount[topic])
		p.TopicMastery[topic] = m
		switch {
		case m < WeakThreshold:
			p.WeakAreas[topic] = true
		case m >= StrongThreshold:
			p.StrongAreas[topic] = true
		}
		if m >= StrongThreshold {
			masteredCount++
		}
	}

	weeks := last.Sub(first).Hours() / (24 * 7)
	p.LearningVelocity = float64(masteredCount) / math.Max(1, weeks)

	p.ConsistencyScore = consistency(scores)

	switch {
	case p.OverallScore >= 0.8:
		p.PreferredDifficulty = topicgraph.DifficultyHard
	case p.OverallScore >= 0.6:
		p.PreferredDifficulty = topicgraph.DifficultyMedium
	default:
		p.PreferredDifficulty = topicgraph.DifficultyEasy
	}

	p.EngagementLevel = math.Min(1, float64(recentWeek)/engagementTarget)

	return p
}

// defaultProfile is the profile for students with no recent activity.
func defaultProfile(studentID string) *Profile {
	return &Profile{
		StudentID:           studentID,
		OverallScore:        0.5,
		TopicMastery:        make(map[string]float64),
		WeakAreas:           make(map[string]bool),
		StrongAreas:         make(map[string]bool),
		PreferredDifficulty: topicgraph.DifficultyEasy,
	}
}

// consistency is 1 minus the coefficient of variation of the scores,
// floored at 0. A zero mean means every score was zero: perfectly
// consistent, so 1.0.
func consistency(scores []float64) float64 {
	m := mean(scores)
	if m == 0 {
		return 1.0
	}

	var sumSq float64
	for _, s := range scores {
		d := s - m
		sumSq += d * d
	}
	stdev := math.Sqrt(sumSq / float64(len(scores)))

	return math.Max(0, 1-stdev/m)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
