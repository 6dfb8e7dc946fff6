// Package pathgen assembles personalized learning paths: it runs the
// profile builder, prerequisite resolver, sequencer, difficulty strategy,
// time estimator, and milestone planner as one pipeline.
package pathgen

import (
	"time"

	"github.com/abhisek/pathwise/internal/milestone"
	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/sequence"
)

// PersonalizedPath is the assembled recommendation output. It is a plain
// value object: the engine performs no side effects, and the path's
// lifecycle ends when the caller persists or discards it.
type PersonalizedPath struct {
	StudentID             string
	Subject               string
	Topics                []sequence.TopicNode
	Milestones            []milestone.Milestone
	EstimatedDurationDays int
	Strategy              string
	CreatedAt             time.Time
	Profile               *profile.Profile
}

// Recommendation wraps a path with a confidence estimate and the
// human-readable reasoning behind it.
type Recommendation struct {
	Path       *PersonalizedPath
	Confidence float64
	Reasoning  string
}
