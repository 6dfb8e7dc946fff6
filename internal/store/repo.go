package store

import (
	"context"
	"time"
)

// ActivityRecordData is a scored attempt as stored. The CLI maps these to
// the engine's activity records; the engine never reads the store itself.
type ActivityRecordData struct {
	StudentID  string
	Subject    string
	Topic      string
	ScoreRatio float64
	OccurredAt time.Time
}

// ActivityRepo provides append and windowed query access to activity events.
type ActivityRepo interface {
	// Append records one scored attempt.
	Append(ctx context.Context, data ActivityRecordData) error

	// Window returns a student's attempts for a subject with
	// occurred_at >= from, oldest first.
	Window(ctx context.Context, studentID, subject string, from time.Time) ([]ActivityRecordData, error)
}

// PathRecordData summarizes one generated path.
type PathRecordData struct {
	StudentID      string
	Subject        string
	Strategy       string
	TopicIDs       []string
	TopicCount     int
	MilestoneCount int
	EstimatedDays  int
	Confidence     float64
	GeneratedAt    time.Time
}

// PathRepo records generated paths and lists recent ones.
type PathRepo interface {
	// Append records one generated path.
	Append(ctx context.Context, data PathRecordData) error

	// Recent returns the most recent paths for a student, newest first.
	Recent(ctx context.Context, studentID string, limit int) ([]PathRecordData, error)
}
