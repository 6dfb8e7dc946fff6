package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/pathwise/ent"
	"github.com/abhisek/pathwise/ent/activityevent"
)

// activityRepo implements ActivityRepo using the ent client.
type activityRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *activityRepo) Append(ctx context.Context, data ActivityRecordData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetSubject(data.Subject).
		SetTopic(data.Topic).
		SetScoreRatio(data.ScoreRatio).
		SetOccurredAt(data.OccurredAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

func (r *activityRepo) Window(ctx context.Context, studentID, subject string, from time.Time) ([]ActivityRecordData, error) {
	events, err := r.client.ActivityEvent.Query().
		Where(
			activityevent.StudentID(studentID),
			activityevent.Subject(subject),
			activityevent.OccurredAtGTE(from),
		).
		Order(ent.Asc(activityevent.FieldOccurredAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity window: %w", err)
	}

	records := make([]ActivityRecordData, len(events))
	for i, e := range events {
		records[i] = ActivityRecordData{
			StudentID:  e.StudentID,
			Subject:    e.Subject,
			Topic:      e.Topic,
			ScoreRatio: e.ScoreRatio,
			OccurredAt: e.OccurredAt,
		}
	}
	return records, nil
}
