package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pathwise/ent"
	"github.com/abhisek/pathwise/ent/pathevent"
)

// pathRepo implements PathRepo using the ent client.
type pathRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *pathRepo) Append(ctx context.Context, data PathRecordData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PathEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(data.GeneratedAt).
		SetStudentID(data.StudentID).
		SetSubject(data.Subject).
		SetStrategy(data.Strategy).
		SetTopicIds(data.TopicIDs).
		SetTopicCount(data.TopicCount).
		SetMilestoneCount(data.MilestoneCount).
		SetEstimatedDays(data.EstimatedDays).
		SetConfidence(data.Confidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save path event: %w", err)
	}
	return nil
}

func (r *pathRepo) Recent(ctx context.Context, studentID string, limit int) ([]PathRecordData, error) {
	q := r.client.PathEvent.Query().
		Where(pathevent.StudentID(studentID)).
		Order(ent.Desc(pathevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent paths: %w", err)
	}

	records := make([]PathRecordData, len(events))
	for i, e := range events {
		records[i] = PathRecordData{
			StudentID:      e.StudentID,
			Subject:        e.Subject,
			Strategy:       e.Strategy,
			TopicIDs:       e.TopicIds,
			TopicCount:     e.TopicCount,
			MilestoneCount: e.MilestoneCount,
			EstimatedDays:  e.EstimatedDays,
			Confidence:     e.Confidence,
			GeneratedAt:    e.Timestamp,
		}
	}
	return records, nil
}
