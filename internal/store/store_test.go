package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := s.db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestActivityAppendAndWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.ActivityRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	records := []ActivityRecordData{
		{StudentID: "s1", Subject: "mathematics", Topic: "fractions", ScoreRatio: 0.8, OccurredAt: base},
		{StudentID: "s1", Subject: "mathematics", Topic: "decimals", ScoreRatio: 0.6, OccurredAt: base.AddDate(0, 0, 2)},
		{StudentID: "s1", Subject: "physics", Topic: "optics", ScoreRatio: 0.9, OccurredAt: base.AddDate(0, 0, 1)},
		{StudentID: "s2", Subject: "mathematics", Topic: "fractions", ScoreRatio: 0.5, OccurredAt: base.AddDate(0, 0, 1)},
		{StudentID: "s1", Subject: "mathematics", Topic: "arithmetic", ScoreRatio: 0.7, OccurredAt: base.AddDate(0, 0, -10)},
	}
	for _, r := range records {
		if err := repo.Append(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.Window(ctx, "s1", "mathematics", base.AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2 (subject, student, and window filters apply)", len(got))
	}
	if got[0].Topic != "fractions" || got[1].Topic != "decimals" {
		t.Errorf("window order = %q, %q, want oldest first", got[0].Topic, got[1].Topic)
	}
	if got[0].ScoreRatio != 0.8 {
		t.Errorf("score = %g, want 0.8", got[0].ScoreRatio)
	}
}

func TestPathAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.PathRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, PathRecordData{
			StudentID:      "s1",
			Subject:        "mathematics",
			Strategy:       "balanced",
			TopicIDs:       []string{"fractions", "decimals"},
			TopicCount:     2,
			MilestoneCount: 1,
			EstimatedDays:  14 + i,
			Confidence:     0.8,
			GeneratedAt:    base.AddDate(0, 0, i),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.Recent(ctx, "s1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d paths, want limit of 2", len(got))
	}
	if got[0].EstimatedDays != 16 || got[1].EstimatedDays != 15 {
		t.Errorf("order = %d, %d days, want newest first", got[0].EstimatedDays, got[1].EstimatedDays)
	}
	if len(got[0].TopicIDs) != 2 {
		t.Errorf("topic IDs = %v, want 2 entries", got[0].TopicIDs)
	}

	other, err := repo.Recent(ctx, "nobody", 10)
	if err != nil {
		t.Fatalf("recent (empty): %v", err)
	}
	if len(other) != 0 {
		t.Errorf("got %d paths for unknown student, want 0", len(other))
	}
}

func TestSequenceCounter_Monotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 10; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}
