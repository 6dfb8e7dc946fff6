package tui

import (
	"testing"
	"time"

	"github.com/abhisek/pathwise/internal/milestone"
	"github.com/abhisek/pathwise/internal/pathgen"
	"github.com/abhisek/pathwise/internal/sequence"
)

func browsePath() *pathgen.PersonalizedPath {
	nodes := []sequence.TopicNode{
		{TopicID: "arithmetic", Name: "Arithmetic", TargetMastery: 0.8, EstimatedDays: 5},
		{TopicID: "fractions", Name: "Fractions", TargetMastery: 0.8, EstimatedDays: 5},
		{TopicID: "decimals", Name: "Decimals", TargetMastery: 0.8, EstimatedDays: 5},
		{TopicID: "algebra_basics", Name: "Algebra Basics", TargetMastery: 0.8, EstimatedDays: 5},
	}
	return &pathgen.PersonalizedPath{
		StudentID:  "s1",
		Subject:    "mathematics",
		Strategy:   "balanced",
		Topics:     nodes,
		Milestones: milestone.Plan(nodes, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func TestBuildRows_HeadersPrecedeGroups(t *testing.T) {
	rows := buildRows(browsePath())

	// 4 topics plan into 2 milestones: header, 3 topics, header, 1 topic.
	wantKinds := []rowKind{rowMilestoneHeader, rowTopic, rowTopic, rowTopic, rowMilestoneHeader, rowTopic}
	if len(rows) != len(wantKinds) {
		t.Fatalf("got %d rows, want %d", len(rows), len(wantKinds))
	}
	for i, want := range wantKinds {
		if rows[i].kind != want {
			t.Errorf("rows[%d].kind = %d, want %d", i, rows[i].kind, want)
		}
	}
	if rows[1].topicPosition != 1 || rows[5].topicPosition != 4 {
		t.Errorf("topic positions = %d, %d, want 1-based path order", rows[1].topicPosition, rows[5].topicPosition)
	}
}

func TestApplyFilter(t *testing.T) {
	m := New(browsePath())

	m.applyFilter("frac")
	if len(m.visible) != 2 {
		t.Fatalf("got %d visible rows, want header plus fractions", len(m.visible))
	}
	if m.rows[m.visible[0]].kind != rowMilestoneHeader {
		t.Error("matching topic's milestone header must stay visible")
	}
	if m.rows[m.visible[1]].node.TopicID != "fractions" {
		t.Errorf("visible topic = %q, want fractions", m.rows[m.visible[1]].node.TopicID)
	}

	// Matching by ID works too, and clearing restores everything.
	m.applyFilter("algebra_basics")
	if len(m.visible) != 2 {
		t.Errorf("got %d visible rows for ID match, want 2", len(m.visible))
	}
	m.applyFilter("")
	if len(m.visible) != len(m.rows) {
		t.Errorf("got %d visible rows after clearing, want all %d", len(m.visible), len(m.rows))
	}
}

func TestApplyFilter_NoMatches(t *testing.T) {
	m := New(browsePath())
	m.applyFilter("calculus")
	if len(m.visible) != 0 {
		t.Errorf("got %d visible rows, want none", len(m.visible))
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want reset to 0", m.cursor)
	}
}

func TestMoveCursor_SkipsHeaders(t *testing.T) {
	m := New(browsePath())
	m.height = 30

	// Cursor starts at 0, which is a header row; moving down must land
	// on topic rows only.
	m.moveCursor(1)
	if m.rows[m.visible[m.cursor]].kind != rowTopic {
		t.Fatalf("cursor on row kind %d, want topic", m.rows[m.visible[m.cursor]].kind)
	}
	first := m.cursor

	for i := 0; i < 10; i++ {
		m.moveCursor(1)
		if m.rows[m.visible[m.cursor]].kind != rowTopic {
			t.Fatalf("cursor landed on a header row")
		}
	}
	if m.cursor <= first {
		t.Errorf("cursor did not advance past %d", first)
	}
}
