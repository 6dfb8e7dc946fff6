package milestone

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/abhisek/pathwise/internal/sequence"
)

var planNow = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func makeNodes(n int) []sequence.TopicNode {
	nodes := make([]sequence.TopicNode, n)
	for i := range nodes {
		nodes[i] = sequence.TopicNode{
			TopicID:       fmt.Sprintf("topic_%02d", i),
			Name:          fmt.Sprintf("Topic %d", i),
			TargetMastery: 0.8,
			EstimatedDays: 5,
		}
	}
	return nodes
}

func TestPlan_Empty(t *testing.T) {
	if got := Plan(nil, planNow); got != nil {
		t.Errorf("got %v, want nil for empty path", got)
	}
}

func TestPlan_ShortPathSingleMilestone(t *testing.T) {
	ms := Plan(makeNodes(3), planNow)
	if len(ms) != 1 {
		t.Fatalf("got %d milestones, want 1", len(ms))
	}
	if ms[0].Type != TypeMastery {
		t.Errorf("type = %q, a single final milestone is the mastery one", ms[0].Type)
	}
	if ms[0].Title != "Mastery" {
		t.Errorf("title = %q, want Mastery", ms[0].Title)
	}
	if len(ms[0].TopicIDs) != 3 {
		t.Errorf("topics = %v, want all 3", ms[0].TopicIDs)
	}
}

func TestPlan_TenTopics(t *testing.T) {
	// 10/4 = 2, clamped up to groups of 3: sizes 3, 3, 3, 1.
	ms := Plan(makeNodes(10), planNow)
	if len(ms) != 4 {
		t.Fatalf("got %d milestones, want 4", len(ms))
	}

	wantSizes := []int{3, 3, 3, 1}
	wantTypes := []Type{TypeFoundation, TypeProgress, TypeProgress, TypeMastery}
	wantTitles := []string{"Foundation", "Checkpoint 1", "Checkpoint 2", "Mastery"}
	for i, m := range ms {
		if len(m.TopicIDs) != wantSizes[i] {
			t.Errorf("milestone %d has %d topics, want %d", i, len(m.TopicIDs), wantSizes[i])
		}
		if m.Type != wantTypes[i] {
			t.Errorf("milestone %d type = %q, want %q", i, m.Type, wantTypes[i])
		}
		if m.Title != wantTitles[i] {
			t.Errorf("milestone %d title = %q, want %q", i, m.Title, wantTitles[i])
		}
		if m.RewardXP != XPPerTopic*wantSizes[i] {
			t.Errorf("milestone %d reward = %d, want %d", i, m.RewardXP, XPPerTopic*wantSizes[i])
		}
		// Averaging accumulates float error, so compare with a tolerance.
		if math.Abs(m.RequiredMastery-0.8) > 1e-9 {
			t.Errorf("milestone %d required mastery = %g, want 0.8", i, m.RequiredMastery)
		}
	}
}

func TestPlan_PartitionExact(t *testing.T) {
	nodes := makeNodes(13)
	ms := Plan(nodes, planNow)

	seen := make(map[string]int)
	for _, m := range ms {
		for _, id := range m.TopicIDs {
			seen[id]++
		}
	}
	if len(seen) != len(nodes) {
		t.Errorf("milestones cover %d topics, want all %d", len(seen), len(nodes))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("topic %q appears in %d milestones, want exactly 1", id, count)
		}
	}
}

func TestPlan_TargetDatesAccumulate(t *testing.T) {
	ms := Plan(makeNodes(10), planNow)

	// Groups of 3 topics at 5 days each: 15, 30, 45, then 50 at the tail.
	wantDays := []int{15, 30, 45, 50}
	for i, m := range ms {
		want := planNow.AddDate(0, 0, wantDays[i])
		if !m.TargetDate.Equal(want) {
			t.Errorf("milestone %d target date = %v, want %v", i, m.TargetDate, want)
		}
	}
}

func TestPlan_CriticalFlags(t *testing.T) {
	ms := Plan(makeNodes(10), planNow)
	for i, m := range ms {
		wantCritical := m.Type == TypeFoundation || m.Type == TypeMastery
		if m.IsCritical != wantCritical {
			t.Errorf("milestone %d (%q): critical = %v, want %v", i, m.Type, m.IsCritical, wantCritical)
		}
	}
}

func TestPlan_DeterministicIDs(t *testing.T) {
	first := Plan(makeNodes(10), planNow)
	again := Plan(makeNodes(10), planNow)
	for i := range first {
		if first[i].ID == "" {
			t.Fatalf("milestone %d has empty ID", i)
		}
		if first[i].ID != again[i].ID {
			t.Errorf("milestone %d ID differs across identical plans: %q vs %q", i, first[i].ID, again[i].ID)
		}
	}
	// Distinct groups get distinct IDs.
	ids := make(map[string]bool)
	for _, m := range first {
		if ids[m.ID] {
			t.Errorf("duplicate milestone ID %q", m.ID)
		}
		ids[m.ID] = true
	}
}

func TestPlan_LargePathIntervalCapped(t *testing.T) {
	// 30/4 = 7, clamped down to groups of 5.
	ms := Plan(makeNodes(30), planNow)
	if len(ms) != 6 {
		t.Fatalf("got %d milestones, want 6", len(ms))
	}
	for i, m := range ms {
		if len(m.TopicIDs) != 5 {
			t.Errorf("milestone %d has %d topics, want 5", i, len(m.TopicIDs))
		}
	}
	if ms[len(ms)-1].Type != TypeMastery {
		t.Errorf("final milestone type = %q, want mastery", ms[len(ms)-1].Type)
	}
}
