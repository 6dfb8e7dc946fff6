package sequence

import (
	"reflect"
	"testing"

	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/topicgraph"
)

func chainGraph() *topicgraph.Graph {
	topics := []topicgraph.Topic{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C"},
		{ID: "d", Name: "D"},
		{ID: "e", Name: "E"},
	}
	edges := []topicgraph.Prerequisite{
		{TopicID: "b", PrerequisiteID: "a"},
		{TopicID: "c", PrerequisiteID: "a"},
		{TopicID: "d", PrerequisiteID: "b"},
		{TopicID: "d", PrerequisiteID: "c"},
		{TopicID: "e", PrerequisiteID: "d"},
	}
	return topicgraph.New(topics, edges)
}

func requiredSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func neutralProfile() *profile.Profile {
	return &profile.Profile{
		StudentID:        "s1",
		TopicMastery:     map[string]float64{},
		WeakAreas:        map[string]bool{},
		StrongAreas:      map[string]bool{},
		LearningVelocity: 0.7,
	}
}

func positions(nodes []TopicNode) map[string]int {
	pos := make(map[string]int, len(nodes))
	for i, n := range nodes {
		pos[n.TopicID] = i
	}
	return pos
}

func TestSequence_PrerequisitesComeFirst(t *testing.T) {
	g := chainGraph()
	nodes := Sequence(g, requiredSet("a", "b", "c", "d", "e"), neutralProfile(), 0)
	if len(nodes) != 5 {
		t.Fatalf("got %d nodes, want 5", len(nodes))
	}

	pos := positions(nodes)
	for _, n := range nodes {
		for _, prereq := range n.Prerequisites {
			pp, ok := pos[prereq]
			if !ok {
				continue
			}
			if pp >= pos[n.TopicID] {
				t.Errorf("prerequisite %q at %d does not precede %q at %d", prereq, pp, n.TopicID, pos[n.TopicID])
			}
		}
	}
}

func TestSequence_TieBreakByID(t *testing.T) {
	g := chainGraph()
	// Equal priorities everywhere: b and c become ready together and must
	// pop in ID order.
	nodes := Sequence(g, requiredSet("a", "b", "c", "d"), neutralProfile(), 0)
	want := []string{"a", "b", "c", "d"}
	for i, id := range want {
		if nodes[i].TopicID != id {
			t.Fatalf("order = %v, want %v", ids(nodes), want)
		}
	}
}

func TestSequence_WeakAreaJumpsQueue(t *testing.T) {
	g := chainGraph()
	p := neutralProfile()
	p.TopicMastery = map[string]float64{"b": 0.3, "c": 0.3}
	p.WeakAreas = map[string]bool{"c": true}

	nodes := Sequence(g, requiredSet("a", "b", "c", "d"), p, 0)
	pos := positions(nodes)
	if pos["c"] >= pos["b"] {
		t.Errorf("weak area c at %d must precede b at %d", pos["c"], pos["b"])
	}
}

func TestSequence_LowerMasteryFirst(t *testing.T) {
	g := chainGraph()
	p := neutralProfile()
	p.TopicMastery = map[string]float64{"b": 0.7, "c": 0.2}

	nodes := Sequence(g, requiredSet("a", "b", "c"), p, 0)
	pos := positions(nodes)
	if pos["c"] >= pos["b"] {
		t.Errorf("lower-mastery c at %d must precede b at %d", pos["c"], pos["b"])
	}
}

func TestSequence_Deterministic(t *testing.T) {
	g := chainGraph()
	p := neutralProfile()
	p.TopicMastery = map[string]float64{"b": 0.4, "c": 0.4}

	first := Sequence(g, requiredSet("a", "b", "c", "d", "e"), p, 0)
	for i := 0; i < 20; i++ {
		again := Sequence(g, requiredSet("a", "b", "c", "d", "e"), p, 0)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, ids(first), ids(again))
		}
	}
}

func TestSequence_MaxLengthCap(t *testing.T) {
	g := chainGraph()
	nodes := Sequence(g, requiredSet("a", "b", "c", "d", "e"), neutralProfile(), 3)
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}
	// The cap truncates the tail, never reorders the head.
	if nodes[0].TopicID != "a" {
		t.Errorf("first node = %q, want a", nodes[0].TopicID)
	}
}

func TestSequence_EmptyRequired(t *testing.T) {
	if nodes := Sequence(chainGraph(), nil, neutralProfile(), 0); nodes != nil {
		t.Errorf("got %v, want nil for empty required set", nodes)
	}
}

func TestBuildNode_DifficultyTiers(t *testing.T) {
	tests := []struct {
		mastery float64
		want    topicgraph.Difficulty
	}{
		{0.9, topicgraph.DifficultyHard},
		{0.8, topicgraph.DifficultyHard},
		{0.6, topicgraph.DifficultyMedium},
		{0.5, topicgraph.DifficultyMedium},
		{0.2, topicgraph.DifficultyEasy},
		{0, topicgraph.DifficultyEasy},
	}
	g := chainGraph()
	for _, tt := range tests {
		p := neutralProfile()
		p.TopicMastery["a"] = tt.mastery
		node := buildNode(g, "a", p)
		if node.Difficulty != tt.want {
			t.Errorf("mastery %g: difficulty = %v, want %v", tt.mastery, node.Difficulty, tt.want)
		}
	}
}

func TestBuildNode_EstimatedDays(t *testing.T) {
	tests := []struct {
		name     string
		mastery  float64
		velocity float64
		want     int
	}{
		{"fresh topic, nominal pace", 0, 1.0, 7},
		{"half mastered, nominal pace", 0.5, 1.0, 4},
		{"gap factor floored", 0.9, 1.0, 4},
		{"fast learner floored", 0, 4.0, 4},
		{"zero velocity clamped", 0, 0, 70},
	}
	g := chainGraph()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := neutralProfile()
			p.TopicMastery["a"] = tt.mastery
			p.LearningVelocity = tt.velocity
			node := buildNode(g, "a", p)
			if node.EstimatedDays != tt.want {
				t.Errorf("days = %d, want %d", node.EstimatedDays, tt.want)
			}
		})
	}
}

func TestBuildNode_Fields(t *testing.T) {
	g := chainGraph()
	p := neutralProfile()
	p.TopicMastery["d"] = 0.3
	p.WeakAreas["d"] = true

	node := buildNode(g, "d", p)
	if node.Name != "D" {
		t.Errorf("name = %q, want D", node.Name)
	}
	if node.TargetMastery != DefaultTargetMastery {
		t.Errorf("target mastery = %g, want %g", node.TargetMastery, DefaultTargetMastery)
	}
	if !node.IsWeakArea {
		t.Error("weak area flag not carried onto node")
	}
	if len(node.Prerequisites) != 2 {
		t.Errorf("prerequisites = %v, want b and c", node.Prerequisites)
	}
}

func ids(nodes []TopicNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.TopicID
	}
	return out
}
