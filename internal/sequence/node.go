package sequence

import (
	"github.com/abhisek/pathwise/internal/topicgraph"
)

// DefaultTargetMastery is the mastery level a path aims for per topic
// before a strategy adjusts it.
const DefaultTargetMastery = 0.8

// TopicNode is one step in a personalized path. Nodes are created by the
// sequencer, adjusted in place by exactly one difficulty strategy, and
// treated as frozen after that.
type TopicNode struct {
	TopicID        string
	Name           string
	Difficulty     topicgraph.Difficulty
	CurrentMastery float64
	TargetMastery  float64
	EstimatedDays  int
	Prerequisites  []string
	IsWeakArea     bool
}
