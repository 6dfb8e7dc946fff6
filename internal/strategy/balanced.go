package strategy

import (
	"math"

	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/sequence"
	"github.com/abhisek/pathwise/internal/topicgraph"
)

// Balanced mostly passes nodes through, trimming only the hardest ones
// when the learner's consistency or engagement is shaky.
type Balanced struct{}

func (Balanced) Name() string { return NameBalanced }

func (Balanced) Adjust(node sequence.TopicNode, p *profile.Profile) sequence.TopicNode {
	shaky := p.ConsistencyScore < 0.6 || p.EngagementLevel < 0.5

	if shaky && node.Difficulty == topicgraph.DifficultyHard {
		node.Difficulty = topicgraph.DifficultyMedium
	}
	if p.EngagementLevel < 0.5 {
		node.EstimatedDays = int(math.Round(float64(node.EstimatedDays) * 1.2))
	}
	return node
}
