package strategy

import (
	"math"

	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/sequence"
)

// conservativeWeakTargetCap limits how much mastery a conservative path
// demands of a topic the learner is already struggling with.
const conservativeWeakTargetCap = 0.75

// Conservative eases every node: one tier down, half again as much time,
// and a lower mastery bar on weak areas.
type Conservative struct{}

func (Conservative) Name() string { return NameConservative }

func (Conservative) Adjust(node sequence.TopicNode, p *profile.Profile) sequence.TopicNode {
	node.Difficulty = node.Difficulty.Demote()
	node.EstimatedDays = int(math.Round(float64(node.EstimatedDays) * 1.5))
	if node.IsWeakArea && node.TargetMastery > conservativeWeakTargetCap {
		node.TargetMastery = conservativeWeakTargetCap
	}
	return node
}
