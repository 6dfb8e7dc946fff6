package strategy

import (
	"math"

	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/sequence"
)

const (
	// aggressiveTargetMastery is the raised mastery bar on aggressive paths.
	aggressiveTargetMastery = 0.85

	// aggressiveMinDays keeps compressed estimates from collapsing below
	// a workable floor.
	aggressiveMinDays = 3
)

// Aggressive pushes strong, consistent learners: one tier up, compressed
// time estimates for fast learners, and a higher mastery bar everywhere.
type Aggressive struct{}

func (Aggressive) Name() string { return NameAggressive }

func (Aggressive) Adjust(node sequence.TopicNode, p *profile.Profile) sequence.TopicNode {
	if p.OverallScore >= 0.8 && p.ConsistencyScore >= 0.7 {
		node.Difficulty = node.Difficulty.Promote()
	}
	if p.LearningVelocity > 1.0 {
		days := int(math.Round(float64(node.EstimatedDays) * 0.75))
		if days < aggressiveMinDays {
			days = aggressiveMinDays
		}
		node.EstimatedDays = days
	}
	node.TargetMastery = aggressiveTargetMastery
	return node
}
