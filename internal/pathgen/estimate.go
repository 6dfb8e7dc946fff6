package pathgen

import (
	"math"

	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/sequence"
)

// reviewBuffer pads the aggregate estimate for review and consolidation.
const reviewBuffer = 1.2

// EstimateTotalDays estimates the calendar days needed to complete the
// path. Low engagement and inconsistency stretch the estimate; velocity
// compresses it. Velocity also shaped the per-node estimates, so it is
// applied twice in total; that compounding matches the shipped behavior
// of the estimator and is kept deliberately.
func EstimateTotalDays(nodes []sequence.TopicNode, p *profile.Profile) int {
	base := 0
	for _, n := range nodes {
		base += n.EstimatedDays
	}
	if base == 0 {
		return 0
	}

	engagementFactor := math.Max(0.7, p.EngagementLevel)
	consistencyFactor := math.Max(0.8, p.ConsistencyScore)
	velocityFactor := math.Max(0.5, p.LearningVelocity)

	adjusted := float64(base) / (engagementFactor * consistencyFactor) * (1 / velocityFactor)

	return int(math.Round(adjusted * reviewBuffer))
}
