package pathgen

import (
	"testing"

	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/sequence"
)

func nodesWithDays(days ...int) []sequence.TopicNode {
	nodes := make([]sequence.TopicNode, len(days))
	for i, d := range days {
		nodes[i] = sequence.TopicNode{EstimatedDays: d}
	}
	return nodes
}

func TestEstimateTotalDays(t *testing.T) {
	tests := []struct {
		name        string
		days        []int
		engagement  float64
		consistency float64
		velocity    float64
		want        int
	}{
		{
			// 20 / (1*1) * (1/2) * 1.2 = 12
			name: "fast engaged learner", days: []int{10, 10},
			engagement: 1, consistency: 1, velocity: 2, want: 12,
		},
		{
			// Factors floored: 10 / (0.7*0.8) * (1/0.5) * 1.2 = 42.857 -> 43
			name: "all factors floored", days: []int{10},
			engagement: 0, consistency: 0, velocity: 0, want: 43,
		},
		{
			// 14 / (0.8*0.9) * (1/1) * 1.2 = 23.333 -> 23
			name: "moderate profile", days: []int{7, 7},
			engagement: 0.8, consistency: 0.9, velocity: 1, want: 23,
		},
		{
			name: "empty path", days: nil,
			engagement: 1, consistency: 1, velocity: 1, want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &profile.Profile{
				EngagementLevel:  tt.engagement,
				ConsistencyScore: tt.consistency,
				LearningVelocity: tt.velocity,
			}
			if got := EstimateTotalDays(nodesWithDays(tt.days...), p); got != tt.want {
				t.Errorf("got %d days, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimateTotalDays_VelocityCompounds(t *testing.T) {
	// The per-node estimates already reflect velocity, and the aggregate
	// divides by it again. A doubled velocity must therefore more than
	// halve the total for the same node set.
	slow := &profile.Profile{EngagementLevel: 1, ConsistencyScore: 1, LearningVelocity: 1}
	fast := &profile.Profile{EngagementLevel: 1, ConsistencyScore: 1, LearningVelocity: 2}

	nodes := nodesWithDays(10, 10)
	slowTotal := EstimateTotalDays(nodes, slow)
	fastTotal := EstimateTotalDays(nodes, fast)
	if fastTotal*2 != slowTotal {
		t.Errorf("fast %d, slow %d: doubling velocity must halve the aggregate", fastTotal, slowTotal)
	}
}
