package pathgen

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/pathwise/internal/strategy"
)

// Recommendations generates one path per difficulty strategy for the same
// request and ranks them by confidence, highest first. Ties keep the
// conservative-to-aggressive strategy order.
func (g *Generator) Recommendations(req Request) ([]Recommendation, []string, error) {
	var (
		recs        []Recommendation
		allWarnings []string
	)

	for _, strat := range strategy.All() {
		r := req
		r.Strategy = strat.Name()
		path, warnings, err := g.GeneratePath(r)
		if err != nil {
			return nil, allWarnings, fmt.Errorf("strategy %s: %w", strat.Name(), err)
		}
		if len(allWarnings) == 0 {
			allWarnings = warnings
		}
		recs = append(recs, Recommendation{
			Path:       path,
			Confidence: confidence(path),
			Reasoning:  reasoning(path),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Confidence > recs[j].Confidence
	})
	return recs, allWarnings, nil
}

// confidence estimates how well-grounded a recommendation is, based on
// how much evidence the profile rests on and how fresh it is.
func confidence(path *PersonalizedPath) float64 {
	p := path.Profile
	score := 0.8

	switch topics := len(p.TopicMastery); {
	case topics > 5:
		score += 0.1
	case topics < 2:
		score -= 0.2
	}

	switch age := path.CreatedAt.Sub(p.RecentActivity); {
	case age < 7*24*time.Hour:
		score += 0.1
	case age > 30*24*time.Hour:
		score -= 0.1
	}

	switch {
	case p.EngagementLevel > 0.7:
		score += 0.1
	case p.EngagementLevel < 0.3:
		score -= 0.1
	}

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

// reasoning builds the human-readable explanation for a recommendation
// from the profile signals and the chosen strategy.
func reasoning(path *PersonalizedPath) string {
	p := path.Profile
	var parts []string

	switch {
	case p.OverallScore >= 0.8:
		parts = append(parts, "Recent scores are strong, so the path assumes solid fundamentals.")
	case p.OverallScore < 0.5:
		parts = append(parts, "Recent scores are low, so the path rebuilds fundamentals first.")
	default:
		parts = append(parts, "Recent scores are steady, so the path keeps a moderate ramp.")
	}

	switch {
	case p.LearningVelocity > 1.0:
		parts = append(parts, "You have been mastering topics quickly.")
	case p.LearningVelocity < 0.5:
		parts = append(parts, "Topics have been taking a while to stick, so estimates leave extra room.")
	}

	if n := len(p.WeakAreas); n > 0 {
		parts = append(parts, fmt.Sprintf("The sequence front-loads %d weak area(s).", n))
	}

	switch path.Strategy {
	case strategy.NameConservative:
		parts = append(parts, "The conservative plan trades speed for confidence at every step.")
	case strategy.NameBalanced:
		parts = append(parts, "The balanced plan matches difficulty to your current level.")
	case strategy.NameAggressive:
		parts = append(parts, "The aggressive plan raises the bar and compresses the timeline.")
	}

	return strings.Join(parts, " ")
}
