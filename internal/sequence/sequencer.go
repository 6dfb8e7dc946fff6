package sequence

import (
	"container/heap"
	"math"
	"sort"

	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/topicgraph"
)

// Priority adjustments. Lower priority is picked first, so weak areas and
// slow learners surface their gaps early.
const (
	weakAreaBoost    = -2.0
	fastVelocityBias = -0.5
	slowVelocityBias = 0.5
)

// Sequence orders the required topics so that every prerequisite edge
// between members of the set is respected: a topic never appears before
// an unmet prerequisite. Within that constraint topics are picked by
// priority, with ties broken by topic ID so identical inputs always
// produce the identical order. maxLength <= 0 means no cap.
func Sequence(g *topicgraph.Graph, required map[string]struct{}, p *profile.Profile, maxLength int) []TopicNode {
	if len(required) == 0 {
		return nil
	}

	// In-degree counts restricted to edges inside the required set.
	inDegree := make(map[string]int, len(required))
	dependents := make(map[string][]string, len(required))
	for id := range required {
		count := 0
		for _, e := range g.Prerequisites(id) {
			if _, ok := required[e.PrerequisiteID]; !ok {
				continue
			}
			count++
			dependents[e.PrerequisiteID] = append(dependents[e.PrerequisiteID], id)
		}
		inDegree[id] = count
	}

	ready := &readyQueue{}
	heap.Init(ready)

	// Seed with in-degree-0 topics, sorted for a deterministic heap layout.
	var seeds []string
	for id, deg := range inDegree {
		if deg == 0 {
			seeds = append(seeds, id)
		}
	}
	sort.Strings(seeds)
	for _, id := range seeds {
		heap.Push(ready, queueItem{id: id, priority: priorityFor(id, p)})
	}

	var nodes []TopicNode
	for ready.Len() > 0 {
		if maxLength > 0 && len(nodes) >= maxLength {
			break
		}

		item := heap.Pop(ready).(queueItem)
		nodes = append(nodes, buildNode(g, item.id, p))

		deps := dependents[item.id]
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				heap.Push(ready, queueItem{id: depID, priority: priorityFor(depID, p)})
			}
		}
	}

	return nodes
}

// priorityFor scores a topic for pick order. Weak areas jump the queue,
// low-mastery topics come before high-mastery ones, and the learner's
// velocity nudges everything forward or back.
func priorityFor(id string, p *profile.Profile) float64 {
	prio := p.Mastery(id)
	if p.WeakAreas[id] {
		prio += weakAreaBoost
	}
	switch {
	case p.LearningVelocity > 1.0:
		prio += fastVelocityBias
	case p.LearningVelocity < 0.5:
		prio += slowVelocityBias
	}
	return prio
}

// buildNode constructs the path node for a topic from the profile.
func buildNode(g *topicgraph.Graph, id string, p *profile.Profile) TopicNode {
	mastery := p.Mastery(id)

	var difficulty topicgraph.Difficulty
	switch {
	case mastery >= 0.8:
		difficulty = topicgraph.DifficultyHard
	case mastery >= 0.5:
		difficulty = topicgraph.DifficultyMedium
	default:
		difficulty = topicgraph.DifficultyEasy
	}

	// Seven days for a topic started from scratch at nominal velocity,
	// shrunk by existing mastery and stretched for slow learners.
	gapFactor := math.Max(0.5, 1-mastery)
	velocityFactor := math.Max(0.5, 1/math.Max(0.1, p.LearningVelocity))
	days := int(math.Round(7 * gapFactor * velocityFactor))

	var prereqIDs []string
	for _, e := range g.Prerequisites(id) {
		prereqIDs = append(prereqIDs, e.PrerequisiteID)
	}

	return TopicNode{
		TopicID:        id,
		Name:           g.TopicName(id),
		Difficulty:     difficulty,
		CurrentMastery: mastery,
		TargetMastery:  DefaultTargetMastery,
		EstimatedDays:  days,
		Prerequisites:  prereqIDs,
		IsWeakArea:     p.WeakAreas[id],
	}
}

// queueItem is a ready topic with its precomputed priority.
type queueItem struct {
	id       string
	priority float64
}

// readyQueue is a min-heap keyed by (priority, topic ID). The ID key is
// what makes the sequencer deterministic: equal-priority topics always
// pop in the same order.
type readyQueue []queueItem

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].id < q[j].id
}

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x any) { *q = append(*q, x.(queueItem)) }

func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
