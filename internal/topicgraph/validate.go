package topicgraph

import (
	"fmt"
	"sort"
	"strings"
)

// CycleError reports a prerequisite cycle. A cyclic graph can never be
// sequenced, so this is a configuration error, not a per-request one.
type CycleError struct {
	Topics []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("prerequisite cycle involving topics: %s", strings.Join(e.Topics, ", "))
}

// Validate performs all structural checks on the graph.
// Returns a combined error describing all problems found, or nil if valid.
func (g *Graph) Validate() error {
	var errs []string

	seen := make(map[string]bool, len(g.topics))
	for _, t := range g.topics {
		if t.ID == "" {
			errs = append(errs, "topic with empty ID")
			continue
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic ID: %q", t.ID))
		}
		seen[t.ID] = true
	}

	// Dangling references: edges naming undeclared topics on either end.
	for topicID, edges := range g.prereqs {
		if !seen[topicID] {
			errs = append(errs, fmt.Sprintf("prerequisite edge for undeclared topic %q", topicID))
		}
		edgeSeen := make(map[string]bool, len(edges))
		for _, e := range edges {
			if !seen[e.PrerequisiteID] {
				errs = append(errs, fmt.Sprintf("topic %q references undeclared prerequisite %q", topicID, e.PrerequisiteID))
			}
			if e.PrerequisiteID == topicID {
				errs = append(errs, fmt.Sprintf("topic %q lists itself as a prerequisite", topicID))
			}
			if edgeSeen[e.PrerequisiteID] {
				errs = append(errs, fmt.Sprintf("topic %q lists prerequisite %q twice", topicID, e.PrerequisiteID))
			}
			edgeSeen[e.PrerequisiteID] = true
			if e.MasteryThreshold <= 0 || e.MasteryThreshold > 1.0 {
				errs = append(errs, fmt.Sprintf("topic %q prerequisite %q: mastery threshold must be in (0, 1.0], got %g", topicID, e.PrerequisiteID, e.MasteryThreshold))
			}
			if e.Weight <= 0 {
				errs = append(errs, fmt.Sprintf("topic %q prerequisite %q: weight must be > 0, got %g", topicID, e.PrerequisiteID, e.Weight))
			}
		}
	}

	if cyc := g.findCycle(); cyc != nil {
		errs = append(errs, cyc.Error())
	}

	if len(g.topics) > 0 && len(g.roots) == 0 {
		errs = append(errs, "no root topics found (at least one topic must have no prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("topic graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// findCycle runs Kahn's algorithm over the declared topics and returns a
// CycleError naming the topics left with unresolved in-degree, or nil.
func (g *Graph) findCycle() *CycleError {
	inDegree := make(map[string]int, len(g.topics))
	for _, t := range g.topics {
		count := 0
		for _, e := range g.prereqs[t.ID] {
			if g.HasTopic(e.PrerequisiteID) {
				count++
			}
		}
		inDegree[t.ID] = count
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range g.dependents[id] {
			if _, ok := inDegree[depID]; !ok {
				continue
			}
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited >= len(g.topics) {
		return nil
	}

	var cycleTopics []string
	for id, deg := range inDegree {
		if deg > 0 {
			cycleTopics = append(cycleTopics, id)
		}
	}
	sort.Strings(cycleTopics)
	return &CycleError{Topics: cycleTopics}
}
