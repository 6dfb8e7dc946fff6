package topicgraph

import (
	"fmt"
	"sort"
)

// Resolver expands target topics into the full set of required topics.
type Resolver struct {
	graph *Graph
}

// NewResolver creates a resolver over the given graph.
func NewResolver(g *Graph) *Resolver {
	return &Resolver{graph: g}
}

// Resolve returns every topic the learner must cover to reach the targets:
// the targets themselves plus, transitively, each prerequisite whose current
// mastery is below the edge threshold. The result is always a superset of
// targets. Edges naming undeclared topics are skipped and reported in the
// returned warnings. A prerequisite cycle yields a *CycleError.
func (r *Resolver) Resolve(targets []string, mastery map[string]float64) (map[string]struct{}, []string, error) {
	required := make(map[string]struct{}, len(targets))
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	var warnings []string

	var visit func(id string) error
	visit = func(id string) error {
		visited[id] = true
		onStack[id] = true

		for _, e := range r.graph.Prerequisites(id) {
			if mastery[e.PrerequisiteID] >= e.MasteryThreshold {
				continue
			}
			if !r.graph.HasTopic(e.PrerequisiteID) {
				warnings = append(warnings, fmt.Sprintf("skipping undeclared prerequisite %q of topic %q", e.PrerequisiteID, id))
				continue
			}
			required[e.PrerequisiteID] = struct{}{}
			if onStack[e.PrerequisiteID] {
				return &CycleError{Topics: cyclePath(onStack)}
			}
			if !visited[e.PrerequisiteID] {
				if err := visit(e.PrerequisiteID); err != nil {
					return err
				}
			}
		}

		onStack[id] = false
		return nil
	}

	for _, target := range targets {
		required[target] = struct{}{}
		if !visited[target] {
			if err := visit(target); err != nil {
				return nil, warnings, err
			}
		}
	}

	return required, warnings, nil
}

// cyclePath returns the topics currently on the recursion stack, sorted
// for a stable error message.
func cyclePath(onStack map[string]bool) []string {
	var ids []string
	for id, on := range onStack {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
