package topicgraph

import (
	"fmt"
	"slices"
	"sort"
)

// Graph holds the prerequisite DAG with precomputed indices.
// A Graph is immutable after construction and safe for concurrent reads,
// so one instance can serve many simultaneous path generations.
type Graph struct {
	topics     []Topic
	byID       map[string]*Topic
	prereqs    map[string][]Prerequisite
	dependents map[string][]string
	roots      []string
}

// New constructs a graph from declared topics and prerequisite edges.
// Edges with zero-valued threshold or weight receive the defaults.
// New indexes the input but does not validate it; call Validate before
// serving a graph built from untrusted configuration.
func New(topics []Topic, edges []Prerequisite) *Graph {
	g := &Graph{
		topics:     slices.Clone(topics),
		byID:       make(map[string]*Topic, len(topics)),
		prereqs:    make(map[string][]Prerequisite),
		dependents: make(map[string][]string),
	}

	for i := range g.topics {
		g.byID[g.topics[i].ID] = &g.topics[i]
	}

	for _, e := range edges {
		if e.MasteryThreshold == 0 {
			e.MasteryThreshold = DefaultMasteryThreshold
		}
		if e.Weight == 0 {
			e.Weight = DefaultWeight
		}
		g.prereqs[e.TopicID] = append(g.prereqs[e.TopicID], e)
		g.dependents[e.PrerequisiteID] = append(g.dependents[e.PrerequisiteID], e.TopicID)
	}

	// Sort dependents for deterministic traversal order.
	for id := range g.dependents {
		sort.Strings(g.dependents[id])
	}

	for _, t := range g.topics {
		if len(g.prereqs[t.ID]) == 0 {
			g.roots = append(g.roots, t.ID)
		}
	}
	sort.Strings(g.roots)

	return g
}

// GetTopic returns a declared topic by ID, or an error if not found.
func (g *Graph) GetTopic(id string) (Topic, error) {
	t, ok := g.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("topic not found: %q", id)
	}
	return *t, nil
}

// HasTopic reports whether the topic is declared in the graph.
func (g *Graph) HasTopic(id string) bool {
	_, ok := g.byID[id]
	return ok
}

// Topics returns all declared topics.
func (g *Graph) Topics() []Topic {
	return slices.Clone(g.topics)
}

// Prerequisites returns the prerequisite edges for a topic, in declared order.
func (g *Graph) Prerequisites(id string) []Prerequisite {
	return slices.Clone(g.prereqs[id])
}

// Dependents returns the IDs of topics that directly depend on the given topic.
func (g *Graph) Dependents(id string) []string {
	return slices.Clone(g.dependents[id])
}

// Roots returns the IDs of topics with no prerequisites, sorted.
func (g *Graph) Roots() []string {
	return slices.Clone(g.roots)
}

// TopicName returns the display name for a topic, falling back to the ID
// for topics that only appear as edge endpoints.
func (g *Graph) TopicName(id string) string {
	if t, ok := g.byID[id]; ok && t.Name != "" {
		return t.Name
	}
	return id
}
