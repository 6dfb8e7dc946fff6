package pathgen

import (
	"fmt"
	"time"

	"github.com/abhisek/pathwise/internal/milestone"
	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/sequence"
	"github.com/abhisek/pathwise/internal/strategy"
	"github.com/abhisek/pathwise/internal/topicgraph"
)

// DefaultMaxLength caps path length when a request does not set one.
const DefaultMaxLength = 20

// Generator runs the full recommendation pipeline against one subject
// graph. The graph is read-only, so a single Generator is safe for
// concurrent use by many simultaneous requests.
type Generator struct {
	subject  string
	graph    *topicgraph.Graph
	resolver *topicgraph.Resolver

	// Clock supplies the pipeline's notion of now. Overridable in tests;
	// with a fixed clock identical requests produce identical paths.
	Clock func() time.Time
}

// New creates a generator for a subject graph.
func New(subject string, g *topicgraph.Graph) *Generator {
	return &Generator{
		subject:  subject,
		graph:    g,
		resolver: topicgraph.NewResolver(g),
		Clock:    time.Now,
	}
}

// Request carries everything one path generation needs. Records are the
// student's raw activity for the trailing window; the caller fetches them
// (the engine itself never touches storage).
type Request struct {
	StudentID    string
	TargetTopics []string
	MaxLength    int
	Strategy     string
	Records      []profile.ActivityRecord
}

// GeneratePath builds a personalized path for the request. The returned
// warnings describe recoverable graph problems (dangling prerequisite
// edges) that were skipped during resolution. An empty target set yields
// an empty but valid path.
func (g *Generator) GeneratePath(req Request) (*PersonalizedPath, []string, error) {
	strat, err := strategy.ByName(req.Strategy)
	if err != nil {
		return nil, nil, err
	}

	maxLength := req.MaxLength
	if maxLength == 0 {
		maxLength = DefaultMaxLength
	}

	now := g.Clock()
	prof := profile.Build(req.StudentID, g.subject, req.Records, now)

	required, warnings, err := g.resolver.Resolve(req.TargetTopics, prof.TopicMastery)
	if err != nil {
		return nil, warnings, fmt.Errorf("resolve prerequisites: %w", err)
	}

	nodes := sequence.Sequence(g.graph, required, prof, maxLength)
	for i := range nodes {
		nodes[i] = strat.Adjust(nodes[i], prof)
	}

	path := &PersonalizedPath{
		StudentID:             req.StudentID,
		Subject:               g.subject,
		Topics:                nodes,
		Milestones:            milestone.Plan(nodes, now),
		EstimatedDurationDays: EstimateTotalDays(nodes, prof),
		Strategy:              strat.Name(),
		CreatedAt:             now,
		Profile:               prof,
	}
	return path, warnings, nil
}
