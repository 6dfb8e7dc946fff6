// Package strategy provides the difficulty adjustment policies applied to
// sequenced path nodes. Each policy is a pure per-node function; policies
// never couple nodes to each other.
package strategy

import (
	"fmt"

	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/sequence"
)

// Strategy adjusts a single node to a pacing policy.
type Strategy interface {
	// Name is the stable tag that identifies the strategy on paths.
	Name() string

	// Adjust returns the node with difficulty, target mastery, and time
	// estimate tuned for the given learner.
	Adjust(node sequence.TopicNode, p *profile.Profile) sequence.TopicNode
}

// Strategy tags.
const (
	NameConservative = "conservative"
	NameBalanced     = "balanced"
	NameAggressive   = "aggressive"
)

// All returns every strategy, in increasing order of aggressiveness.
func All() []Strategy {
	return []Strategy{Conservative{}, Balanced{}, Aggressive{}}
}

// ByName returns the strategy for a tag.
func ByName(name string) (Strategy, error) {
	for _, s := range All() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown difficulty strategy: %q", name)
}
