package topicgraph

// Default edge parameters, applied when a graph config omits them.
const (
	DefaultMasteryThreshold = 0.7
	DefaultWeight           = 1.0
)

// Topic is a single learning topic declared in the graph.
type Topic struct {
	ID   string
	Name string
}

// Prerequisite is a directed edge: TopicID depends on PrerequisiteID.
// A learner whose mastery of PrerequisiteID is below MasteryThreshold
// must cover the prerequisite before the topic.
type Prerequisite struct {
	TopicID          string
	PrerequisiteID   string
	MasteryThreshold float64
	Weight           float64
}

// Difficulty represents a topic difficulty tier.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Label returns the display label for a difficulty tier.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Demote returns the next easier tier. Easy stays Easy.
func (d Difficulty) Demote() Difficulty {
	if d > DifficultyEasy {
		return d - 1
	}
	return d
}

// Promote returns the next harder tier. Hard stays Hard.
func (d Difficulty) Promote() Difficulty {
	if d < DifficultyHard {
		return d + 1
	}
	return d
}
