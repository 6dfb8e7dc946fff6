package milestone

import "time"

// Type categorizes a milestone within a path.
type Type string

const (
	TypeFoundation Type = "foundation"
	TypeProgress   Type = "progress"
	TypeMastery    Type = "mastery"
)

// IsCritical reports whether milestones of this type gate the path.
// Foundation and mastery checkpoints are critical; progress ones are not.
func (t Type) IsCritical() bool {
	return t == TypeFoundation || t == TypeMastery
}

// Milestone groups a consecutive run of path topics into a checkpoint
// used for progress tracking and reward issuance.
type Milestone struct {
	ID              string
	Title           string
	Description     string
	Type            Type
	TopicIDs        []string
	TargetDate      time.Time
	RequiredMastery float64
	RewardXP        int
	IsCritical      bool
}
