package milestone

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/sequence"
)

// Milestone sizing. Paths longer than minInterval topics are cut into
// groups of between minInterval and maxInterval topics.
const (
	minInterval = 3
	maxInterval = 5
)

// XPPerTopic is the reward issued per topic in a completed milestone.
const XPPerTopic = 100

// idNamespace scopes the content-derived milestone UUIDs. IDs are v5
// hashes of the milestone's position and topics, so replanning the same
// path yields the same IDs.
var idNamespace = uuid.MustParse("9f2c1e9e-3b7a-4a44-9c41-52f04a1d2f7b")

// Plan partitions the ordered topic nodes into consecutive milestones.
// Every topic lands in exactly one milestone. Target dates accumulate the
// per-topic day estimates from now.
func Plan(nodes []sequence.TopicNode, now time.Time) []Milestone {
	if len(nodes) == 0 {
		return nil
	}

	interval := len(nodes)
	if len(nodes) > minInterval {
		interval = clamp(len(nodes)/4, minInterval, maxInterval)
	}

	var milestones []Milestone
	cumulativeDays := 0
	progressNum := 0

	for start := 0; start < len(nodes); start += interval {
		end := start + interval
		if end > len(nodes) {
			end = len(nodes)
		}
		group := nodes[start:end]

		topicIDs := make([]string, len(group))
		var masterySum float64
		for i, n := range group {
			topicIDs[i] = n.TopicID
			cumulativeDays += n.EstimatedDays
			masterySum += n.TargetMastery
		}

		last := end == len(nodes)
		var mtype Type
		switch {
		case last:
			mtype = TypeMastery
		case start == 0:
			mtype = TypeFoundation
		default:
			progressNum++
			mtype = TypeProgress
		}

		milestones = append(milestones, Milestone{
			ID:              milestoneID(start, topicIDs),
			Title:           titleFor(mtype, progressNum),
			Description:     descriptionFor(mtype, group),
			Type:            mtype,
			TopicIDs:        topicIDs,
			TargetDate:      now.AddDate(0, 0, cumulativeDays),
			RequiredMastery: masterySum / float64(len(group)),
			RewardXP:        XPPerTopic * len(group),
			IsCritical:      mtype.IsCritical(),
		})
	}

	return milestones
}

func milestoneID(start int, topicIDs []string) string {
	name := fmt.Sprintf("%d:%s", start, strings.Join(topicIDs, ","))
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}

func titleFor(t Type, progressNum int) string {
	switch t {
	case TypeFoundation:
		return "Foundation"
	case TypeMastery:
		return "Mastery"
	default:
		return fmt.Sprintf("Checkpoint %d", progressNum)
	}
}

func descriptionFor(t Type, group []sequence.TopicNode) string {
	names := make([]string, len(group))
	for i, n := range group {
		names[i] = n.Name
	}
	joined := strings.Join(names, ", ")

	switch t {
	case TypeFoundation:
		return "Build the fundamentals: " + joined
	case TypeMastery:
		return "Demonstrate mastery of " + joined
	default:
		return "Work through " + joined
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
