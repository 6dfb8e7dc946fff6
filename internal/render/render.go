// Package render formats paths and recommendations for plain CLI output.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/pathgen"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

const masteryBarWidth = 20

// Path renders a personalized path with its milestones.
func Path(p *pathgen.PersonalizedPath) string {
	var b strings.Builder

	header := fmt.Sprintf("%s — %s path for %s", p.Subject, p.Strategy, p.StudentID)
	b.WriteString(theme.Title.Render(header) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d topics, %d milestones, est. %d days",
		len(p.Topics), len(p.Milestones), p.EstimatedDurationDays)) + "\n\n")

	if len(p.Topics) == 0 {
		b.WriteString(theme.Hint.Render("Nothing to learn — no target topics were required.") + "\n")
		return b.String()
	}

	milestoneStart := make(map[string]int)
	for i, m := range p.Milestones {
		if len(m.TopicIDs) > 0 {
			milestoneStart[m.TopicIDs[0]] = i
		}
	}

	for i, node := range p.Topics {
		if mi, ok := milestoneStart[node.TopicID]; ok {
			m := p.Milestones[mi]
			title := fmt.Sprintf("%s  (due %s, %d XP)", m.Title, m.TargetDate.Format("Jan 2"), m.RewardXP)
			if m.IsCritical {
				b.WriteString(theme.Critical.Render("◆ "+title) + "\n")
			} else {
				b.WriteString(theme.Body.Render("◇ "+title) + "\n")
			}
		}

		difficulty := theme.DifficultyStyle(node.Difficulty.Label()).Render(fmt.Sprintf("%-6s", node.Difficulty.Label()))
		line := fmt.Sprintf("  %2d. %-32s %s %s  %2dd → %.0f%%",
			i+1, node.Name, difficulty, masteryBar(node.CurrentMastery), node.EstimatedDays, node.TargetMastery*100)
		if node.IsWeakArea {
			line += theme.Warn.Render("  weak area")
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// Recommendations renders ranked recommendations with their reasoning.
func Recommendations(recs []pathgen.Recommendation) string {
	var b strings.Builder

	for i, rec := range recs {
		header := fmt.Sprintf("%d. %s — confidence %.2f", i+1, rec.Path.Strategy, rec.Confidence)
		b.WriteString(theme.Title.Render(header) + "\n")
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d topics, est. %d days",
			len(rec.Path.Topics), rec.Path.EstimatedDurationDays)) + "\n")
		b.WriteString(theme.Body.Render(rec.Reasoning) + "\n\n")
	}

	return b.String()
}

// masteryBar renders a fixed-width mastery bar like ▰▰▰▱▱.
func masteryBar(mastery float64) string {
	filled := int(mastery * masteryBarWidth)
	if filled > masteryBarWidth {
		filled = masteryBarWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("▰", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("▱", masteryBarWidth-filled))
	return bar
}
