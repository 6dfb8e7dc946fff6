// Package tui provides the interactive path browser behind
// `pathwise browse`.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/pathgen"
	"github.com/abhisek/pathwise/internal/sequence"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

type rowKind int

const (
	rowMilestoneHeader rowKind = iota
	rowTopic
)

type row struct {
	kind          rowKind
	milestoneIdx  int
	node          *sequence.TopicNode
	topicPosition int
}

// Model is the Bubble Tea model for browsing a generated path.
type Model struct {
	path         *pathgen.PersonalizedPath
	rows         []row
	visible      []int // indices into rows after filtering
	cursor       int
	scrollOffset int
	width        int
	height       int

	filter    textinput.Model
	filtering bool
}

// New creates a browser model for a path.
func New(path *pathgen.PersonalizedPath) Model {
	ti := textinput.New()
	ti.Placeholder = "filter topics"

	m := Model{
		path:   path,
		filter: ti,
	}
	m.rows = buildRows(path)
	m.applyFilter("")
	return m
}

func buildRows(path *pathgen.PersonalizedPath) []row {
	milestoneStart := make(map[string]int)
	for i, ms := range path.Milestones {
		if len(ms.TopicIDs) > 0 {
			milestoneStart[ms.TopicIDs[0]] = i
		}
	}

	var rows []row
	for i := range path.Topics {
		node := &path.Topics[i]
		if mi, ok := milestoneStart[node.TopicID]; ok {
			rows = append(rows, row{kind: rowMilestoneHeader, milestoneIdx: mi})
		}
		rows = append(rows, row{kind: rowTopic, node: node, topicPosition: i + 1})
	}
	return rows
}

// applyFilter recomputes the visible rows for a filter string. Milestone
// headers stay visible as long as any of their topics match.
func (m *Model) applyFilter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	m.visible = m.visible[:0]

	pendingHeader := -1
	for i, r := range m.rows {
		if r.kind == rowMilestoneHeader {
			pendingHeader = i
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.node.Name), query) &&
			!strings.Contains(strings.ToLower(r.node.TopicID), query) {
			continue
		}
		if pendingHeader >= 0 {
			m.visible = append(m.visible, pendingHeader)
			pendingHeader = -1
		}
		m.visible = append(m.visible, i)
	}

	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
	m.scrollOffset = 0
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter":
				m.filtering = false
				m.filter.Blur()
				return m, nil
			case "esc":
				m.filtering = false
				m.filter.SetValue("")
				m.filter.Blur()
				m.applyFilter("")
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter(m.filter.Value())
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "/":
			m.filtering = true
			return m, m.filter.Focus()
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	for next >= 0 && next < len(m.visible) {
		if m.rows[m.visible[next]].kind == rowTopic {
			m.cursor = next
			break
		}
		next += delta
	}
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	listHeight := m.listHeight()
	if listHeight <= 0 {
		return
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+listHeight {
		m.scrollOffset = m.cursor - listHeight + 1
	}
}

func (m Model) listHeight() int {
	// Header (2 lines) + footer (2 lines).
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var b strings.Builder

	header := fmt.Sprintf("%s — %s path", m.path.Subject, m.path.Strategy)
	b.WriteString(theme.Title.Render(header) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d topics · est. %d days",
		len(m.path.Topics), m.path.EstimatedDurationDays)) + "\n")

	listHeight := m.listHeight()
	end := m.scrollOffset + listHeight
	if end > len(m.visible) {
		end = len(m.visible)
	}

	for vi := m.scrollOffset; vi < end; vi++ {
		r := m.rows[m.visible[vi]]
		b.WriteString(m.renderRow(r, vi == m.cursor) + "\n")
	}

	if m.filtering {
		b.WriteString(m.filter.View())
	} else {
		b.WriteString(theme.Hint.Render("↑↓ navigate · / filter · q quit"))
	}

	v.SetContent(b.String())
	return v
}

func (m Model) renderRow(r row, selected bool) string {
	if r.kind == rowMilestoneHeader {
		ms := m.path.Milestones[r.milestoneIdx]
		marker := "◇"
		style := theme.Body
		if ms.IsCritical {
			marker = "◆"
			style = theme.Critical
		}
		return style.Render(fmt.Sprintf("%s %s — due %s, %d XP", marker, ms.Title, ms.TargetDate.Format("Jan 2"), ms.RewardXP))
	}

	node := r.node
	cursor := "  "
	if selected {
		cursor = lipgloss.NewStyle().Foreground(theme.Primary).Render("> ")
	}
	difficulty := theme.DifficultyStyle(node.Difficulty.Label()).Render(fmt.Sprintf("%-7s", node.Difficulty.Label()))
	line := fmt.Sprintf("%s%2d. %-28s %s %3.0f%% → %.0f%%  %dd",
		cursor, r.topicPosition, node.Name, difficulty, node.CurrentMastery*100, node.TargetMastery*100, node.EstimatedDays)
	if node.IsWeakArea {
		line += theme.Warn.Render("  weak")
	}
	return line
}

// Run starts the browser program.
func Run(path *pathgen.PersonalizedPath) error {
	p := tea.NewProgram(New(path))
	_, err := p.Run()
	return err
}
