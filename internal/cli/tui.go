package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/routegraph/routegraph/pkg/network"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// NodePickerModel - Interactive destination selection
// =============================================================================

// NodeChoice is one selectable node with its route cost from the source.
// Cost is +Inf for unreachable nodes.
type NodeChoice struct {
	ID       string
	Category network.Category
	Cost     float64
}

// Reachable reports whether a route to this node exists.
func (c NodeChoice) Reachable() bool {
	return !math.IsInf(c.Cost, 1)
}

// NodePickerModel is the bubbletea model for interactive destination selection.
type NodePickerModel struct {
	Source   string
	Choices  []NodeChoice
	Cursor   int
	Selected *NodeChoice
}

// NewNodePickerModel creates a picker over the given choices.
func NewNodePickerModel(source string, choices []NodeChoice) NodePickerModel {
	return NodePickerModel{Source: source, Choices: choices}
}

func (m NodePickerModel) Init() tea.Cmd {
	return nil
}

func (m NodePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Choices)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Choices) == 0 {
				return m, nil
			}
			choice := m.Choices[m.Cursor]
			if !choice.Reachable() {
				return m, nil
			}
			m.Selected = &choice
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m NodePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Destination"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("routes from %s  ·  ↑/↓ navigate  ⏎ select  q quit", m.Source)))
	b.WriteString("\n\n")

	for i, choice := range m.Choices {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		cost := listDimStyle.Render("unreachable")
		if choice.Reachable() {
			cost = listDimStyle.Render(fmt.Sprintf("cost %g", choice.Cost))
		}

		line := fmt.Sprintf("%s%-20s %-10s %s", cursor, choice.ID, listDimStyle.Render(string(choice.Category)), cost)

		switch {
		case i == m.Cursor && choice.Reachable():
			b.WriteString(listSelectedStyle.Render(line))
		case !choice.Reachable():
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Choices))))

	return b.String()
}
