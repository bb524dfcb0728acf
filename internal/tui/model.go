// Package tui is an interactive playground for the fuzzy date parser:
// type a date, watch it being interpreted and collect dates into a
// sorted list.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	exactStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	fuzzyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))
)

// ParseFunc interprets the text typed by the user.
type ParseFunc func(text string) fuzzy.Date

// Model is the bubbletea model of the playground.
type Model struct {
	parse      ParseFunc
	abbreviate bool

	editBuffer string
	editCursor int

	dates     []fuzzy.Date
	statusMsg string
	quitting  bool
}

// New creates a playground that interprets input with parse.
func New(parse ParseFunc, abbreviate bool) Model {
	return Model{parse: parse, abbreviate: abbreviate}
}

// Run starts the playground on the terminal.
func Run(parse ParseFunc, abbreviate bool) error {
	_, err := tea.NewProgram(New(parse, abbreviate)).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeys(msg)
	}
	return m, nil
}

// Dates returns the collected dates in sorted order.
func (m Model) Dates() []fuzzy.Date {
	return m.dates
}

// Input returns the text being edited.
func (m Model) Input() string {
	return m.editBuffer
}

// render styles the formatted date, padded to width runes first so
// escape codes do not count toward the column.
func (m Model) render(d fuzzy.Date, width int) string {
	text := fmt.Sprintf("%-*s", width, fuzzy.Format(d, m.abbreviate))
	if d.IsFuzzy() {
		return fuzzyStyle.Render(text)
	}
	return exactStyle.Render(text)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("fuzzydate playground"))
	b.WriteString("\n\n")

	b.WriteString(promptStyle.Render("> "))
	b.WriteString(m.editBuffer[:m.editCursor])
	b.WriteString("█")
	b.WriteString(m.editBuffer[m.editCursor:])
	b.WriteString("\n")

	if strings.TrimSpace(m.editBuffer) != "" {
		d := m.parse(m.editBuffer)
		fuzz := d.Fuzzy.String()
		if fuzz == "" {
			fuzz = "exact"
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", m.render(d, 0), dimStyle.Render(fmt.Sprintf("(%s, %s)", d.Time.Format("2006-01-02 15:04:05"), fuzz))))
	} else {
		b.WriteString("\n")
	}

	if len(m.dates) > 0 {
		b.WriteString("\n")
		for i, d := range m.dates {
			b.WriteString(fmt.Sprintf("%3d  %s %s\n", i+1, m.render(d, 24), dimStyle.Render(d.Original)))
		}
	}

	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("enter: add  tab: abbreviate  ctrl+x: drop last  ctrl+l: clear list  esc: quit"))
	b.WriteString("\n")
	return b.String()
}
