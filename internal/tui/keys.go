package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbletea"

	"github.com/mph-llm-experiments/fuzzydate/fuzzy"
)

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		if strings.TrimSpace(m.editBuffer) == "" {
			m.statusMsg = "Nothing to add"
			return m, nil
		}
		d := m.parse(m.editBuffer)
		dates := append(append([]fuzzy.Date(nil), m.dates...), d)
		fuzzy.Sort(dates)
		m.dates = dates
		m.statusMsg = fmt.Sprintf("Added %s", fuzzy.Format(d, m.abbreviate))
		m.editBuffer = ""
		m.editCursor = 0

	case "tab":
		m.abbreviate = !m.abbreviate
		if m.abbreviate {
			m.statusMsg = "Abbreviating months"
		} else {
			m.statusMsg = "Full month names"
		}

	case "ctrl+x":
		if len(m.dates) == 0 {
			m.statusMsg = "List is empty"
			return m, nil
		}
		m.dates = m.dates[:len(m.dates)-1]
		m.statusMsg = "Dropped last date"

	case "ctrl+l":
		m.dates = nil
		m.statusMsg = "Cleared"

	case "backspace", "ctrl+h":
		if m.editCursor > 0 && len(m.editBuffer) > 0 {
			m.editBuffer = m.editBuffer[:m.editCursor-1] + m.editBuffer[m.editCursor:]
			m.editCursor--
		}

	case "delete", "ctrl+d":
		if m.editCursor < len(m.editBuffer) {
			m.editBuffer = m.editBuffer[:m.editCursor] + m.editBuffer[m.editCursor+1:]
		}

	case "left", "ctrl+b":
		if m.editCursor > 0 {
			m.editCursor--
		}

	case "right", "ctrl+f":
		if m.editCursor < len(m.editBuffer) {
			m.editCursor++
		}

	case "home", "ctrl+a":
		m.editCursor = 0

	case "end", "ctrl+e":
		m.editCursor = len(m.editBuffer)

	case "ctrl+k":
		// Kill to end of line
		m.editBuffer = m.editBuffer[:m.editCursor]

	case "ctrl+u":
		// Kill to beginning of line
		m.editBuffer = m.editBuffer[m.editCursor:]
		m.editCursor = 0

	case "ctrl+w":
		// Delete word backward
		if m.editCursor > 0 {
			i := m.editCursor - 1
			for i > 0 && m.editBuffer[i-1] == ' ' {
				i--
			}
			for i > 0 && m.editBuffer[i-1] != ' ' {
				i--
			}
			m.editBuffer = m.editBuffer[:i] + m.editBuffer[m.editCursor:]
			m.editCursor = i
		}

	default:
		if len(msg.String()) == 1 {
			m.editBuffer = m.editBuffer[:m.editCursor] + msg.String() + m.editBuffer[m.editCursor:]
			m.editCursor++
			m.statusMsg = ""
		}
	}

	return m, nil
}
