package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ZaneH/sweeper.party-tui/internal/styles"
)

const (
	minBoardSize = 1
	maxBoardSize = 20
)

const (
	settingsSize = iota
	settingsBombs
	settingsStart
)

func (m *Model) settingsView() string {
	var rows []string
	rows = append(rows, styles.Title.Render("SETTINGS"), "")

	rows = append(rows, settingsRow("  Board Size:  ", formatTwoDigits(m.settings.Size), m.settingsCursor == settingsSize))
	rows = append(rows, settingsRow("  Bombs:       ", formatCount(m.settings.Bombs), m.settingsCursor == settingsBombs))
	rows = append(rows, "")

	start := "  [ START GAME ]"
	if m.settingsCursor == settingsStart {
		start = styles.Active.Render(start)
	}
	rows = append(rows, start)

	return lipgloss.JoinVertical(
		lipgloss.Top,
		styles.HeaderBox.Render(styles.Title.Render("MINESWEEPER")),
		styles.ContentBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
		m.renderFooter(),
	)
}

func settingsRow(label, value string, active bool) string {
	control := "◀ " + value + " ▶"
	if active {
		control = styles.Active.Render(control)
	}
	return label + control
}

func (m *Model) handleSettingsKeys(key string) (tea.Cmd, bool) {
	handled := true
	switch key {
	case "up", "k":
		if m.settingsCursor > settingsSize {
			m.settingsCursor--
		}
	case "down", "j":
		if m.settingsCursor < settingsStart {
			m.settingsCursor++
		}
	case "left", "h":
		switch m.settingsCursor {
		case settingsSize:
			if m.settings.Size > minBoardSize {
				m.settings.Size--
				m.clampBombs()
			}
		case settingsBombs:
			if m.settings.Bombs > 0 {
				m.settings.Bombs--
			}
		}
	case "right", "l":
		switch m.settingsCursor {
		case settingsSize:
			if m.settings.Size < maxBoardSize {
				m.settings.Size++
			}
		case settingsBombs:
			if m.settings.Bombs < m.settings.Size*m.settings.Size {
				m.settings.Bombs++
			}
		}
	case "enter":
		if m.settingsCursor == settingsStart {
			return m.startGame(), true
		}
	case "esc":
		m.state = StateMainMenu
		m.menuSelection = 0
	default:
		handled = false
	}
	return nil, handled
}

func (m *Model) clampBombs() {
	if limit := m.settings.Size * m.settings.Size; m.settings.Bombs > limit {
		m.settings.Bombs = limit
	}
}
