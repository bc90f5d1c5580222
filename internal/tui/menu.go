package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ZaneH/sweeper.party-tui/internal/styles"
)

type MenuItem int

const (
	MenuNewGame MenuItem = iota
	MenuSettings
	MenuQuit
)

var menuItems = []string{
	"NEW GAME",
	"SETTINGS",
	"QUIT",
}

func (m *Model) mainMenuView() string {
	var items []string
	for i, item := range menuItems {
		if i == m.menuSelection {
			items = append(items, styles.Active.Render("> "+item))
		} else {
			items = append(items, "  "+item)
		}
	}

	menuContent := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.Title.Render("MINESWEEPER"),
		"",
		styles.Subtitle.Render(fmt.Sprintf("%dx%d board, %d bombs", m.settings.Size, m.settings.Size, m.settings.Bombs)),
		"",
		lipgloss.JoinVertical(lipgloss.Left, items...),
	)

	if m.message != "" {
		menuContent = lipgloss.JoinVertical(lipgloss.Center, menuContent, "", styles.Error.Render(m.message))
	}

	return styles.Center(menuContent, m.width, m.height)
}

func (m *Model) handleMainMenuKeys(key string) (tea.Cmd, bool) {
	handled := true
	switch key {
	case "up", "k":
		if m.menuSelection > 0 {
			m.menuSelection--
		}
	case "down", "j":
		if m.menuSelection < len(menuItems)-1 {
			m.menuSelection++
		}
	case "enter":
		switch MenuItem(m.menuSelection) {
		case MenuNewGame:
			return m.startGame(), true
		case MenuSettings:
			m.state = StateSettings
			m.settingsCursor = 0
		case MenuQuit:
			return m.quit(), true
		}
	case "q":
		return m.quit(), true
	default:
		handled = false
	}
	return nil, handled
}
