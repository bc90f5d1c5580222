package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ZaneH/sweeper.party-tui/internal/styles"
)

func formatTwoDigits(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10%10)) + string(rune('0'+n%10))
}

func formatCount(n int) string {
	if n < 100 {
		return formatTwoDigits(n)
	}
	return fmt.Sprintf("%d", n)
}

func (m *Model) renderHeader() string {
	if m.game == nil {
		return styles.HeaderBox.Render(styles.Title.Render("MINESWEEPER"))
	}

	left := styles.Normal.Render(fmt.Sprintf("Safe tiles left: %d", m.game.SafeTilesLeft))
	if m.game.GameOver {
		left = styles.Error.Render("Game over")
	}

	return styles.HeaderBox.Render(
		lipgloss.JoinHorizontal(
			lipgloss.Left,
			styles.Title.Render("MINESWEEPER"),
			"  ",
			styles.Normal.Render(fmt.Sprintf("Board: %dx%d", m.game.Size, m.game.Size)),
			"  ",
			styles.Normal.Render(fmt.Sprintf("Bombs: %d", m.game.Bombs)),
			"  ",
			left,
		),
	)
}

func (m *Model) renderFooter() string {
	hint := ""
	switch m.state {
	case StateMainMenu:
		hint = "[↑/↓] Navigate  [ENTER] Select  [Q] Quit"
	case StateSettings:
		hint = "[↑/↓] Navigate  [←/→] Adjust  [ENTER] Start  [ESC] Back"
	case StatePlaying:
		hint = "[←↑↓→] Move  [ENTER/SPACE] Reveal  [R] Restart  [ESC] Menu  [Q] Quit"
	case StateGameOver:
		hint = "[↑/↓] Navigate  [ENTER] Select  [R] Play again"
	}
	return styles.FooterBox.Render(styles.Help.Render(hint))
}
