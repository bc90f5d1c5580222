package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ZaneH/sweeper.party-tui/internal/minesweeper"
	"github.com/ZaneH/sweeper.party-tui/internal/styles"
)

func (m *Model) boardView() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.renderBoard(true),
	)
	switch {
	case m.message != "":
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", styles.Warning.Render(m.message))
	case m.notice != "":
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", styles.Success.Render(m.notice))
	}

	return lipgloss.JoinVertical(
		lipgloss.Top,
		m.renderHeader(),
		styles.ContentBox.Render(content),
		m.renderFooter(),
	)
}

func (m *Model) gameOverView() string {
	options := []string{"PLAY AGAIN", "RETURN TO MENU", "QUIT"}
	var optionLines []string
	for i, opt := range options {
		if i == m.gameOverSelection {
			optionLines = append(optionLines, styles.Active.Render("> "+opt))
		} else {
			optionLines = append(optionLines, "  "+opt)
		}
	}

	subtitle := "You hit a bomb."
	if m.lostAt != nil {
		subtitle = fmt.Sprintf("You hit a bomb at row %d, column %d.", m.lostAt.Row+1, m.lostAt.Col+1)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		styles.Title.Render("BOOM! GAME OVER"),
		styles.Subtitle.Render(subtitle),
		"",
		m.renderBoard(false),
		"",
		lipgloss.JoinVertical(lipgloss.Left, optionLines...),
	)

	return lipgloss.JoinVertical(
		lipgloss.Top,
		m.renderHeader(),
		styles.ContentBox.Render(content),
		m.renderFooter(),
	)
}

func (m *Model) renderBoard(showCursor bool) string {
	if m.game == nil || m.game.Board == nil {
		return styles.Subtitle.Render("No board loaded")
	}

	var rows []string
	for r, row := range m.game.Board.Tiles {
		var sb strings.Builder
		for c, tile := range row {
			glyph, style := tileGlyph(tile)
			if showCursor && r == m.cursor.Row && c == m.cursor.Col {
				style = style.Reverse(true)
			}
			sb.WriteString(style.Render(glyph))
		}
		rows = append(rows, sb.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func tileGlyph(tile minesweeper.Tile) (string, lipgloss.Style) {
	switch {
	case !tile.Revealed:
		return " ■ ", styles.TileClosed
	case tile.IsBomb():
		return " * ", styles.TileBomb
	case tile.Value == 0:
		return " 0 ", styles.TileEmpty
	default:
		return fmt.Sprintf(" %d ", tile.Value), styles.TileNumber(tile.Value)
	}
}

func (m *Model) handleBoardKeys(key string) (tea.Cmd, bool) {
	if m.game == nil {
		return nil, false
	}
	last := m.game.Size - 1

	handled := true
	switch key {
	case "up", "k", "w":
		if m.cursor.Row > 0 {
			m.cursor.Row--
		}
	case "down", "j", "s":
		if m.cursor.Row < last {
			m.cursor.Row++
		}
	case "left", "h", "a":
		if m.cursor.Col > 0 {
			m.cursor.Col--
		}
	case "right", "l", "d":
		if m.cursor.Col < last {
			m.cursor.Col++
		}
	case "enter", " ":
		return m.sendClick(m.cursor), true
	case "r":
		return m.startGame(), true
	case "esc":
		m.state = StateMainMenu
		m.menuSelection = 0
	case "q":
		return m.quit(), true
	default:
		handled = false
	}
	return nil, handled
}

func (m *Model) sendClick(at minesweeper.Coord) tea.Cmd {
	ctx := m.ctx
	gameClient := m.gameClient
	sessionID := m.sessionID
	m.clickSeq++
	gameSeq, clickSeq := m.gameSeq, m.clickSeq
	return func() tea.Msg {
		result, err := gameClient.SendClick(ctx, sessionID, at)
		return clickResultMsg{gameSeq: gameSeq, clickSeq: clickSeq, result: result, err: err}
	}
}

func (m *Model) handleClickResult(msg clickResultMsg) tea.Cmd {
	// Drop replies that belong to an earlier game or were overtaken by a
	// later click, and anything arriving after the board was left.
	if m.state != StatePlaying || msg.gameSeq != m.gameSeq || msg.clickSeq <= m.appliedClick {
		return nil
	}
	m.appliedClick = msg.clickSeq

	if msg.err != nil {
		m.message = msg.err.Error()
		return nil
	}

	result := msg.result
	m.game = result.State
	m.message = ""
	m.notice = ""
	if result.Outcome == minesweeper.OutcomeLost {
		at := result.Coord
		m.lostAt = &at
	}
	switch {
	case result.State.GameOver:
		m.state = StateGameOver
		m.gameOverSelection = 0
	case result.Outcome == minesweeper.OutcomeRevealed && result.Opened > 1:
		m.notice = fmt.Sprintf("Opened %d tiles", result.Opened)
	}
	return nil
}

func (m *Model) handleGameOverKeys(key string) (tea.Cmd, bool) {
	handled := true
	switch key {
	case "up", "k":
		if m.gameOverSelection > 0 {
			m.gameOverSelection--
		}
	case "down", "j":
		if m.gameOverSelection < 2 {
			m.gameOverSelection++
		}
	case "enter":
		switch m.gameOverSelection {
		case 0:
			return m.startGame(), true
		case 1:
			m.state = StateMainMenu
			m.menuSelection = 0
		case 2:
			return m.quit(), true
		}
	case "r":
		return m.startGame(), true
	case "q":
		return m.quit(), true
	default:
		handled = false
	}
	return nil, handled
}
