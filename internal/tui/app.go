package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/ZaneH/sweeper.party-tui/internal/client"
	"github.com/ZaneH/sweeper.party-tui/internal/minesweeper"
	"github.com/ZaneH/sweeper.party-tui/internal/styles"
)

type AppState int

const (
	StateLoading AppState = iota
	StateMainMenu
	StateSettings
	StatePlaying
	StateGameOver
	StateError
)

type Model struct {
	ctx        context.Context
	state      AppState
	gameClient client.GameClient
	sessionID  string
	width      int
	height     int
	err        error
	message    string
	notice     string

	settings minesweeper.Config
	game     *client.GameState
	cursor   minesweeper.Coord
	lostAt   *minesweeper.Coord

	// gameSeq and clickSeq tag async results so replies for an earlier
	// game, or overtaken by a later click, are dropped.
	gameSeq      int
	clickSeq     int
	appliedClick int

	menuSelection     int
	settingsCursor    int
	gameOverSelection int
}

// NewModel builds the app for one player. The game session is ended when
// ctx is done, so a dropped connection does not leave it behind.
func NewModel(ctx context.Context, gameClient client.GameClient, settings minesweeper.Config) *Model {
	return &Model{
		ctx:        ctx,
		state:      StateLoading,
		gameClient: gameClient,
		settings:   settings,
	}
}

func NewProgramHandler(gameClient client.GameClient, settings minesweeper.Config) bubbletea.ProgramHandler {
	return func(sess ssh.Session) *tea.Program {
		return tea.NewProgram(
			NewModel(sess.Context(), gameClient, settings),
			tea.WithContext(sess.Context()),
			tea.WithInput(sess),
			tea.WithOutput(sess),
			tea.WithAltScreen(),
		)
	}
}

func (m *Model) Init() tea.Cmd {
	ctx := m.ctx
	gameClient := m.gameClient
	settings := m.settings
	return func() tea.Msg {
		sessionID, err := gameClient.CreateGame(ctx, settings)
		if err != nil {
			return loadingErrorMsg{err: err}
		}
		if done := ctx.Done(); done != nil {
			go func() {
				<-done
				endGame(gameClient, sessionID)
			}()
		}

		state, err := gameClient.GetBoard(ctx, sessionID)
		if err != nil {
			return loadingErrorMsg{err: fmt.Errorf("failed to load board: %w", err)}
		}

		return gameReadyMsg{
			sessionID: sessionID,
			state:     state,
		}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadingErrorMsg:
		m.state = StateError
		m.err = msg.err
		return m, nil

	case gameReadyMsg:
		m.state = StateMainMenu
		m.sessionID = msg.sessionID
		m.game = msg.state
		return m, nil

	case gameStartedMsg:
		if msg.seq != m.gameSeq {
			return m, nil
		}
		if msg.err != nil {
			m.state = StateMainMenu
			m.message = msg.err.Error()
			return m, nil
		}
		m.startPlaying(msg.state)
		return m, nil

	case clickResultMsg:
		return m, m.handleClickResult(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, m.quit()
		}

		var cmd tea.Cmd
		var handled bool
		switch m.state {
		case StateMainMenu:
			cmd, handled = m.handleMainMenuKeys(key)
		case StateSettings:
			cmd, handled = m.handleSettingsKeys(key)
		case StatePlaying:
			cmd, handled = m.handleBoardKeys(key)
		case StateGameOver:
			cmd, handled = m.handleGameOverKeys(key)
		case StateError:
			if key == "q" || key == "esc" || key == "enter" {
				return m, tea.Quit
			}
		}
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case StateLoading:
		return m.loadingView()
	case StateMainMenu:
		return m.mainMenuView()
	case StateSettings:
		return m.settingsView()
	case StatePlaying:
		return m.boardView()
	case StateGameOver:
		return m.gameOverView()
	default:
		return m.errorView()
	}
}

func (m *Model) startPlaying(state *client.GameState) {
	m.game = state
	m.state = StatePlaying
	m.lostAt = nil
	m.message = ""
	m.notice = ""
	m.clickSeq = 0
	m.appliedClick = 0
	m.cursor = minesweeper.Coord{Row: state.Size / 2, Col: state.Size / 2}
}

func (m *Model) startGame() tea.Cmd {
	ctx := m.ctx
	gameClient := m.gameClient
	sessionID := m.sessionID
	settings := m.settings
	m.gameSeq++
	seq := m.gameSeq
	m.state = StateLoading
	return func() tea.Msg {
		state, err := gameClient.NewGame(ctx, sessionID, settings)
		return gameStartedMsg{seq: seq, state: state, err: err}
	}
}

func (m *Model) quit() tea.Cmd {
	if m.sessionID != "" {
		endGame(m.gameClient, m.sessionID)
	}
	return tea.Quit
}

// endGame releases the session. It runs both on quit and when the program
// context ends, so the second call finds nothing to remove.
func endGame(gameClient client.GameClient, sessionID string) {
	if err := gameClient.EndGame(context.Background(), sessionID); err != nil {
		log.Debug("end game", "session", sessionID, "err", err)
	}
}

func (m *Model) loadingView() string {
	return styles.Center(
		lipgloss.JoinVertical(
			lipgloss.Center,
			styles.Title.Render("MINESWEEPER"),
			"",
			styles.Subtitle.Render("Setting up the minefield..."),
		),
		m.width, m.height,
	)
}

func (m *Model) errorView() string {
	errMsg := "Unknown error"
	if m.err != nil {
		errMsg = m.err.Error()
	}
	return styles.Center(
		lipgloss.JoinVertical(
			lipgloss.Center,
			styles.Title.Render("ERROR"),
			"",
			styles.Error.Render(errMsg),
			"",
			styles.Help.Render("Press [Q] to quit"),
		),
		m.width, m.height,
	)
}
