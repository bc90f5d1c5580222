package tui

import (
	"github.com/ZaneH/sweeper.party-tui/internal/client"
)

type loadingErrorMsg struct{ err error }

type gameReadyMsg struct {
	sessionID string
	state     *client.GameState
}

type gameStartedMsg struct {
	seq   int
	state *client.GameState
	err   error
}

type clickResultMsg struct {
	gameSeq  int
	clickSeq int
	result   *client.ClickResult
	err      error
}
