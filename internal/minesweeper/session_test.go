package minesweeper_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ZaneH/sweeper.party-tui/internal/minesweeper"
)

func newTestSession(t *testing.T, opts ...minesweeper.Option) *minesweeper.Session {
	t.Helper()
	opts = append([]minesweeper.Option{minesweeper.WithGenerator(minesweeper.NewSeededGenerator(99))}, opts...)
	session, err := minesweeper.NewSession(minesweeper.DefaultConfig(), opts...)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return session
}

func loadBoard(t *testing.T, session *minesweeper.Session, board *minesweeper.Board) {
	t.Helper()
	if err := session.LoadBoard(board); err != nil {
		t.Fatalf("Failed to load board: %v", err)
	}
}

func TestNewSessionDefaults(t *testing.T) {
	session := newTestSession(t)
	if session.Size() != 5 || session.Bombs() != 2 {
		t.Fatalf("Expected 5x5 with 2 bombs, got %dx%d with %d", session.Size(), session.Size(), session.Bombs())
	}
	board := session.Board()
	if board.Size() != 5 || board.BombCount() != 2 {
		t.Fatalf("Board does not match config: size %d, bombs %d", board.Size(), board.BombCount())
	}
	if session.GameOver() {
		t.Fatalf("New session started in game over")
	}
	if got := session.SafeTilesLeft(); got != 23 {
		t.Fatalf("Expected 23 safe tiles left, got %d", got)
	}
}

func TestNewSessionInvalidConfig(t *testing.T) {
	_, err := minesweeper.NewSession(minesweeper.Config{Size: 2, Bombs: 5})
	if !errors.Is(err, minesweeper.ErrInvalidConfiguration) {
		t.Fatalf("Expected ErrInvalidConfiguration, got: %v", err)
	}
}

func TestClickBombEndsGame(t *testing.T) {
	var lostAt []minesweeper.Coord
	session := newTestSession(t, minesweeper.WithOnLost(func(c minesweeper.Coord) {
		lostAt = append(lostAt, c)
	}))
	loadBoard(t, session, mustBoard(t, 3, minesweeper.Coord{Row: 1, Col: 1}))

	center := minesweeper.Coord{Row: 1, Col: 1}
	result, err := session.Click(center)
	if err != nil {
		t.Fatalf("Click failed: %v", err)
	}
	if result.Outcome != minesweeper.OutcomeLost {
		t.Fatalf("Expected OutcomeLost, got %s", result.Outcome)
	}
	if !session.GameOver() {
		t.Fatalf("Expected game over after hitting a bomb")
	}
	if len(lostAt) != 1 || lostAt[0] != center {
		t.Fatalf("Expected one lost signal at %v, got %v", center, lostAt)
	}
	if got := session.Board().RevealedCount(); got != 1 {
		t.Fatalf("Expected only the bomb revealed, got %d", got)
	}
}

func TestClickIgnoredAfterGameOver(t *testing.T) {
	session := newTestSession(t)
	loadBoard(t, session, mustBoard(t, 3, minesweeper.Coord{Row: 0, Col: 0}))

	if _, err := session.Click(minesweeper.Coord{Row: 0, Col: 0}); err != nil {
		t.Fatalf("Click failed: %v", err)
	}
	before := session.Board()

	result, err := session.Click(minesweeper.Coord{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("Click after game over returned error: %v", err)
	}
	if result.Outcome != minesweeper.OutcomeIgnored {
		t.Fatalf("Expected OutcomeIgnored, got %s", result.Outcome)
	}
	if _, err := session.Click(minesweeper.Coord{Row: 10, Col: 10}); err != nil {
		t.Fatalf("Out of bounds click after game over should be ignored, got: %v", err)
	}
	if !reflect.DeepEqual(before.Tiles, session.Board().Tiles) {
		t.Fatalf("Board changed after game over")
	}
}

func TestClickRevealedTileIsNoChange(t *testing.T) {
	session := newTestSession(t)
	loadBoard(t, session, mustBoard(t, 3, minesweeper.Coord{Row: 0, Col: 0}))

	c := minesweeper.Coord{Row: 1, Col: 1}
	first, err := session.Click(c)
	if err != nil {
		t.Fatalf("Click failed: %v", err)
	}
	if first.Outcome != minesweeper.OutcomeRevealed {
		t.Fatalf("Expected OutcomeRevealed, got %s", first.Outcome)
	}
	second, err := session.Click(c)
	if err != nil {
		t.Fatalf("Click failed: %v", err)
	}
	if second.Outcome != minesweeper.OutcomeNoChange {
		t.Fatalf("Expected OutcomeNoChange, got %s", second.Outcome)
	}
}

func TestClickOutOfBounds(t *testing.T) {
	session := newTestSession(t)
	_, err := session.Click(minesweeper.Coord{Row: 5, Col: 0})
	if !errors.Is(err, minesweeper.ErrOutOfBounds) {
		t.Fatalf("Expected ErrOutOfBounds, got: %v", err)
	}
	if session.GameOver() {
		t.Fatalf("Out of bounds click ended the game")
	}
}

func TestNewGameClearsGameOver(t *testing.T) {
	session := newTestSession(t)
	loadBoard(t, session, mustBoard(t, 2, minesweeper.Coord{Row: 0, Col: 0}))
	if _, err := session.Click(minesweeper.Coord{Row: 0, Col: 0}); err != nil {
		t.Fatalf("Click failed: %v", err)
	}
	if !session.GameOver() {
		t.Fatalf("Expected game over")
	}

	if err := session.NewGame(4, 3); err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if session.GameOver() {
		t.Fatalf("NewGame did not clear game over")
	}
	board := session.Board()
	if board.Size() != 4 || board.BombCount() != 3 || board.RevealedCount() != 0 {
		t.Fatalf("Unexpected board after NewGame: size %d, bombs %d, revealed %d", board.Size(), board.BombCount(), board.RevealedCount())
	}
}

func TestNewGameInvalidKeepsCurrentGame(t *testing.T) {
	session := newTestSession(t)
	before := session.Board()

	err := session.NewGame(3, 100)
	if !errors.Is(err, minesweeper.ErrInvalidConfiguration) {
		t.Fatalf("Expected ErrInvalidConfiguration, got: %v", err)
	}
	if session.Size() != 5 || session.Bombs() != 2 {
		t.Fatalf("Failed NewGame changed the configuration")
	}
	if !reflect.DeepEqual(before.Tiles, session.Board().Tiles) {
		t.Fatalf("Failed NewGame replaced the board")
	}
}

func TestResetKeepsConfiguration(t *testing.T) {
	session := newTestSession(t)
	if err := session.NewGame(7, 9); err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if _, err := session.Click(minesweeper.Coord{Row: 3, Col: 3}); err != nil {
		t.Fatalf("Click failed: %v", err)
	}
	if err := session.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	board := session.Board()
	if board.Size() != 7 || board.BombCount() != 9 || board.RevealedCount() != 0 {
		t.Fatalf("Unexpected board after Reset: size %d, bombs %d, revealed %d", board.Size(), board.BombCount(), board.RevealedCount())
	}
}

func TestBoardReturnsCopy(t *testing.T) {
	session := newTestSession(t)
	snapshot := session.Board()
	snapshot.Tiles[0][0].Revealed = true

	if session.Board().Tiles[0][0].Revealed {
		t.Fatalf("Mutating the snapshot changed the session board")
	}
}

func TestLoadBoardRejectsMissingBoard(t *testing.T) {
	session := newTestSession(t)
	before := session.Board()

	for _, board := range []*minesweeper.Board{nil, {}} {
		if err := session.LoadBoard(board); !errors.Is(err, minesweeper.ErrInvalidConfiguration) {
			t.Fatalf("Expected ErrInvalidConfiguration, got: %v", err)
		}
	}
	if !reflect.DeepEqual(before.Tiles, session.Board().Tiles) {
		t.Fatalf("Rejected board replaced the current game")
	}
}
