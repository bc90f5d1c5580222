package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ZaneH/sweeper.party-tui/internal/minesweeper"
)

var ErrUnknownSession = errors.New("unknown game session")

type GameState struct {
	SessionID     string
	Board         *minesweeper.Board
	GameOver      bool
	Size          int
	Bombs         int
	SafeTilesLeft int
}

type ClickResult struct {
	Outcome minesweeper.Outcome
	Coord   minesweeper.Coord
	Opened  int
	State   *GameState
}

type GameClient interface {
	CreateGame(ctx context.Context, cfg minesweeper.Config) (sessionID string, err error)
	NewGame(ctx context.Context, sessionID string, cfg minesweeper.Config) (*GameState, error)
	GetBoard(ctx context.Context, sessionID string) (*GameState, error)
	SendClick(ctx context.Context, sessionID string, c minesweeper.Coord) (*ClickResult, error)
	EndGame(ctx context.Context, sessionID string) error
	Close() error
}

type Option func(*localClient)

func WithLogger(logger *log.Logger) Option {
	return func(c *localClient) {
		c.logger = logger
	}
}

// WithGenerators sets the factory used to give each new game session its
// own bomb generator.
func WithGenerators(newGenerator func() *minesweeper.Generator) Option {
	return func(c *localClient) {
		c.newGenerator = newGenerator
	}
}

// localClient runs every game in process. Sessions are keyed by a uuid so
// one client can serve many SSH connections.
type localClient struct {
	mu       sync.Mutex
	sessions map[string]*minesweeper.Session

	logger       *log.Logger
	newGenerator func() *minesweeper.Generator
}

func New(opts ...Option) GameClient {
	c := &localClient{
		sessions: make(map[string]*minesweeper.Session),
		logger:   log.Default(),
		newGenerator: func() *minesweeper.Generator {
			return minesweeper.NewGenerator(nil)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *localClient) CreateGame(ctx context.Context, cfg minesweeper.Config) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sessionID := uuid.NewString()
	logger := c.logger.With("session", sessionID)
	session, err := minesweeper.NewSession(cfg,
		minesweeper.WithGenerator(c.newGenerator()),
		minesweeper.WithOnLost(func(at minesweeper.Coord) {
			logger.Info("game lost", "tile", at)
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	c.mu.Lock()
	c.sessions[sessionID] = session
	c.mu.Unlock()

	logger.Info("game created", "size", cfg.Size, "bombs", cfg.Bombs)
	return sessionID, nil
}

func (c *localClient) NewGame(ctx context.Context, sessionID string, cfg minesweeper.Config) (*GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.NewGame(cfg.Size, cfg.Bombs); err != nil {
		return nil, fmt.Errorf("failed to start new game: %w", err)
	}
	c.logger.Info("game restarted", "session", sessionID, "size", cfg.Size, "bombs", cfg.Bombs)
	return snapshot(sessionID, session), nil
}

func (c *localClient) GetBoard(ctx context.Context, sessionID string) (*GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return snapshot(sessionID, session), nil
}

func (c *localClient) SendClick(ctx context.Context, sessionID string, at minesweeper.Coord) (*ClickResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	result, err := session.Click(at)
	if err != nil {
		return nil, fmt.Errorf("failed to reveal %s: %w", at, err)
	}
	c.logger.Debug("tile clicked", "session", sessionID, "tile", at, "outcome", result.Outcome, "opened", len(result.Reveal.Opened))

	return &ClickResult{
		Outcome: result.Outcome,
		Coord:   at,
		Opened:  len(result.Reveal.Opened),
		State:   snapshot(sessionID, session),
	}, nil
}

func (c *localClient) EndGame(ctx context.Context, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.lookup(sessionID); err != nil {
		return err
	}
	delete(c.sessions, sessionID)
	c.logger.Info("game ended", "session", sessionID)
	return nil
}

func (c *localClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id := range c.sessions {
		delete(c.sessions, id)
	}
	return nil
}

func (c *localClient) lookup(sessionID string) (*minesweeper.Session, error) {
	session, ok := c.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, sessionID)
	}
	return session, nil
}

func snapshot(sessionID string, s *minesweeper.Session) *GameState {
	return &GameState{
		SessionID:     sessionID,
		Board:         s.Board(),
		GameOver:      s.GameOver(),
		Size:          s.Size(),
		Bombs:         s.Bombs(),
		SafeTilesLeft: s.SafeTilesLeft(),
	}
}
