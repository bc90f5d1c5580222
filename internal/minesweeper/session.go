package minesweeper

const (
	DefaultSize  = 5
	DefaultBombs = 2
)

type Config struct {
	Size  int
	Bombs int
}

func DefaultConfig() Config {
	return Config{Size: DefaultSize, Bombs: DefaultBombs}
}

func (c Config) Validate() error {
	return validateConfig(c.Size, c.Bombs)
}

type Outcome int

const (
	// OutcomeIgnored means the game was already over.
	OutcomeIgnored Outcome = iota
	OutcomeNoChange
	OutcomeRevealed
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeNoChange:
		return "no change"
	case OutcomeRevealed:
		return "revealed"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

type ClickResult struct {
	Outcome Outcome
	Reveal  RevealResult
}

type Option func(*Session)

func WithGenerator(g *Generator) Option {
	return func(s *Session) {
		s.gen = g
	}
}

// WithOnLost registers a hook that fires once when a bomb is revealed.
func WithOnLost(fn func(c Coord)) Option {
	return func(s *Session) {
		s.onLost = fn
	}
}

// Session is one game in progress. It is not safe for concurrent use.
type Session struct {
	board    *Board
	gameOver bool
	size     int
	bombs    int

	gen    *Generator
	onLost func(Coord)
}

func NewSession(cfg Config, opts ...Option) (*Session, error) {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.gen == nil {
		s.gen = NewGenerator(nil)
	}
	if err := s.NewGame(cfg.Size, cfg.Bombs); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame replaces the board with a freshly generated one. On error the
// current game is left untouched.
func (s *Session) NewGame(size, bombs int) error {
	board, err := s.gen.Generate(size, bombs)
	if err != nil {
		return err
	}
	s.load(board, size, bombs)
	return nil
}

func (s *Session) Reset() error {
	return s.NewGame(s.size, s.bombs)
}

// LoadBoard starts a game on a prepared board, such as one rebuilt with
// BoardFromBombs to replay a recorded layout. The board is copied.
func (s *Session) LoadBoard(board *Board) error {
	if board == nil || board.Size() == 0 {
		return &ConfigError{}
	}
	s.load(board.Clone(), board.Size(), board.BombCount())
	return nil
}

func (s *Session) load(board *Board, size, bombs int) {
	s.board = board
	s.size = size
	s.bombs = bombs
	s.gameOver = false
}

// Click routes a player's click through the reveal engine. Clicks after
// the game is lost are ignored until the next NewGame.
func (s *Session) Click(c Coord) (ClickResult, error) {
	if s.gameOver {
		return ClickResult{Outcome: OutcomeIgnored}, nil
	}

	reveal, err := Reveal(s.board, c)
	if err != nil {
		return ClickResult{}, err
	}

	switch {
	case !reveal.Changed:
		return ClickResult{Outcome: OutcomeNoChange, Reveal: reveal}, nil
	case reveal.HitBomb():
		s.gameOver = true
		if s.onLost != nil {
			s.onLost(c)
		}
		return ClickResult{Outcome: OutcomeLost, Reveal: reveal}, nil
	default:
		return ClickResult{Outcome: OutcomeRevealed, Reveal: reveal}, nil
	}
}

// Board returns a copy of the current board for rendering.
func (s *Session) Board() *Board {
	return s.board.Clone()
}

func (s *Session) GameOver() bool {
	return s.gameOver
}

func (s *Session) Size() int {
	return s.size
}

func (s *Session) Bombs() int {
	return s.bombs
}

// SafeTilesLeft counts the closed tiles that are not bombs.
func (s *Session) SafeTilesLeft() int {
	left := 0
	for _, row := range s.board.Tiles {
		for _, tile := range row {
			if !tile.Revealed && !tile.IsBomb() {
				left++
			}
		}
	}
	return left
}
