package minesweeper_test

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/ZaneH/sweeper.party-tui/internal/minesweeper"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func countBombNeighbours(b *minesweeper.Board, row, col int) int {
	count := 0
	for _, c := range minesweeper.AdjacentCoords(row, col, b.MaxIndex()) {
		if b.Tiles[c.Row][c.Col].IsBomb() {
			count++
		}
	}
	return count
}

func TestGenerateBoardInvariants(t *testing.T) {
	configs := []struct{ size, bombs int }{
		{1, 0},
		{1, 1},
		{3, 0},
		{3, 9},
		{5, 2},
		{8, 10},
		{8, 40},
		{10, 99},
		{16, 40},
	}

	for _, cfg := range configs {
		for seed := uint64(0); seed < 20; seed++ {
			board, err := minesweeper.GenerateBoard(cfg.size, cfg.bombs, seeded(seed))
			if err != nil {
				t.Fatalf("GenerateBoard(%d, %d) failed: %v", cfg.size, cfg.bombs, err)
			}
			if board.Size() != cfg.size {
				t.Fatalf("Expected size %d, got %d", cfg.size, board.Size())
			}
			if got := board.BombCount(); got != cfg.bombs {
				t.Fatalf("size=%d seed=%d: expected %d bombs, got %d", cfg.size, seed, cfg.bombs, got)
			}
			for row := range board.Tiles {
				if len(board.Tiles[row]) != cfg.size {
					t.Fatalf("Row %d has %d tiles, expected %d", row, len(board.Tiles[row]), cfg.size)
				}
				for col, tile := range board.Tiles[row] {
					if tile.Revealed {
						t.Fatalf("Tile (%d, %d) revealed on a fresh board", row, col)
					}
					if tile.IsBomb() {
						continue
					}
					if want := countBombNeighbours(board, row, col); tile.Value != want {
						t.Fatalf("Tile (%d, %d) has value %d, expected %d", row, col, tile.Value, want)
					}
				}
			}
		}
	}
}

func TestGenerateBoardInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		size, bombs int
	}{
		{"zero size", 0, 0},
		{"negative size", -3, 1},
		{"negative bombs", 3, -1},
		{"too many bombs", 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := minesweeper.GenerateBoard(tt.size, tt.bombs, seeded(1))
			if board != nil {
				t.Fatalf("Expected no board, got one of size %d", board.Size())
			}
			if !errors.Is(err, minesweeper.ErrInvalidConfiguration) {
				t.Fatalf("Expected ErrInvalidConfiguration, got: %v", err)
			}
			var cfgErr *minesweeper.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Expected *ConfigError, got %T", err)
			}
			if cfgErr.Size != tt.size || cfgErr.Bombs != tt.bombs {
				t.Fatalf("ConfigError carries (%d, %d), expected (%d, %d)", cfgErr.Size, cfgErr.Bombs, tt.size, tt.bombs)
			}
		})
	}
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a, err := minesweeper.NewSeededGenerator(42).Generate(9, 10)
	if err != nil {
		t.Fatalf("Failed to generate board: %v", err)
	}
	b, err := minesweeper.NewSeededGenerator(42).Generate(9, 10)
	if err != nil {
		t.Fatalf("Failed to generate board: %v", err)
	}
	if !reflect.DeepEqual(a.Tiles, b.Tiles) {
		t.Fatalf("Same seed produced different boards")
	}
}

func TestGeneratorCoversEveryPosition(t *testing.T) {
	gen := minesweeper.NewGenerator(seeded(7))
	hits := make(map[minesweeper.Coord]int)
	for i := 0; i < 500; i++ {
		board, err := gen.Generate(3, 1)
		if err != nil {
			t.Fatalf("Failed to generate board: %v", err)
		}
		for row := range board.Tiles {
			for col, tile := range board.Tiles[row] {
				if tile.IsBomb() {
					hits[minesweeper.Coord{Row: row, Col: col}]++
				}
			}
		}
	}
	if len(hits) != 9 {
		t.Fatalf("Expected bombs in all 9 positions, got %d: %v", len(hits), hits)
	}
}

func TestBoardFromBombsCenter(t *testing.T) {
	board, err := minesweeper.BoardFromBombs(3, []minesweeper.Coord{{1, 1}})
	if err != nil {
		t.Fatalf("Failed to build board: %v", err)
	}
	for row := range board.Tiles {
		for col, tile := range board.Tiles[row] {
			if row == 1 && col == 1 {
				if !tile.IsBomb() {
					t.Fatalf("Expected bomb at center, got %d", tile.Value)
				}
				continue
			}
			if tile.Value != 1 {
				t.Fatalf("Tile (%d, %d) has value %d, expected 1", row, col, tile.Value)
			}
		}
	}
}

func TestBoardFromBombsCountsDuplicatesOnce(t *testing.T) {
	board, err := minesweeper.BoardFromBombs(4, []minesweeper.Coord{{0, 0}, {0, 0}, {3, 3}})
	if err != nil {
		t.Fatalf("Failed to build board: %v", err)
	}
	if got := board.BombCount(); got != 2 {
		t.Fatalf("Expected 2 bombs, got %d", got)
	}
	if got := board.Tiles[1][1].Value; got != 1 {
		t.Fatalf("Expected (1, 1) to count 1 bomb, got %d", got)
	}
}

func TestBoardFromBombsOutOfBounds(t *testing.T) {
	_, err := minesweeper.BoardFromBombs(3, []minesweeper.Coord{{3, 0}})
	if !errors.Is(err, minesweeper.ErrOutOfBounds) {
		t.Fatalf("Expected ErrOutOfBounds, got: %v", err)
	}
}

func TestBombsAreNeverIncremented(t *testing.T) {
	board, err := minesweeper.BoardFromBombs(3, []minesweeper.Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
	if err != nil {
		t.Fatalf("Failed to build board: %v", err)
	}
	for _, c := range []minesweeper.Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		if v := board.Tiles[c.Row][c.Col].Value; v != minesweeper.Bomb {
			t.Fatalf("Bomb at %v was changed to %d", c, v)
		}
	}
	if v := board.Tiles[2][2].Value; v != 1 {
		t.Fatalf("Expected (2, 2) to be 1, got %d", v)
	}
	if v := board.Tiles[2][1].Value; v != 2 {
		t.Fatalf("Expected (2, 1) to be 2, got %d", v)
	}
}
