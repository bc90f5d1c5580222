package minesweeper

import (
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"
)

// Generator places bombs using its own random source so games can be
// replayed from a seed.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// GenerateBoard builds a size x size board holding exactly bombs mines with
// every other tile counting its bomb neighbours. Nothing is revealed.
func GenerateBoard(size, bombs int, rng *rand.Rand) (*Board, error) {
	return NewGenerator(rng).Generate(size, bombs)
}

func (g *Generator) Generate(size, bombs int) (*Board, error) {
	if err := validateConfig(size, bombs); err != nil {
		return nil, err
	}
	positions := g.pickBombPositions(size*size, bombs)
	return buildBoard(size, positions), nil
}

// pickBombPositions draws distinct linear positions in [0, total). Dense
// boards draw the safe tiles instead so a pick never needs more than two
// draws on average.
func (g *Generator) pickBombPositions(total, bombs int) mapset.Set[int] {
	if bombs*2 <= total {
		return g.drawDistinct(total, bombs)
	}
	safe := g.drawDistinct(total, total-bombs)
	positions := mapset.New[int]()
	for p := 0; p < total; p++ {
		if !safe.Has(p) {
			positions.Put(p)
		}
	}
	return positions
}

func (g *Generator) drawDistinct(total, n int) mapset.Set[int] {
	set := mapset.New[int]()
	for set.Size() < n {
		set.Put(g.rng.IntN(total))
	}
	return set
}

// BoardFromBombs builds a board with bombs at fixed coordinates. Repeated
// coordinates count once.
func BoardFromBombs(size int, bombs []Coord) (*Board, error) {
	if err := validateConfig(size, 0); err != nil {
		return nil, err
	}
	positions := mapset.New[int]()
	for _, c := range bombs {
		if c.Row < 0 || c.Row >= size || c.Col < 0 || c.Col >= size {
			return nil, &BoundsError{Coord: c, Size: size}
		}
		positions.Put(c.Row*size + c.Col)
	}
	return buildBoard(size, positions), nil
}

func buildBoard(size int, positions mapset.Set[int]) *Board {
	board := newEmptyBoard(size)
	var bombCoords []Coord

	tileCount := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if positions.Has(tileCount) {
				board.Tiles[row][col].Value = Bomb
				bombCoords = append(bombCoords, Coord{Row: row, Col: col})
			}
			tileCount++
		}
	}

	for _, bomb := range bombCoords {
		for _, adj := range AdjacentCoords(bomb.Row, bomb.Col, board.MaxIndex()) {
			tile := &board.Tiles[adj.Row][adj.Col]
			if !tile.IsBomb() {
				tile.Value++
			}
		}
	}
	return board
}
