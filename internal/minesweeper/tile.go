package minesweeper

import (
	"fmt"
	"strings"
)

// Bomb is the tile value that marks a mine.
const Bomb = -1

// Tile is one cell of the board. Value never changes after generation.
type Tile struct {
	Value    int
	Revealed bool
}

func (t Tile) IsBomb() bool {
	return t.Value == Bomb
}

type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Board is a square grid of tiles indexed by (row, col).
type Board struct {
	Tiles [][]Tile
}

func newEmptyBoard(size int) *Board {
	tiles := make([][]Tile, size)
	for i := range tiles {
		tiles[i] = make([]Tile, size)
	}
	return &Board{Tiles: tiles}
}

func (b *Board) Size() int {
	return len(b.Tiles)
}

func (b *Board) MaxIndex() int {
	return len(b.Tiles) - 1
}

func (b *Board) InBounds(c Coord) bool {
	last := b.MaxIndex()
	return c.Row >= 0 && c.Row <= last && c.Col >= 0 && c.Col <= last
}

func (b *Board) At(c Coord) (Tile, error) {
	if !b.InBounds(c) {
		return Tile{}, &BoundsError{Coord: c, Size: b.Size()}
	}
	return b.Tiles[c.Row][c.Col], nil
}

func (b *Board) BombCount() int {
	count := 0
	for _, row := range b.Tiles {
		for _, tile := range row {
			if tile.IsBomb() {
				count++
			}
		}
	}
	return count
}

func (b *Board) RevealedCount() int {
	count := 0
	for _, row := range b.Tiles {
		for _, tile := range row {
			if tile.Revealed {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy so callers can render without sharing rows.
func (b *Board) Clone() *Board {
	tiles := make([][]Tile, len(b.Tiles))
	for i, row := range b.Tiles {
		tiles[i] = append([]Tile(nil), row...)
	}
	return &Board{Tiles: tiles}
}

// String draws the board the way a player sees it: "-" closed, "*" bomb,
// "." empty, digits for counts.
func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.Tiles {
		for i, tile := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			switch {
			case !tile.Revealed:
				sb.WriteByte('-')
			case tile.IsBomb():
				sb.WriteByte('*')
			case tile.Value == 0:
				sb.WriteByte('.')
			default:
				fmt.Fprintf(&sb, "%d", tile.Value)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
