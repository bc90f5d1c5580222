package minesweeper

// RevealResult describes what a single reveal did to the board.
type RevealResult struct {
	Coord Coord
	Tile  Tile
	// Changed is false when the tile was already open.
	Changed bool
	// Opened lists every tile this reveal turned over, starting with Coord.
	Opened []Coord
}

func (r RevealResult) HitBomb() bool {
	return r.Changed && r.Tile.IsBomb()
}

// Reveal opens the tile at c in place. A bomb or a numbered tile opens on
// its own; an empty tile also opens its whole connected empty region and the
// numbered tiles bordering it. Revealing an open tile changes nothing.
func Reveal(board *Board, c Coord) (RevealResult, error) {
	if !board.InBounds(c) {
		return RevealResult{}, &BoundsError{Coord: c, Size: board.Size()}
	}

	tile := &board.Tiles[c.Row][c.Col]
	if tile.Revealed {
		return RevealResult{Coord: c, Tile: *tile}, nil
	}

	tile.Revealed = true
	result := RevealResult{
		Coord:   c,
		Tile:    *tile,
		Changed: true,
		Opened:  []Coord{c},
	}
	if tile.Value == 0 {
		result.Opened = walkAdjacent(board, c, result.Opened)
	}
	return result, nil
}

// walkAdjacent flood-fills outward from an empty tile. A worklist stands in
// for recursion so large boards cannot exhaust the stack; each tile is pushed
// at most once because it is marked revealed before being pushed.
func walkAdjacent(board *Board, start Coord, opened []Coord) []Coord {
	stack := []Coord{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, adj := range AdjacentCoords(cur.Row, cur.Col, board.MaxIndex()) {
			tile := &board.Tiles[adj.Row][adj.Col]
			if tile.Revealed {
				continue
			}
			tile.Revealed = true
			opened = append(opened, adj)
			if tile.Value == 0 {
				stack = append(stack, adj)
			}
		}
	}
	return opened
}
