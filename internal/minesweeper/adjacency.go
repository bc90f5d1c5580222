package minesweeper

// adjacentOffsets is walked in this order everywhere neighbours are visited.
var adjacentOffsets = [8]Coord{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, -1},
	{0, 1},
	{1, -1},
	{1, 0},
	{1, 1},
}

// AdjacentCoords returns the up to eight neighbours of (row, col) that lie
// inside a square board whose last valid index is maxIndex. Corners yield 3
// neighbours and edges 5; there is no wraparound.
func AdjacentCoords(row, col, maxIndex int) []Coord {
	coords := make([]Coord, 0, len(adjacentOffsets))
	for _, off := range adjacentOffsets {
		r := row + off.Row
		c := col + off.Col
		if r < 0 || r > maxIndex || c < 0 || c > maxIndex {
			continue
		}
		coords = append(coords, Coord{Row: r, Col: c})
	}
	return coords
}
