package othello

// Board is an 8x8 grid indexed [x][y]. It is an array so every assignment
// copies it, which is what keeps ancestor states intact during search.
type Board [BoardSize][BoardSize]Cell

// NewBoard returns the starting position: White on the d4/e5 diagonal,
// Black on e4/d5.
func NewBoard() Board {
	var b Board
	mid := BoardSize / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid][mid-1], b[mid-1][mid] = Black, Black

	return b
}

// At returns the cell at column x, row y.
func (b Board) At(x, y int) Cell {
	return b[x][y]
}

// With returns a copy of the board with (x, y) set to c.
func (b Board) With(x, y int, c Cell) Board {
	b[x][y] = c

	return b
}

// Count returns the number of cells holding c.
func (b Board) Count(c Cell) int {
	n := 0

	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b[x][y] == c {
				n++
			}
		}
	}

	return n
}

func inBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}
