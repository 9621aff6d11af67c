package othello

const (
	BoardSize  = 8
	TotalCells = BoardSize * BoardSize

	// SearchDepth is the number of plies the CPU looks ahead.
	SearchDepth = 3
)

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// Player is the side to move. Its values line up with the matching Cell.
type Player uint8

const (
	PlayerBlack = Player(Black)
	PlayerWhite = Player(White)
)

// Directions scanned when looking for capturing runs.
var directions = []struct{ x, y int }{
	{1, 0}, {-1, 0},
	{1, 1}, {-1, -1},
	{1, -1}, {-1, 1},
	{0, 1}, {0, -1},
}

// Weights is the positional table used by Evaluate, indexed [y][x].
var Weights = [BoardSize][BoardSize]int{
	{40, -12, 0, -1, -1, 0, -12, 40},
	{-12, -15, -3, -3, -3, -3, -15, -12},
	{0, -3, 0, -1, -1, 0, -3, 0},
	{-1, -3, -1, -1, -1, -1, -3, -1},
	{-1, -3, -1, -1, -1, -1, -3, -1},
	{0, -3, 0, -1, -1, 0, -3, 0},
	{-12, -15, -3, -3, -3, -3, -15, -12},
	{40, -12, 0, -1, -1, 0, -12, 40},
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == PlayerBlack {
		return PlayerWhite
	}

	return PlayerBlack
}

// Cell returns the disc colour owned by the player.
func (p Player) Cell() Cell {
	return Cell(p)
}

func (p Player) String() string {
	switch p {
	case PlayerBlack:
		return "Black"
	case PlayerWhite:
		return "White"
	}

	return "Unknown"
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}

	return "Empty"
}
