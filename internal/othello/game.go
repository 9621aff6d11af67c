package othello

// Move is a placement at column X, row Y. It is only meaningful together with
// the State it was generated from.
type Move struct {
	X, Y int
}

// State is one snapshot of the game. It has value semantics: every method
// that "changes" it returns a new State and leaves the receiver untouched.
type State struct {
	board  Board
	placed int
	turn   Player
	black  int
	white  int
}

// InitialState returns the four-disc opening position with White to move.
func InitialState() State {
	return State{
		board:  NewBoard(),
		placed: 4,
		turn:   PlayerWhite,
		black:  2,
		white:  2,
	}
}

// StateFromBoard builds a State for an arbitrary position. It is the only
// place counts are taken from the board; transitions keep them by arithmetic.
func StateFromBoard(b Board, turn Player) State {
	black, white := b.Count(Black), b.Count(White)

	return State{
		board:  b,
		placed: black + white,
		turn:   turn,
		black:  black,
		white:  white,
	}
}

func (s State) Board() Board { return s.board }

// Placed is the number of discs on the board.
func (s State) Placed() int { return s.placed }

// Turn is the player to move, not the one who just moved.
func (s State) Turn() Player { return s.turn }

func (s State) BlackCount() int { return s.black }

func (s State) WhiteCount() int { return s.white }

// Count returns the number of discs owned by p.
func (s State) Count(p Player) int {
	if p == PlayerBlack {
		return s.black
	}

	return s.white
}

// withTurn is the "if it were p's turn" view of the same position. The
// result is a throwaway value; the receiver is not changed.
func (s State) withTurn(p Player) State {
	s.turn = p

	return s
}

// Transition pairs a legal move with the state it leads to.
type Transition struct {
	Move  Move
	State State
}

// MoveSet is the result of move generation, in enumeration order: rows top to
// bottom, columns left to right within a row. The order decides search ties.
type MoveSet []Transition

// Lookup returns the state reached by m, if m is legal.
func (ms MoveSet) Lookup(m Move) (State, bool) {
	for _, t := range ms {
		if t.Move == m {
			return t.State, true
		}
	}

	return State{}, false
}

// Contains reports whether m is one of the legal moves.
func (ms MoveSet) Contains(m Move) bool {
	_, ok := ms.Lookup(m)

	return ok
}

// run is a capturing line from a candidate move: length is the distance from
// the move to the bracketing own disc, so length-1 opponent discs flip.
type run struct {
	dx, dy int
	length int
}

// LegalMoves returns every legal placement for the side to move and the state
// each one produces. An empty set means the side to move must pass.
func LegalMoves(s State) MoveSet {
	var moves MoveSet

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if s.board[x][y] != Empty {
				continue
			}

			if runs := s.runs(x, y); len(runs) > 0 {
				m := Move{X: x, Y: y}
				moves = append(moves, Transition{Move: m, State: applyMove(s, m, runs)})
			}
		}
	}

	return moves
}

// HasMoves reports whether the side to move has any legal placement.
func HasMoves(s State) bool {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if s.board[x][y] == Empty && len(s.runs(x, y)) > 0 {
				return true
			}
		}
	}

	return false
}

// runs returns the capturing lines from the empty cell (x, y) for the side to
// move. A line captures when one or more opponent discs are followed by an own
// disc; an adjacent own disc, an empty cell or the edge end the scan.
func (s State) runs(x, y int) []run {
	var found []run
	own := s.turn.Cell()
	opponent := s.turn.Opponent().Cell()

	for _, dir := range directions {
		nx, ny := x+dir.x, y+dir.y
		steps := 0

		for inBounds(nx, ny) {
			steps++
			cell := s.board[nx][ny]

			if steps > 1 && cell == own {
				found = append(found, run{dx: dir.x, dy: dir.y, length: steps})

				break
			}

			if cell != opponent {
				break
			}

			nx += dir.x
			ny += dir.y
		}
	}

	return found
}

// applyMove places the mover's disc at m, flips every captured run and hands
// the turn over. Counts are updated arithmetically, never rescanned.
func applyMove(s State, m Move, runs []run) State {
	own := s.turn.Cell()
	board := s.board
	board[m.X][m.Y] = own
	flipped := 0

	for _, r := range runs {
		flipped += r.length - 1
		nx, ny := m.X+r.dx, m.Y+r.dy

		for i := 1; i < r.length; i++ {
			board[nx][ny] = own
			nx += r.dx
			ny += r.dy
		}
	}

	next := State{
		board:  board,
		placed: s.placed + 1,
		turn:   s.turn.Opponent(),
		black:  s.black,
		white:  s.white,
	}

	if s.turn == PlayerBlack {
		next.black += flipped + 1
		next.white -= flipped
	} else {
		next.white += flipped + 1
		next.black -= flipped
	}

	return next
}

// Play applies m if it is legal for the side to move. It gives the same
// result as looking m up in LegalMoves(s) without generating the other moves.
func Play(s State, m Move) (State, bool) {
	if !inBounds(m.X, m.Y) || s.board[m.X][m.Y] != Empty {
		return s, false
	}

	runs := s.runs(m.X, m.Y)
	if len(runs) == 0 {
		return s, false
	}

	return applyMove(s, m, runs), true
}

// Pass hands the turn to the opponent without touching the board.
func Pass(s State) State {
	return s.withTurn(s.turn.Opponent())
}

// IsTerminal reports whether the game is over: the board is full, or neither
// the side to move nor its opponent has a legal placement.
func IsTerminal(s State) bool {
	if s.placed == TotalCells {
		return true
	}

	if HasMoves(s) {
		return false
	}

	return !HasMoves(s.withTurn(s.turn.Opponent()))
}

// Winner returns the cell colour with more discs, or Empty for a draw.
func Winner(s State) Cell {
	switch {
	case s.black > s.white:
		return Black
	case s.white > s.black:
		return White
	}

	return Empty
}
