package othello

// Score is a search value from the point of view of the side to move at the
// node that produced it. Evaluations stay within about ±400, far from both
// NoMoveScore and the search bounds.
type Score int

const (
	// NoMoveScore is returned for a non-horizon node whose side to move has
	// no legal placement. No pass branch is searched.
	NoMoveScore Score = -1000

	// rootBeta caps the root window. A move worth at least this much is
	// reported with a lower bound, not its exact value.
	rootBeta Score = 100

	scoreInf Score = 1 << 30
)

// Evaluate scores the position for the side to move with the positional
// weight table: the mover's weighted discs minus the opponent's.
func Evaluate(s State) Score {
	own := s.turn.Cell()
	opponent := s.turn.Opponent().Cell()
	res := 0

	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			switch s.board[x][y] {
			case opponent:
				res += Weights[y][x]
			case own:
				res -= Weights[y][x]
			}
		}
	}

	return Score(-res)
}

// Result is the move chosen at the root of the search.
type Result struct {
	Move  Move
	State State
	Score Score
	Nodes int
}

type searcher struct {
	nodes int
}

// NegamaxValue returns the negamax value of s searched from ply depth with
// the window (alpha, beta). Nodes at SearchDepth are evaluated statically.
func NegamaxValue(s State, depth int, alpha, beta Score) Score {
	var sr searcher

	return sr.negamax(s, depth, alpha, beta)
}

func (sr *searcher) negamax(s State, depth int, alpha, beta Score) Score {
	sr.nodes++

	if depth >= SearchDepth {
		return Evaluate(s)
	}

	moves := LegalMoves(s)
	if len(moves) == 0 {
		return NoMoveScore
	}

	best := -scoreInf

	for _, t := range moves {
		val := -sr.negamax(t.State, depth+1, -beta, -alpha)

		if val >= beta {
			return val
		}

		if val > best {
			best = val
			alpha = max(alpha, best)
		}
	}

	return best
}

// ChooseRootMove searches every legal move of s with the window
// (NoMoveScore, rootBeta) and returns the best one. Root children are never
// cut off, and a later move replaces the current best only when strictly
// better, so the first of equal moves wins.
// It returns false when the side to move has no legal placement.
func ChooseRootMove(s State) (Result, bool) {
	moves := LegalMoves(s)
	if len(moves) == 0 {
		return Result{}, false
	}

	sr := searcher{nodes: 1}
	alpha, beta := NoMoveScore, rootBeta
	res := Result{Score: -scoreInf}

	for _, t := range moves {
		val := -sr.negamax(t.State, 1, -beta, -alpha)

		if val > res.Score {
			res.Score = val
			res.Move = t.Move
			res.State = t.State
			alpha = max(alpha, val)
		}
	}

	res.Nodes = sr.nodes

	return res, true
}

// SearchBestMove returns the CPU's move for s and the state it leads to.
func SearchBestMove(s State) (Move, State, bool) {
	res, ok := ChooseRootMove(s)

	return res.Move, res.State, ok
}
