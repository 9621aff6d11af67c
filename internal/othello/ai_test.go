package othello

import "testing"

// reference is negamax without pruning, used to check the alpha-beta search.
func reference(s State, depth int) Score {
	if depth >= SearchDepth {
		return Evaluate(s)
	}

	moves := LegalMoves(s)
	if len(moves) == 0 {
		return NoMoveScore
	}

	best := -scoreInf
	for _, tr := range moves {
		if v := -reference(tr.State, depth+1); v > best {
			best = v
		}
	}

	return best
}

func TestEvaluate(t *testing.T) {
	if got := Evaluate(InitialState()); got != 0 {
		t.Fatalf("expected the symmetric opening to score 0, got %d", got)
	}

	b := Board{}.With(0, 0, White).With(1, 1, Black)

	if got := Evaluate(StateFromBoard(b, PlayerWhite)); got != 55 {
		t.Fatalf("expected 55 for the corner owner, got %d", got)
	}
	if got := Evaluate(StateFromBoard(b, PlayerBlack)); got != -55 {
		t.Fatalf("expected -55 for the other side, got %d", got)
	}
}

func TestWeightsSymmetric(t *testing.T) {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			w := Weights[y][x]
			if w != Weights[x][y] || w != Weights[y][BoardSize-1-x] || w != Weights[BoardSize-1-y][x] {
				t.Fatalf("weight table is not symmetric at (%d,%d)", x, y)
			}
		}
	}
}

func TestNegamaxNoMoveSentinel(t *testing.T) {
	b := Board{}.With(0, 0, Black).With(1, 0, White)
	s := StateFromBoard(b, PlayerWhite)

	if got := NegamaxValue(s, 1, -scoreInf, scoreInf); got != NoMoveScore {
		t.Fatalf("expected %d, got %d", NoMoveScore, got)
	}

	// At the horizon the position is evaluated, moves or not.
	if got := NegamaxValue(s, SearchDepth, -scoreInf, scoreInf); got != Evaluate(s) {
		t.Fatalf("expected the static evaluation %d, got %d", Evaluate(s), got)
	}
}

func TestSearchMatchesReference(t *testing.T) {
	for _, pick := range []func(MoveSet) Transition{firstMove, lastMove} {
		for i, s := range playout(pick) {
			moves := LegalMoves(s)
			if len(moves) == 0 {
				continue
			}

			values := make(map[Move]Score, len(moves))
			wantScore := -scoreInf
			var want Move
			for _, tr := range moves {
				v := -reference(tr.State, 1)
				values[tr.Move] = v
				if v > wantScore {
					wantScore = v
					want = tr.Move
				}
			}

			res, ok := ChooseRootMove(s)
			if !ok {
				t.Fatalf("state %d: expected a move", i)
			}

			// Below rootBeta the root values are exact; at or above it any
			// move that reaches rootBeta may be chosen.
			if wantScore < rootBeta {
				if res.Score != wantScore || res.Move != want {
					t.Fatalf("state %d: expected %s (%d), got %s (%d)", i, want, wantScore, res.Move, res.Score)
				}
			} else if res.Score < rootBeta || values[res.Move] < rootBeta {
				t.Fatalf("state %d: expected a move worth at least %d, got %s (%d, exact %d)", i, rootBeta, res.Move, res.Score, values[res.Move])
			}

			if next, _ := moves.Lookup(res.Move); next != res.State {
				t.Fatalf("state %d: result state does not match the move", i)
			}
			if res.Nodes < len(moves)+1 {
				t.Fatalf("state %d: expected at least %d nodes, got %d", i, len(moves)+1, res.Nodes)
			}

			if v := NegamaxValue(s, 0, -scoreInf, scoreInf); v != wantScore {
				t.Fatalf("state %d: full window value %d, want %d", i, v, wantScore)
			}
		}
	}
}

// boardFromRows reads 64 cells, rows top to bottom: 'B', 'W' or '0'.
func boardFromRows(t *testing.T, rows string) Board {
	t.Helper()

	if len(rows) != TotalCells {
		t.Fatalf("expected %d cells, got %d", TotalCells, len(rows))
	}

	var b Board
	for i, c := range rows {
		x, y := i%BoardSize, i/BoardSize

		switch c {
		case 'B':
			b[x][y] = Black
		case 'W':
			b[x][y] = White
		case '0':
		default:
			t.Fatalf("unknown cell %q", c)
		}
	}

	return b
}

func TestSearchRootWindow(t *testing.T) {
	b := boardFromRows(t, "W0W0B0000WWWWWB0B0WWWWW0BBWWBWB0BBWBBWBBWBWBBBBBWBBW0BBB0BW000B0")
	s := StateFromBoard(b, PlayerWhite)

	h1, h8 := mustMove(t, "h1"), mustMove(t, "h8")
	moves := LegalMoves(s)

	// Both corners are worth 104; with an open window h1 would win the tie.
	for _, m := range []Move{h1, h8} {
		next, ok := moves.Lookup(m)
		if !ok {
			t.Fatalf("expected %s to be legal", m)
		}
		if v := -reference(next, 1); v != 104 {
			t.Fatalf("%s: expected 104, got %d", m, v)
		}
	}

	res, ok := ChooseRootMove(s)
	if !ok {
		t.Fatalf("expected a move")
	}
	if res.Move != h8 {
		t.Fatalf("expected h8, got %s (%d)", res.Move, res.Score)
	}
	if res.Score < rootBeta {
		t.Fatalf("expected a score of at least %d, got %d", rootBeta, res.Score)
	}
}

func TestSearchDeterministic(t *testing.T) {
	s, _ := LegalMoves(InitialState()).Lookup(Move{X: 4, Y: 2})

	m1, s1, ok1 := SearchBestMove(s)
	m2, s2, ok2 := SearchBestMove(s)

	if !ok1 || !ok2 {
		t.Fatalf("expected a move")
	}
	if m1 != m2 || s1 != s2 {
		t.Fatalf("expected identical results, got %s and %s", m1, m2)
	}
}

func TestSearchTieBreakPrefersFirstMove(t *testing.T) {
	s := InitialState()
	moves := LegalMoves(s)

	// The opening is symmetric, so all four replies are worth the same.
	v0 := -reference(moves[0].State, 1)
	for _, tr := range moves[1:] {
		if v := -reference(tr.State, 1); v != v0 {
			t.Fatalf("expected equal values, %s is %d and %s is %d", moves[0].Move, v0, tr.Move, v)
		}
	}

	m, next, ok := SearchBestMove(s)
	if !ok {
		t.Fatalf("expected a move")
	}
	if m != moves[0].Move || next != moves[0].State {
		t.Fatalf("expected the first enumerated move %s, got %s", moves[0].Move, m)
	}
}

func TestSearchWithoutMoves(t *testing.T) {
	s := StateFromBoard(Board{}.With(0, 0, Black).With(1, 0, White), PlayerWhite)

	if _, _, ok := SearchBestMove(s); ok {
		t.Fatalf("expected no move when the side to move must pass")
	}
}
