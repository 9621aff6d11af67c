package othello

import (
	"errors"
	"fmt"
	"strings"
)

const (
	columns = "abcdefgh"
	rows    = "12345678"
)

// ErrInvalidNotation is wrapped by every ParseMove failure.
var ErrInvalidNotation = errors.New("invalid move notation")

// UnknownMoveError reports text that does not name a board cell.
type UnknownMoveError struct {
	s string
}

func (e *UnknownMoveError) Error() string {
	return fmt.Sprintf("move %q is unknown, want a column a-h followed by a row 1-8", e.s)
}

func (e *UnknownMoveError) Unwrap() error {
	return ErrInvalidNotation
}

// ParseMove converts notation such as "e3" into a Move.
func ParseMove(s string) (Move, error) {
	if len(s) != 2 {
		return Move{}, &UnknownMoveError{s: s}
	}

	x := strings.IndexByte(columns, s[0])
	y := strings.IndexByte(rows, s[1])

	if x < 0 || y < 0 {
		return Move{}, &UnknownMoveError{s: s}
	}

	return Move{X: x, Y: y}, nil
}

// String returns the notation of m, or "??" for an off-board move.
func (m Move) String() string {
	if !inBounds(m.X, m.Y) {
		return "??"
	}

	return string([]byte{columns[m.X], rows[m.Y]})
}
