package match

import "errors"

var (
	ErrGameOver     = errors.New("game is over")
	ErrNotHumanTurn = errors.New("it is not the human player's turn")
	ErrNotCPUTurn   = errors.New("it is not the cpu player's turn")
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoPass       = errors.New("pass is only allowed when the side to move has no legal move")
)
