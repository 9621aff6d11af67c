// Package match runs one game between a human and the search engine.
package match

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/havfo/othello/internal/othello"
)

// Step says what the front end has to do next.
type Step int

const (
	StepHuman Step = iota
	StepCPU
	StepPass
	StepOver
)

func (s Step) String() string {
	switch s {
	case StepHuman:
		return "human"
	case StepCPU:
		return "cpu"
	case StepPass:
		return "pass"
	case StepOver:
		return "over"
	}

	return "unknown"
}

// Outcome is the result of a finished game. Winner is othello.Empty on a draw.
type Outcome struct {
	Winner othello.Cell
	Black  int
	White  int
}

func (o Outcome) String() string {
	switch o.Winner {
	case othello.Black:
		return "Winner is BLACK"
	case othello.White:
		return "Winner is WHITE"
	}

	return "DRAW"
}

// Match holds the current state of a game and which side the human plays.
// It is not safe for concurrent use.
type Match struct {
	id    string
	human othello.Player
	state othello.State
	log   *zap.SugaredLogger
}

// New starts a game from the opening position.
func New(human othello.Player, log *zap.SugaredLogger) *Match {
	m := &Match{
		human: human,
		log:   log,
	}

	m.Reset()

	return m
}

// Reset starts a new game under a new session id.
func (m *Match) Reset() {
	m.id = uuid.NewString()
	m.state = othello.InitialState()

	m.log.Infow("new game", "session", m.id, "human", m.human, "cpu", m.human.Opponent())
}

// Restart starts a new game with the human playing the given side.
func (m *Match) Restart(human othello.Player) {
	m.human = human
	m.Reset()
}

func (m *Match) ID() string { return m.id }

func (m *Match) Human() othello.Player { return m.human }

// State returns the current state. The value is a copy.
func (m *Match) State() othello.State { return m.state }

// Moves returns the legal moves of the side to move.
func (m *Match) Moves() othello.MoveSet {
	return othello.LegalMoves(m.state)
}

// Next classifies the current position.
func (m *Match) Next() Step {
	switch {
	case othello.IsTerminal(m.state):
		return StepOver
	case !othello.HasMoves(m.state):
		return StepPass
	case m.state.Turn() == m.human:
		return StepHuman
	}

	return StepCPU
}

// PlayHuman commits the human's move. Nothing changes when an error is
// returned, so the caller can ask again.
func (m *Match) PlayHuman(mv othello.Move) error {
	switch m.Next() {
	case StepOver:
		return ErrGameOver
	case StepHuman:
	default:
		return ErrNotHumanTurn
	}

	next, ok := m.Moves().Lookup(mv)
	if !ok {
		return fmt.Errorf("%s: %w", mv, ErrIllegalMove)
	}

	m.commit(mv, next)

	return nil
}

// PlayCPU searches for the computer's move and commits it.
func (m *Match) PlayCPU() (othello.Move, error) {
	switch m.Next() {
	case StepOver:
		return othello.Move{}, ErrGameOver
	case StepCPU:
	default:
		return othello.Move{}, ErrNotCPUTurn
	}

	res, ok := othello.ChooseRootMove(m.state)
	if !ok {
		return othello.Move{}, ErrNotCPUTurn
	}

	m.log.Debugw("search done", "session", m.id, "move", res.Move.String(), "score", int(res.Score), "nodes", res.Nodes)
	m.commit(res.Move, res.State)

	return res.Move, nil
}

// Pass hands the turn over when the side to move has no legal placement.
func (m *Match) Pass() error {
	switch m.Next() {
	case StepOver:
		return ErrGameOver
	case StepPass:
	default:
		return ErrNoPass
	}

	player := m.state.Turn()
	m.state = othello.Pass(m.state)

	m.log.Infow("pass", "session", m.id, "player", player)

	return nil
}

// Outcome reports the result once the game is over.
func (m *Match) Outcome() (Outcome, bool) {
	if !othello.IsTerminal(m.state) {
		return Outcome{}, false
	}

	return Outcome{
		Winner: othello.Winner(m.state),
		Black:  m.state.BlackCount(),
		White:  m.state.WhiteCount(),
	}, true
}

func (m *Match) commit(mv othello.Move, next othello.State) {
	player := m.state.Turn()
	m.state = next

	m.log.Infow("move", "session", m.id, "player", player, "move", mv.String(),
		"black", next.BlackCount(), "white", next.WhiteCount())

	if out, over := m.Outcome(); over {
		m.log.Infow("game over", "session", m.id, "result", out.String(),
			"black", out.Black, "white", out.White)
	}
}
