package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/havfo/othello/internal/match"
	"github.com/havfo/othello/internal/othello"
)

const cellWidth = 2

// runConsole plays a game over a plain text stream. Moves are read one per
// line in a-h/1-8 notation.
func runConsole(m *match.Match, in io.Reader, out io.Writer, showMoves bool) (match.Outcome, error) {
	scanner := bufio.NewScanner(in)

	printBoard(out, m.State().Board(), m.Moves(), showMoves)

	for {
		s := m.State()
		fmt.Fprintln(out, "--------------------")
		fmt.Fprintf(out, "black : %d, white : %d\n", s.BlackCount(), s.WhiteCount())
		fmt.Fprintf(out, "turn :  %s\n", turnLabel(s.Turn()))

		switch m.Next() {
		case match.StepOver:
			outcome, _ := m.Outcome()
			fmt.Fprintln(out, outcome)

			return outcome, nil

		case match.StepPass:
			fmt.Fprintln(out, "--- Pass ---")

			if err := m.Pass(); err != nil {
				return match.Outcome{}, err
			}

			continue

		case match.StepHuman:
			if err := readHumanMove(m, scanner, out); err != nil {
				return match.Outcome{}, err
			}

		case match.StepCPU:
			mv, err := m.PlayCPU()
			if err != nil {
				return match.Outcome{}, err
			}

			fmt.Fprintln(out, mv)
		}

		printBoard(out, m.State().Board(), m.Moves(), showMoves)
	}
}

func turnLabel(p othello.Player) string {
	if p == othello.PlayerBlack {
		return "BLACK(1)"
	}

	return "WHITE(0)"
}

// readHumanMove keeps reading lines until one holds a legal move. Lines that
// are not a cell get "INVALID"; cells that are not legal are skipped quietly.
func readHumanMove(m *match.Match, scanner *bufio.Scanner, out io.Writer) error {
	for {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read move: %w", err)
			}

			return fmt.Errorf("read move: %w", io.ErrUnexpectedEOF)
		}

		mv, err := othello.ParseMove(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "INVALID")

			continue
		}

		if err := m.PlayHuman(mv); err != nil {
			continue
		}

		return nil
	}
}

// printBoard writes the board with column letters on top and row numbers on
// the left. Legal moves are marked with '*' when showMoves is set.
func printBoard(out io.Writer, b othello.Board, legal othello.MoveSet, showMoves bool) {
	var sb strings.Builder

	sb.WriteString(runewidth.FillRight("-", cellWidth))
	for x := 0; x < othello.BoardSize; x++ {
		sb.WriteString(runewidth.FillRight(string(rune('a'+x)), cellWidth))
	}
	sb.WriteString("\n")

	for y := 0; y < othello.BoardSize; y++ {
		sb.WriteString(runewidth.FillRight(fmt.Sprint(y+1), cellWidth))

		for x := 0; x < othello.BoardSize; x++ {
			symbol := getPieceSymbol(b.At(x, y))
			if showMoves && legal.Contains(othello.Move{X: x, Y: y}) {
				symbol = "*"
			}

			sb.WriteString(runewidth.FillRight(symbol, cellWidth))
		}
		sb.WriteString("\n")
	}

	fmt.Fprint(out, sb.String())
}

func getPieceSymbol(c othello.Cell) string {
	switch c {
	case othello.Black:
		return "●"
	case othello.White:
		return "○"
	}

	return "-"
}
