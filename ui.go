package main

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/havfo/othello/internal/match"
	"github.com/havfo/othello/internal/othello"
)

var spinners = []string{"|", "/", "-", "\\"}

// spin passes the next spinner frame to draw on every tick until done is
// closed. Each call keeps its own frame counter.
func spin(done <-chan struct{}, tick <-chan time.Time, draw func(frame string)) {
	for i := 0; ; i++ {
		select {
		case <-done:
			return
		case <-tick:
		}

		draw(spinners[i%len(spinners)])
	}
}

// runTUI shows the start form and plays games until the user quits. It
// returns the outcome of the last finished game, if any.
func runTUI(m *match.Match, cfg Config, log *zap.SugaredLogger) (match.Outcome, bool, error) {
	app := tview.NewApplication()

	var (
		lastOutcome    match.Outcome
		finished       bool
		showValidMoves = cfg.ShowValidMoves
		humanOption    = m.Human()
	)

	var showStartScreen func()
	var startGame func()

	showStartScreen = func() {
		initial := 0
		if humanOption == othello.PlayerWhite {
			initial = 1
		}

		form := tview.NewForm()
		form.
			AddDropDown("Choose your color", []string{"Black", "White"}, initial, func(option string, index int) {
				humanOption = othello.PlayerBlack
				if option == "White" {
					humanOption = othello.PlayerWhite
				}
			}).
			AddCheckbox("Show valid moves", showValidMoves, func(checked bool) {
				showValidMoves = checked
			}).
			AddButton("Start Game", func() {
				m.Restart(humanOption)
				startGame()
			}).
			AddButton("Quit", func() {
				app.Stop()
			})
		form.SetBorder(true).SetTitle("Othello").SetTitleAlign(tview.AlignCenter)

		app.SetRoot(form, true).SetFocus(form)
	}

	startGame = func() {
		boardTable := tview.NewTable()

		boardTable.SetSelectable(true, true)
		boardTable.SetFixed(1, 1)
		boardTable.SetBorder(true)
		boardTable.SetTitleAlign(tview.AlignLeft)
		boardTable.SetTitleColor(tcell.ColorGreen)
		boardTable.SetBorderColor(tcell.ColorGreen)
		boardTable.SetBorders(true)

		scoreBox := tview.NewTextView()
		scoreBox.SetBorder(true)
		scoreBox.SetTitle("Score")

		flex := tview.NewFlex().
			AddItem(boardTable, 0, 1, true).
			AddItem(scoreBox, 30, 1, false)

		for x := 0; x < othello.BoardSize; x++ {
			boardTable.SetCell(0, x+1, tview.NewTableCell(string(rune('a'+x))).
				SetAlign(tview.AlignCenter).SetSelectable(false).SetTextColor(tcell.ColorYellow))
		}
		for y := 0; y < othello.BoardSize; y++ {
			boardTable.SetCell(y+1, 0, tview.NewTableCell(fmt.Sprint(y+1)).
				SetAlign(tview.AlignCenter).SetSelectable(false).SetTextColor(tcell.ColorYellow))
		}
		boardTable.SetCell(0, 0, tview.NewTableCell("").SetSelectable(false))

		var lastEvent string

		updateBoard := func() {
			s := m.State()
			legal := m.Moves()

			for y := 0; y < othello.BoardSize; y++ {
				for x := 0; x < othello.BoardSize; x++ {
					cell := tview.NewTableCell(" " + getPieceSymbol(s.Board().At(x, y)) + " ")
					cell.SetAlign(tview.AlignCenter)

					if s.Board().At(x, y) == othello.Empty {
						cell.SetText("   ")

						if showValidMoves && s.Turn() == m.Human() && legal.Contains(othello.Move{X: x, Y: y}) {
							cell.SetText(" · ")
							cell.SetTextColor(tcell.ColorGreen)
						}
					}

					boardTable.SetCell(y+1, x+1, cell)
				}
			}

			boardTable.SetTitle(fmt.Sprintf(" Othello - %s's turn ", s.Turn()))

			scoreBox.SetText(fmt.Sprintf("Black: %d\nWhite: %d\n\nYou play %s\n\n%s",
				s.BlackCount(), s.WhiteCount(), m.Human(), lastEvent))
		}

		updateBoard()

		var AIThinking int32

		var processNextTurn func()

		processNextTurn = func() {
			switch m.Next() {
			case match.StepOver:
				outcome, _ := m.Outcome()
				lastOutcome, finished = outcome, true
				updateBoard()

				modal := tview.NewModal().
					SetText(fmt.Sprintf("Game Over!\n%s\nBlack score: %d\nWhite score: %d", outcome, outcome.Black, outcome.White)).
					AddButtons([]string{"New Game", "Quit"}).
					SetDoneFunc(func(buttonIndex int, buttonLabel string) {
						if buttonLabel == "New Game" {
							showStartScreen()
						} else {
							app.Stop()
						}
					})

				app.SetRoot(modal, false).SetFocus(modal)

			case match.StepPass:
				player := m.State().Turn()

				if err := m.Pass(); err != nil {
					log.Errorw("pass", "session", m.ID(), "error", err)

					return
				}

				lastEvent = fmt.Sprintf("%s has no move and passes", player)
				updateBoard()
				processNextTurn()

			case match.StepCPU:
				atomic.StoreInt32(&AIThinking, 1)
				done := make(chan struct{})
				player := m.State().Turn().String()

				ticker := time.NewTicker(100 * time.Millisecond)
				go func() {
					defer ticker.Stop()

					spin(done, ticker.C, func(frame string) {
						app.QueueUpdateDraw(func() {
							boardTable.SetTitle(fmt.Sprintf(" Othello - %s's turn %s ", player, frame))
						})
					})
				}()

				go func() {
					mv, err := m.PlayCPU()

					close(done)
					atomic.StoreInt32(&AIThinking, 0)

					app.QueueUpdateDraw(func() {
						if err != nil {
							log.Errorw("cpu move", "session", m.ID(), "error", err)
						} else {
							lastEvent = fmt.Sprintf("%s played %s", player, mv)
						}

						updateBoard()
						processNextTurn()
					})
				}()

			case match.StepHuman:
				updateBoard()
			}
		}

		boardTable.SetSelectedFunc(func(row, column int) {
			if atomic.LoadInt32(&AIThinking) == 1 {
				return
			}

			mv := othello.Move{X: column - 1, Y: row - 1}

			if err := m.PlayHuman(mv); err != nil {
				log.Debugw("rejected move", "session", m.ID(), "move", mv.String(), "error", err)

				return
			}

			lastEvent = fmt.Sprintf("You played %s", mv)
			updateBoard()
			processNextTurn()
		})

		boardTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
			if event.Key() == tcell.KeyEscape && atomic.LoadInt32(&AIThinking) == 0 {
				showStartScreen()

				return nil
			}

			if event.Key() == tcell.KeyRune && strings.ContainsRune("qQ", event.Rune()) {
				app.Stop()

				return nil
			}

			return event
		})

		app.SetRoot(flex, true)
		processNextTurn()
	}

	showStartScreen()

	if err := app.Run(); err != nil {
		return match.Outcome{}, false, fmt.Errorf("terminal ui: %w", err)
	}

	return lastOutcome, finished, nil
}
