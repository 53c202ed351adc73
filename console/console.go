// Package console is the terminal presentation layer: it renders board
// state through the engine's read-only queries and feeds user (or
// director) input back into the session.
package console

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jrudowski/minesweep/game"
	"github.com/jrudowski/minesweep/scores"
)

type Options struct {
	Config game.Config

	// Director, when set, plays the game instead of the user.
	Director game.Director
	// Delay between director moves, so the cascade is watchable.
	StepDelay time.Duration

	// PresetName keys best times; empty for custom boards, which don't
	// compete.
	PresetName string
	BestTimes  *scores.Table
}

func Run(opts Options) error {
	if opts.Director != nil {
		return runDirected(opts)
	}
	return runInteractive(opts)
}

func runInteractive(opts Options) error {
	config := opts.Config

	session, err := game.NewSession(config)
	if err != nil {
		return err
	}

	fmt.Println("Commands: r x y (reveal), f x y (flag), n (new game), q (quit)")

	scanner := bufio.NewScanner(os.Stdin)
	announced := false

	for {
		render(session)
		if isOver(session) && !announced {
			announce(session, opts)
			announced = true
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q":
			return nil

		case "n":
			config.Seed = time.Now().UnixNano()
			if session, err = game.NewSession(config); err != nil {
				return err
			}
			announced = false

		case "r", "f":
			if isOver(session) {
				fmt.Println("game over; n starts a new game, q quits")
				continue
			}

			x, y, err := parseCoords(fields)
			if err != nil {
				fmt.Println(err)
				continue
			}

			if fields[0] == "r" {
				err = session.Reveal(x, y)
			} else {
				err = session.ToggleFlag(x, y)
			}
			if err != nil {
				fmt.Println(err)
			}

		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

func runDirected(opts Options) error {
	session, err := game.NewSession(opts.Config)
	if err != nil {
		return err
	}

	opts.Director.Init(session)
	defer opts.Director.End()

	for !isOver(session) {
		action, ok := opts.Director.Act()
		if !ok {
			logrus.Warn("director has no move to play")
			break
		}

		if err := session.Apply(action); err != nil {
			return err
		}

		render(session)
		time.Sleep(opts.StepDelay)
	}

	announce(session, opts)
	return nil
}

func parseCoords(fields []string) (int, int, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("usage: %s x y", fields[0])
	}

	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad x coordinate %q", fields[1])
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("bad y coordinate %q", fields[2])
	}
	return x, y, nil
}

func isOver(session *game.Session) bool {
	return session.State() == game.Won || session.State() == game.Lost
}

func render(session *game.Session) {
	board := session.Board()
	lost := session.State() == game.Lost

	fmt.Printf("\nMines: %03d  Time: %03d\n", session.FlagsRemaining(), int(session.Elapsed().Seconds()))

	fmt.Print("    ")
	for x := 0; x < board.Width(); x++ {
		fmt.Printf("%2d ", x)
	}
	fmt.Println()

	for y := 0; y < board.Height(); y++ {
		fmt.Printf("%2d: ", y)
		for x := 0; x < board.Width(); x++ {
			fmt.Printf("%2s ", cellGlyph(board.CellAt(x, y), lost))
		}
		fmt.Println()
	}
}

func cellGlyph(cell *game.Cell, lost bool) string {
	switch {
	case cell.IsLosingMine():
		return "*"
	case lost && cell.IsFlagged() && !cell.IsMine():
		return "X" // wrong flag
	case cell.IsFlagged():
		return "F"
	case lost && cell.IsMine():
		return "*"
	case !cell.IsRevealed():
		return "-"
	case cell.AdjacentMines() == 0:
		return "."
	default:
		return strconv.Itoa(cell.AdjacentMines())
	}
}

func announce(session *game.Session, opts Options) {
	elapsed := session.Elapsed().Round(time.Second)

	switch session.State() {
	case game.Won:
		fmt.Printf("You won in %s!\n", elapsed)
		recordBest(session, opts)
	case game.Lost:
		fmt.Printf("Boom! You hit a mine after %s.\n", elapsed)
	}
}

func recordBest(session *game.Session, opts Options) {
	// Directors don't compete for best times
	if opts.Director != nil || opts.PresetName == "" || opts.BestTimes == nil {
		return
	}

	improved, err := opts.BestTimes.Record(opts.PresetName, session.Elapsed())
	if err != nil {
		logrus.WithError(err).Warn("cannot save best time")
		return
	}
	if improved {
		fmt.Printf("New best time for %s!\n", opts.PresetName)
	}
}
