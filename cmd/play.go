package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
)

type sessionConfig struct {
	UseDirector bool
	Delay       time.Duration

	// Snapshot file to load the board from
	LayoutPath string
	// Whether to print the board snapshot once the game ends
	Dump bool
}

func newSessionConfig() *sessionConfig {
	return &sessionConfig{
		Delay: 500 * time.Millisecond,
	}
}

func (config *sessionConfig) createBoard(boardConfig game.BoardConfig) (*game.Board, error) {
	boardConfig.Logger = log
	if config.LayoutPath == "" {
		return boardConfig.CreateBoard()
	}

	in, err := os.ReadFile(config.LayoutPath)
	if err != nil {
		return nil, err
	}
	snapshot, err := game.LoadSnapshot(string(in))
	if err != nil {
		return nil, err
	}
	return snapshot.CreateBoard(log)
}

type moveKind int

const (
	moveReveal moveKind = iota
	moveFlag
	moveQuit
)

type move struct {
	kind     moveKind
	row, col int
}

func parseXY(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

// parseMove reads "row col", "f row col" or "q"
func parseMove(line string) (m move, err error) {
	parts := strings.Fields(line)
	switch {
	case len(parts) == 1 && parts[0] == "q":
		m.kind = moveQuit
	case len(parts) == 2:
		m.kind = moveReveal
		m.row, m.col, err = parseXY(parts)
	case len(parts) == 3 && parts[0] == "f":
		m.kind = moveFlag
		m.row, m.col, err = parseXY(parts[1:])
	default:
		err = errors.New("expected \"row col\", \"f row col\" or \"q\"")
	}
	return
}

type outcome int

const (
	ongoing outcome = iota
	lost
	cleared
)

// outcomeOf decides whether the game is over. The board itself leaves this to
// its caller.
func outcomeOf(board *game.Board) outcome {
	if !board.MinesPlaced() {
		return ongoing
	}

	for _, row := range board.Tiles() {
		for _, tile := range row {
			if tile.IsMine() {
				return lost
			}
		}
	}

	if len(board.HiddenTiles()) == board.NumMines() {
		return cleared
	}
	return ongoing
}

type session struct {
	board *game.Board
	in    io.Reader
	out   io.Writer
}

func (s *session) print() {
	fmt.Fprintln(s.out, s.board.String())
	fmt.Fprintln(s.out)
}

func (s *session) announce(result outcome) {
	switch result {
	case lost:
		fmt.Fprintln(s.out, "You hit a mine.")
	case cleared:
		fmt.Fprintln(s.out, "Board cleared!")
	}
}

func (s *session) play() error {
	scanner := bufio.NewScanner(s.in)

	s.print()
	for scanner.Scan() {
		m, err := parseMove(scanner.Text())
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}

		switch m.kind {
		case moveQuit:
			return nil
		case moveFlag:
			err = s.board.ToggleFlag(m.row, m.col)
		default:
			err = s.board.Reveal(m.row, m.col)
		}
		if errors.Is(err, game.ErrOutOfRange) {
			fmt.Fprintln(s.out, err)
			continue
		} else if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"row": m.row, "col": m.col, "flag": m.kind == moveFlag,
		}).Debug("move")

		s.print()
		if result := outcomeOf(s.board); result != ongoing {
			s.announce(result)
			return nil
		}
	}

	return scanner.Err()
}

func (s *session) direct(delay time.Duration) error {
	var director game.Director = &random.Director{Seed: s.board.Seed()}
	director.Init(s.board)

	if delay <= 0 {
		delay = time.Millisecond
	}
	tick := time.NewTicker(delay)
	defer tick.Stop()

	s.print()
	for range tick.C {
		c, err := director.Act()
		if errors.Is(err, random.ErrNoMoves) {
			return nil
		} else if err != nil {
			return err
		}

		log.WithField("coord", c).Debug("director move")

		s.print()
		if result := outcomeOf(s.board); result != ongoing {
			s.announce(result)
			return nil
		}
	}

	return nil
}

func (s *session) dump() error {
	out, err := s.board.Snapshot().Serialize()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(s.out, out)
	return err
}
