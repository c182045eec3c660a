package random

import (
	"errors"
	"math/rand"

	"github.com/they4kman/sweepcore/game"
)

var ErrNoMoves = errors.New("no hidden tiles left to reveal")

// Director reveals hidden, unflagged tiles in a random order
type Director struct {
	Seed int64

	board *game.Board
	order []game.Coord
	next  int
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.order = board.HiddenTiles()
	director.next = 0

	rng := rand.New(rand.NewSource(director.Seed))
	rng.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() (game.Coord, error) {
	for ; director.next < len(director.order); director.next++ {
		c := director.order[director.next]

		tile, err := director.board.TileAt(c.Row, c.Col)
		if err != nil {
			return c, err
		}
		if tile.IsRevealed() || tile.IsFlagged() {
			continue
		}

		director.next++
		return c, director.board.Reveal(c.Row, c.Col)
	}

	return game.Coord{}, ErrNoMoves
}
