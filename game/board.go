package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweepcore/util/collections"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfRange           = errors.New("coordinate out of range")
)

type BoardConfig struct {
	Width, Height int // in number of tiles
	NumMines      int

	// Seed for mine placement. Zero seeds from the clock.
	Seed int64

	Logger logrus.FieldLogger
}

func NewBoardConfig() BoardConfig {
	return BoardConfig{
		Width:    9,
		Height:   9,
		NumMines: 10,
	}
}

func (config BoardConfig) validate() error {
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("%w: %dx%d board", ErrInvalidConfiguration, config.Width, config.Height)
	}
	if config.NumMines < 0 || config.NumMines >= config.Width*config.Height {
		return fmt.Errorf("%w: %d mines on %d tiles",
			ErrInvalidConfiguration, config.NumMines, config.Width*config.Height)
	}
	return nil
}

// CreateBoard returns a board with every tile hidden. Mines are placed on the
// first reveal.
func (config BoardConfig) CreateBoard() (*Board, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	board := Board{
		width:    config.Width,
		height:   config.Height,
		numMines: config.NumMines,
		tiles:    make([][]Tile, config.Height),
		mines:    make(collections.Set[Coord]),
		phase:    unplaced,
		seed:     config.Seed,
		rand:     rand.New(rand.NewSource(config.Seed)),
		log:      config.Logger,
	}

	for row := range board.tiles {
		board.tiles[row] = make([]Tile, config.Width)
		for col := range board.tiles[row] {
			board.tiles[row][col] = Hidden(false)
		}
	}

	return &board, nil
}

// New creates a width x height board holding numMines mines, seeded from the
// clock.
func New(width, height, numMines int) (*Board, error) {
	return BoardConfig{
		Width:    width,
		Height:   height,
		NumMines: numMines,
	}.CreateBoard()
}

// Board is not safe for concurrent use.
type Board struct {
	width, height int
	numMines      int
	tiles         [][]Tile // indexed [row][col]

	mines collections.Set[Coord]
	phase boardPhase

	seed int64
	rand *rand.Rand

	log logrus.FieldLogger
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumTiles() int {
	return board.width * board.height
}

func (board *Board) Seed() int64 {
	return board.seed
}

// MinesPlaced reports whether the first reveal has fixed the mine layout
func (board *Board) MinesPlaced() bool {
	return board.phase == placed
}

func (board *Board) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < board.height && c.Col < board.width
}

func (board *Board) checkBounds(row, col int) (Coord, error) {
	c := Coord{Row: row, Col: col}
	if !board.inBounds(c) {
		return c, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfRange, c, board.width, board.height)
	}
	return c, nil
}

func (board *Board) tileAt(c Coord) *Tile {
	return &board.tiles[c.Row][c.Col]
}

func (board *Board) TileAt(row, col int) (Tile, error) {
	c, err := board.checkBounds(row, col)
	if err != nil {
		return Tile{}, err
	}
	return *board.tileAt(c), nil
}

// Reveal uncovers the tile at (row, col). The first call places the mines,
// never on (row, col). Revealing a mine marks only that tile; revealing a safe
// tile with no neighboring mines clears the surrounding region. Revealing an
// already revealed tile does nothing.
func (board *Board) Reveal(row, col int) error {
	c, err := board.checkBounds(row, col)
	if err != nil {
		return err
	}

	if board.phase == unplaced {
		board.placeMines(c)
	}

	tile := board.tileAt(c)
	if tile.isRevealed {
		return nil
	}

	if board.mines.Contains(c) {
		*tile = Revealed(MineCount)
		board.log.WithField("coord", c).Debug("revealed mine")
		return nil
	}

	*tile = Revealed(board.countNeighborMines(c))
	board.floodFrom(c)

	return nil
}

// ToggleFlag flips the flag marker of a hidden tile. Flags are cosmetic; a
// flagged tile is revealed like any other.
func (board *Board) ToggleFlag(row, col int) error {
	c, err := board.checkBounds(row, col)
	if err != nil {
		return err
	}

	tile := board.tileAt(c)
	if !tile.isRevealed {
		*tile = Hidden(!tile.isFlagged)
	}
	return nil
}

// Tiles returns a copy of the grid, indexed [row][col]
func (board *Board) Tiles() [][]Tile {
	out := make([][]Tile, board.height)
	for row := range board.tiles {
		out[row] = make([]Tile, board.width)
		copy(out[row], board.tiles[row])
	}
	return out
}

// HiddenTiles returns the coordinates of all unrevealed tiles, in row-major order
func (board *Board) HiddenTiles() []Coord {
	var hidden []Coord
	for row, tiles := range board.tiles {
		for col, tile := range tiles {
			if !tile.isRevealed {
				hidden = append(hidden, Coord{Row: row, Col: col})
			}
		}
	}
	return hidden
}

// Render returns the display symbol of every tile, indexed [row][col]
func (board *Board) Render() [][]rune {
	out := make([][]rune, board.height)
	for row, tiles := range board.tiles {
		out[row] = make([]rune, board.width)
		for col, tile := range tiles {
			out[row][col] = tile.Symbol()
		}
	}
	return out
}

func (board *Board) String() string {
	var b strings.Builder
	for row, symbols := range board.Render() {
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(symbols))
	}
	return b.String()
}
