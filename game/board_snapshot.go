package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var ErrInvalidSnapshot = errors.New("invalid board snapshot")

// BoardSnapshot captures a board's layout, mines included, for inspection and
// for replaying a fixed layout.
//
// Each row of SerializedBoard is one board row, one character per tile:
//
//	#  hidden
//	f  hidden, flagged
//	.  revealed
//	O  hidden mine
//	F  hidden mine, flagged
//	*  revealed mine
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	NumMines        int    `yaml:"mines"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snapshot, nil
}

func (board *Board) Snapshot() *BoardSnapshot {
	var b strings.Builder
	for row, tiles := range board.tiles {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col, tile := range tiles {
			b.WriteByte(serializeTile(tile, board.mines.Contains(Coord{Row: row, Col: col})))
		}
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		NumMines:        board.numMines,
		SerializedBoard: b.String(),
	}
}

func serializeTile(tile Tile, isMine bool) byte {
	switch {
	case isMine:
		switch {
		case tile.isRevealed:
			return '*'
		case tile.isFlagged:
			return 'F'
		default:
			return 'O'
		}
	case tile.isRevealed:
		return '.'
	case tile.isFlagged:
		return 'f'
	default:
		return '#'
	}
}

// deserializeTile returns the tile for c, whether it holds a mine and whether c
// was recognized. Revealed safe tiles get their count once all mines are known.
func deserializeTile(c rune) (tile Tile, isMine bool, ok bool) {
	switch c {
	case '#':
		return Hidden(false), false, true
	case 'f':
		return Hidden(true), false, true
	case '.':
		return Revealed(0), false, true
	case 'O':
		return Hidden(false), true, true
	case 'F':
		return Hidden(true), true, true
	case '*':
		return Revealed(MineCount), true, true
	default:
		return Tile{}, false, false
	}
}

// CreateBoard rebuilds the board described by the snapshot. A layout holding
// mines or revealed tiles comes back with its mines placed; otherwise mines
// are placed on the first reveal as usual.
func (snapshot *BoardSnapshot) CreateBoard(logger logrus.FieldLogger) (*Board, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")
	width := len([]rune(rows[0]))

	board, err := BoardConfig{
		Width:    width,
		Height:   len(rows),
		NumMines: snapshot.NumMines,
		Seed:     snapshot.Seed,
		Logger:   logger,
	}.CreateBoard()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	var (
		mines       []Coord
		hasRevealed bool
	)
	for row, line := range rows {
		symbols := []rune(line)
		if len(symbols) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidSnapshot, row, len(symbols), width)
		}

		for col, symbol := range symbols {
			tile, isMine, ok := deserializeTile(symbol)
			if !ok {
				return nil, fmt.Errorf("%w: unknown tile %q at (%d, %d)", ErrInvalidSnapshot, symbol, row, col)
			}

			c := Coord{Row: row, Col: col}
			*board.tileAt(c) = tile
			if isMine {
				mines = append(mines, c)
			}
			hasRevealed = hasRevealed || tile.isRevealed
		}
	}

	if len(mines) == 0 && !hasRevealed {
		return board, nil
	}

	if len(mines) != snapshot.NumMines {
		return nil, fmt.Errorf("%w: layout has %d mines, want %d", ErrInvalidSnapshot, len(mines), snapshot.NumMines)
	}

	board.fillMines(mines)
	for row, tiles := range board.tiles {
		for col := range tiles {
			c := Coord{Row: row, Col: col}
			if tile := board.tileAt(c); tile.isRevealed && !board.mines.Contains(c) {
				*tile = Revealed(board.countNeighborMines(c))
			}
		}
	}

	return board, nil
}
