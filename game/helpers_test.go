package game

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

// fixedBoard returns a board whose mines are already placed at mines
func fixedBoard(t *testing.T, width, height int, mines ...Coord) *Board {
	t.Helper()

	board, err := BoardConfig{
		Width:    width,
		Height:   height,
		NumMines: len(mines),
		Seed:     1,
		Logger:   quietLogger(),
	}.CreateBoard()
	require.NoError(t, err)

	board.fillMines(mines)
	return board
}

func randomBoard(t *testing.T, width, height, numMines int, seed int64) *Board {
	t.Helper()

	board, err := BoardConfig{
		Width:    width,
		Height:   height,
		NumMines: numMines,
		Seed:     seed,
		Logger:   quietLogger(),
	}.CreateBoard()
	require.NoError(t, err)
	return board
}

func countMinesAround(board *Board, c Coord) int8 {
	count := int8(0)
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			other := Coord{Row: row, Col: col}
			if other != c && board.mines.Contains(other) {
				count++
			}
		}
	}
	return count
}
