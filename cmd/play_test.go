package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweepcore/game"
)

func TestParseMove(t *testing.T) {
	testCases := []struct {
		input string
		move  move
	}{
		{"2 3", move{kind: moveReveal, row: 2, col: 3}},
		{"  0\t7  ", move{kind: moveReveal, row: 0, col: 7}},
		{"f 1 4", move{kind: moveFlag, row: 1, col: 4}},
		{"q", move{kind: moveQuit}},
	}
	for _, test := range testCases {
		m, err := parseMove(test.input)
		require.NoError(t, err, test.input)
		assert.Equal(t, test.move, m, test.input)
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, input := range []string{"", "1", "a 2", "2 b", "f 1", "g 1 2", "1 2 3 4"} {
		_, err := parseMove(input)
		assert.Error(t, err, input)
	}
}

func exampleBoard(t *testing.T) *game.Board {
	t.Helper()

	snapshot := &game.BoardSnapshot{NumMines: 1, SerializedBoard: "O##\n###\n###"}
	board, err := snapshot.CreateBoard(log)
	require.NoError(t, err)
	return board
}

func runSession(t *testing.T, board *game.Board, input string) string {
	t.Helper()

	var out bytes.Buffer
	s := &session{board: board, in: strings.NewReader(input), out: &out}
	require.NoError(t, s.play())
	return out.String()
}

func TestPlayClearsBoard(t *testing.T) {
	board := exampleBoard(t)

	out := runSession(t, board, "2 2\n")

	assert.Contains(t, out, "█1 \n11 \n   ")
	assert.Contains(t, out, "Board cleared!")
	assert.Equal(t, cleared, outcomeOf(board))
}

func TestPlayHitsMine(t *testing.T) {
	board := exampleBoard(t)

	out := runSession(t, board, "0 0\n1 1\n")

	assert.Contains(t, out, "You hit a mine.")
	assert.Equal(t, lost, outcomeOf(board))

	// The game ended before the second move
	tile, err := board.TileAt(1, 1)
	require.NoError(t, err)
	assert.False(t, tile.IsRevealed())
}

func TestPlayReportsBadInput(t *testing.T) {
	board := exampleBoard(t)

	out := runSession(t, board, "x 1\n9 9\nf 0 0\nq\n")

	assert.Contains(t, out, "row must be an int")
	assert.Contains(t, out, "out of range")
	assert.Contains(t, out, "F██")
	assert.Equal(t, ongoing, outcomeOf(board))
}

func TestOutcomeBeforeFirstMove(t *testing.T) {
	board, err := game.BoardConfig{Width: 2, Height: 2, NumMines: 0, Seed: 1, Logger: log}.CreateBoard()
	require.NoError(t, err)

	assert.Equal(t, ongoing, outcomeOf(board))
}

func TestDirectorSession(t *testing.T) {
	board := exampleBoard(t)

	var out bytes.Buffer
	s := &session{board: board, out: &out}
	require.NoError(t, s.direct(0))

	assert.NotEqual(t, ongoing, outcomeOf(board))
}

func TestSessionConfigLoadsLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 2\nmines: 1\nboard: \"#O\\n##\"\n"), 0644))

	config := &sessionConfig{LayoutPath: path}
	board, err := config.createBoard(game.NewBoardConfig())
	require.NoError(t, err)

	assert.Equal(t, 2, board.Width())
	assert.Equal(t, 2, board.Height())
	assert.Equal(t, []game.Coord{{Row: 0, Col: 1}}, board.Mines())
}

func TestSessionDump(t *testing.T) {
	board := exampleBoard(t)
	require.NoError(t, board.Reveal(2, 2))

	var out bytes.Buffer
	s := &session{board: board, out: &out}
	require.NoError(t, s.dump())

	snapshot, err := game.LoadSnapshot(out.String())
	require.NoError(t, err)
	assert.Equal(t, "O..\n...\n...", snapshot.SerializedBoard)
}
