package game

import "github.com/sirupsen/logrus"

// placeMines picks numMines distinct coordinates other than exclude, uniformly
// at random, and fixes them as the board's mines.
func (board *Board) placeMines(exclude Coord) {
	candidates := make([]Coord, 0, board.NumTiles()-1)
	for row := 0; row < board.height; row++ {
		for col := 0; col < board.width; col++ {
			c := Coord{Row: row, Col: col}
			if c != exclude {
				candidates = append(candidates, c)
			}
		}
	}

	board.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	board.fillMines(candidates[:board.numMines])

	board.log.WithFields(logrus.Fields{
		"exclude": exclude,
		"mines":   board.numMines,
		"seed":    board.seed,
	}).Debug("placed mines")
}

// fillMines records mines and moves the board to the placed phase. It must only
// be called once per board.
func (board *Board) fillMines(mines []Coord) {
	for _, c := range mines {
		board.mines.Add(c)
	}
	board.phase = placed
}

// Mines returns the mine coordinates in row-major order, or nil before the
// first reveal
func (board *Board) Mines() []Coord {
	if board.phase == unplaced {
		return nil
	}

	mines := make([]Coord, 0, len(board.mines))
	for row := 0; row < board.height; row++ {
		for col := 0; col < board.width; col++ {
			if c := (Coord{Row: row, Col: col}); board.mines.Contains(c) {
				mines = append(mines, c)
			}
		}
	}
	return mines
}
