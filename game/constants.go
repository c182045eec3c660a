package game

// MineCount is the count stored in a revealed tile which holds a mine.
const MineCount int8 = -1

const (
	maxNeighbors = 8
)

// Symbols used by Board.Render
const (
	SymbolHidden  = '█'
	SymbolFlagged = 'F'
	SymbolEmpty   = ' '
	SymbolMine    = '*'
)

type boardPhase int

const (
	unplaced boardPhase = iota
	placed
)
