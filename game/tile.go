package game

import "fmt"

// Coord addresses one tile of the board. Row indexes the height, Col the width.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Tile is the state of a single cell: either Hidden, possibly flagged, or
// Revealed with its count of neighboring mines (MineCount for a mine).
type Tile struct {
	isRevealed bool
	isFlagged  bool
	count      int8
}

// Hidden returns an unrevealed tile
func Hidden(flagged bool) Tile {
	return Tile{isFlagged: flagged}
}

// Revealed returns a revealed tile holding count, which is 0 to 8, or MineCount
func Revealed(count int8) Tile {
	return Tile{isRevealed: true, count: count}
}

func (tile Tile) IsRevealed() bool {
	return tile.isRevealed
}

// IsFlagged is only ever true for hidden tiles
func (tile Tile) IsFlagged() bool {
	return tile.isFlagged
}

// Count returns the number of neighboring mines of a revealed tile. Hidden
// tiles report 0.
func (tile Tile) Count() int8 {
	return tile.count
}

// IsMine reports whether the tile was revealed as a mine
func (tile Tile) IsMine() bool {
	return tile.isRevealed && tile.count == MineCount
}

func (tile Tile) Symbol() rune {
	switch {
	case !tile.isRevealed && tile.isFlagged:
		return SymbolFlagged
	case !tile.isRevealed:
		return SymbolHidden
	case tile.count == MineCount:
		return SymbolMine
	case tile.count == 0:
		return SymbolEmpty
	default:
		return rune('0' + tile.count)
	}
}

func (tile Tile) String() string {
	switch {
	case !tile.isRevealed:
		return fmt.Sprintf("Hidden(%v)", tile.isFlagged)
	case tile.count == MineCount:
		return "Revealed(mine)"
	default:
		return fmt.Sprintf("Revealed(%d)", tile.count)
	}
}
