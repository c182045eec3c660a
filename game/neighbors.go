package game

// Neighbors returns the in-bounds coordinates adjacent to c, diagonals
// included: 3 at a corner, 5 on an edge, 8 otherwise.
func (board *Board) Neighbors(c Coord) []Coord {
	return board.appendNeighbors(make([]Coord, 0, maxNeighbors), c)
}

func (board *Board) appendNeighbors(dst []Coord, c Coord) []Coord {
	isAtTopBorder := c.Row < 1
	isAtBottomBorder := c.Row >= board.height-1

	if c.Col >= 1 {
		dst = append(dst, Coord{c.Row, c.Col - 1})

		if !isAtTopBorder {
			dst = append(dst, Coord{c.Row - 1, c.Col - 1})
		}
		if !isAtBottomBorder {
			dst = append(dst, Coord{c.Row + 1, c.Col - 1})
		}
	}

	if c.Col < board.width-1 {
		dst = append(dst, Coord{c.Row, c.Col + 1})

		if !isAtTopBorder {
			dst = append(dst, Coord{c.Row - 1, c.Col + 1})
		}
		if !isAtBottomBorder {
			dst = append(dst, Coord{c.Row + 1, c.Col + 1})
		}
	}

	if !isAtTopBorder {
		dst = append(dst, Coord{c.Row - 1, c.Col})
	}
	if !isAtBottomBorder {
		dst = append(dst, Coord{c.Row + 1, c.Col})
	}

	return dst
}

func (board *Board) countNeighborMines(c Coord) int8 {
	var buf [maxNeighbors]Coord
	count := int8(0)
	for _, neighbor := range board.appendNeighbors(buf[:0], c) {
		if board.mines.Contains(neighbor) {
			count++
		}
	}
	return count
}
