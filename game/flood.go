package game

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweepcore/util/collections"
)

type floodOrder int

const (
	depthFirst floodOrder = iota
	breadthFirst
)

// Visitor handles one coordinate popped from the flood worklist. It returns
// whether the flood should continue through the coordinate's neighbors.
type Visitor func(Coord) bool

type NeighborAppender func(dst []Coord, c Coord) []Coord

// flood visits origin and every coordinate reachable from it through
// coordinates whose visitor returned true. Each coordinate is visited at most
// once.
func flood(origin Coord, order floodOrder, visit Visitor, appendNeighbors NeighborAppender) int {
	visited := make(collections.Set[Coord])
	queue := deque.New[Coord]()
	var buf [maxNeighbors]Coord

	visited.Add(origin)
	queue.PushBack(origin)

	for queue.Len() > 0 {
		var c Coord
		if order == depthFirst {
			c = queue.PopBack()
		} else {
			c = queue.PopFront()
		}

		if !visit(c) {
			continue
		}

		for _, neighbor := range appendNeighbors(buf[:0], c) {
			if !visited.Contains(neighbor) {
				visited.Add(neighbor)
				queue.PushBack(neighbor)
			}
		}
	}

	return len(visited)
}

// revealVisitor reveals hidden safe tiles and lets the flood pass only through
// tiles with no neighboring mines. Mines are left hidden.
func (board *Board) revealVisitor(revealed *int) Visitor {
	return func(c Coord) bool {
		tile := board.tileAt(c)

		if !tile.isRevealed {
			if board.mines.Contains(c) {
				return false
			}
			*tile = Revealed(board.countNeighborMines(c))
			*revealed++
		}

		return tile.count == 0
	}
}

func (board *Board) floodFrom(origin Coord) {
	board.floodOrdered(origin, depthFirst)
}

func (board *Board) floodOrdered(origin Coord, order floodOrder) {
	revealed := 0
	visited := flood(origin, order, board.revealVisitor(&revealed), board.appendNeighbors)

	board.log.WithFields(logrus.Fields{
		"origin":   origin,
		"revealed": revealed,
		"visited":  visited,
	}).Debug("flood complete")
}
