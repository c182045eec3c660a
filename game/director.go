package game

// Director plays a board on behalf of the player
type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*Board)

	/**
	 * Reveal a single tile, returning its coordinate
	 */
	Act() (Coord, error)
}
