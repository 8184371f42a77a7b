package matcher

// TileID identifies a tile for its whole lifetime on a board.
type TileID string

// Tile is one card on the board.
type Tile struct {
	ID       TileID
	Content  string // Face shown when revealed
	Pair     int    // Pair-type index; exactly two tiles share it
	Matched  bool   // Permanently revealed, no longer interactive
	Selected bool   // Currently face-up
}

// FaceUp reports whether the tile should be drawn revealed.
func (t Tile) FaceUp() bool {
	return t.Matched || t.Selected
}

// Board is a size x size grid of tiles in row-major order.
type Board struct {
	Size  int
	Tiles []Tile
}

// Clone returns a deep copy safe to hand to readers.
func (b Board) Clone() Board {
	tiles := make([]Tile, len(b.Tiles))
	copy(tiles, b.Tiles)
	return Board{Size: b.Size, Tiles: tiles}
}

// Index returns the position of the tile with the given id, or -1.
func (b Board) Index(id TileID) int {
	for i, t := range b.Tiles {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// AllMatched reports whether every tile is matched.
// An empty board is never complete.
func (b Board) AllMatched() bool {
	if len(b.Tiles) == 0 {
		return false
	}
	for _, t := range b.Tiles {
		if !t.Matched {
			return false
		}
	}
	return true
}

// Unmatched returns how many tiles are still in play.
func (b Board) Unmatched() int {
	n := 0
	for _, t := range b.Tiles {
		if !t.Matched {
			n++
		}
	}
	return n
}

// At returns the tile at (col, row).
func (b Board) At(col, row int) Tile {
	return b.Tiles[row*b.Size+col]
}
