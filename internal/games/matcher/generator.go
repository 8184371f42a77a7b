package matcher

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Generate builds a shuffled board of gridSize x gridSize tiles for theme.
//
// Pair-type index p is shown as symbol p modulo the alphabet length, so small
// alphabets wrap and distinct pairs may share a face. Matching is always by
// pair-type index. Tile ids are drawn from rng, so equal seeds give equal boards.
func Generate(theme Theme, gridSize int, rng *rand.Rand) Board {
	if gridSize < 2 || gridSize%2 != 0 {
		panic(fmt.Sprintf("matcher: grid size %d must be even and >= 2", gridSize))
	}

	symbols := theme.symbols()
	numPairs := gridSize * gridSize / 2

	// Two slots per pair type, then shuffle positions
	pairs := make([]int, 0, numPairs*2)
	for p := 0; p < numPairs; p++ {
		pairs = append(pairs, p, p)
	}
	rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	tiles := make([]Tile, len(pairs))
	for i, p := range pairs {
		tiles[i] = Tile{
			ID:      newTileID(rng),
			Content: symbols[p%len(symbols)],
			Pair:    p,
		}
	}

	return Board{Size: gridSize, Tiles: tiles}
}

// newTileID draws a UUID from rng.
func newTileID(rng *rand.Rand) TileID {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// math/rand never fails to read
		panic("matcher: cannot generate tile id: " + err.Error())
	}
	return TileID(id.String())
}

// shuffleUnmatched permutes the positions of unmatched tiles in place.
// Matched tiles keep their cells.
func shuffleUnmatched(b *Board, rng *rand.Rand) {
	var idx []int
	for i, t := range b.Tiles {
		if !t.Matched {
			idx = append(idx, i)
		}
	}
	rng.Shuffle(len(idx), func(i, j int) {
		a, c := idx[i], idx[j]
		b.Tiles[a], b.Tiles[c] = b.Tiles[c], b.Tiles[a]
	})
}
