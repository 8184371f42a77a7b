package matcher

import (
	"math/rand"
	"testing"
)

func TestGenerateBoardInvariants(t *testing.T) {
	themes := []Theme{ThemeNumbers, ThemeAlphabet, ThemeSymbols, ThemeCombination}
	sizes := []int{2, 4, 6, 8}

	for _, theme := range themes {
		for _, size := range sizes {
			b := Generate(theme, size, rand.New(rand.NewSource(7)))

			if b.Size != size {
				t.Errorf("%s/%d: Size = %d", theme, size, b.Size)
			}
			if len(b.Tiles) != size*size {
				t.Fatalf("%s/%d: %d tiles, want %d", theme, size, len(b.Tiles), size*size)
			}

			symbols := theme.symbols()
			counts := make(map[int]int)
			ids := make(map[TileID]bool)
			for _, tile := range b.Tiles {
				counts[tile.Pair]++
				if ids[tile.ID] {
					t.Errorf("%s/%d: duplicate id %s", theme, size, tile.ID)
				}
				ids[tile.ID] = true
				if tile.Matched || tile.Selected {
					t.Errorf("%s/%d: tile %s starts revealed", theme, size, tile.ID)
				}
				if want := symbols[tile.Pair%len(symbols)]; tile.Content != want {
					t.Errorf("%s/%d: pair %d content %q, want %q", theme, size, tile.Pair, tile.Content, want)
				}
			}
			if len(counts) != size*size/2 {
				t.Errorf("%s/%d: %d pair types, want %d", theme, size, len(counts), size*size/2)
			}
			for p, n := range counts {
				if n != 2 {
					t.Errorf("%s/%d: pair %d appears %d times", theme, size, p, n)
				}
			}
		}
	}
}

func TestGenerateWrapsSmallAlphabets(t *testing.T) {
	// 32 pairs over 26 letters: pair 26 shows "A" again
	b := Generate(ThemeAlphabet, 8, rand.New(rand.NewSource(1)))
	for _, tile := range b.Tiles {
		if tile.Pair == 26 && tile.Content != "A" {
			t.Errorf("pair 26 content = %q, want A", tile.Content)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	b1 := Generate(ThemeNumbers, 6, rand.New(rand.NewSource(99)))
	b2 := Generate(ThemeNumbers, 6, rand.New(rand.NewSource(99)))

	for i := range b1.Tiles {
		if b1.Tiles[i] != b2.Tiles[i] {
			t.Fatalf("tile %d differs: %+v vs %+v", i, b1.Tiles[i], b2.Tiles[i])
		}
	}
}

func TestGenerateRejectsOddSize(t *testing.T) {
	for _, size := range []int{0, 1, 3, 5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Generate(%d) did not panic", size)
				}
			}()
			Generate(ThemeNumbers, size, rand.New(rand.NewSource(1)))
		}()
	}
}

func TestShuffleUnmatchedKeepsMatchedCells(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := Generate(ThemeNumbers, 4, rng)
	pairs := pairsOf(b)
	for _, id := range pairs[0] {
		b.Tiles[b.Index(id)].Matched = true
	}
	before := b.Clone()

	shuffleUnmatched(&b, rng)

	for i, tile := range before.Tiles {
		if tile.Matched && b.Tiles[i] != tile {
			t.Errorf("matched tile at %d moved", i)
		}
	}
	if b.Unmatched() != before.Unmatched() {
		t.Errorf("unmatched count changed: %d -> %d", before.Unmatched(), b.Unmatched())
	}
	seen := make(map[TileID]bool)
	for _, tile := range b.Tiles {
		seen[tile.ID] = true
	}
	for _, tile := range before.Tiles {
		if !seen[tile.ID] {
			t.Errorf("tile %s lost by shuffle", tile.ID)
		}
	}
}

func TestBoardAllMatched(t *testing.T) {
	if (Board{}).AllMatched() {
		t.Error("empty board reported complete")
	}
	b := Board{Size: 2, Tiles: []Tile{{Matched: true}, {Matched: true}}}
	if !b.AllMatched() {
		t.Error("fully matched board not complete")
	}
}
