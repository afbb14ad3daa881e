package tile

import "sort"

// SortByValue returns a copy ordered by value. Equal values keep their input order.
func SortByValue(tiles []Tile) []Tile {
	sorted := copyTiles(tiles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value < sorted[j].Value
	})
	return sorted
}

// SortBySuit returns a copy ordered by suit declaration order. Equal suits keep their input order.
func SortBySuit(tiles []Tile) []Tile {
	sorted := copyTiles(tiles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Suit < sorted[j].Suit
	})
	return sorted
}

// SortByValueThenSuit groups tiles by suit, ascending value inside each group.
func SortByValueThenSuit(tiles []Tile) []Tile {
	return SortBySuit(SortByValue(tiles))
}

func copyTiles(tiles []Tile) []Tile {
	c := make([]Tile, len(tiles))
	copy(c, tiles)
	return c
}
