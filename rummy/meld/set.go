package meld

import (
	"github.com/ratel-online/rummy/rummy/tile"
	"github.com/ratel-online/rummy/rummy/util"
)

// FindSets counts, for every value in the hand, how many distinct suits hold it.
// Exact duplicate tiles count once. Jokers share the JokerValue bucket.
func FindSets(tiles []tile.Tile) map[uint8]int {
	sets := make(map[uint8]int)
	for t := range util.SliceToMap(tiles) {
		sets[t.Value]++
	}
	return sets
}

// SetValue 刻子的分数
func SetValue(value uint8, count int) int {
	return int(value) * count
}
