package util

import (
	"strings"

	"github.com/ratel-online/rummy/rummy/tile"
)

// TileCopy 拷贝一个切片
func TileCopy(s []tile.Tile) []tile.Tile {
	var slice = make([]tile.Tile, len(s))
	copy(slice, s)
	return slice
}

// Dedup drops adjacent exact duplicates. Input must be sorted so equal tiles touch.
func Dedup(sorted []tile.Tile) []tile.Tile {
	uniqued := make([]tile.Tile, 0, len(sorted))
	for i, t := range sorted {
		if i > 0 && t == sorted[i-1] {
			continue
		}
		uniqued = append(uniqued, t)
	}
	return uniqued
}

// FilterSuit keeps tiles of one suit, preserving order.
func FilterSuit(tiles []tile.Tile, suit tile.Suit) []tile.Tile {
	var filtered []tile.Tile
	for _, t := range tiles {
		if t.Suit == suit {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// SliceToMap 将[]Tile 转化成map[Tile]count
func SliceToMap(slice []tile.Tile) map[tile.Tile]int {
	var m = map[tile.Tile]int{}
	for _, t := range slice {
		m[t]++
	}
	return m
}

// Fingerprint identifies a multiset of tiles regardless of order.
func Fingerprint(tiles []tile.Tile) string {
	sorted := tile.SortByValueThenSuit(tiles)
	parts := make([]string, 0, len(sorted))
	for _, t := range sorted {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, ",")
}
