package game

import (
	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/tile"
	"github.com/ratel-online/rummy/rummy/util"
)

type Hand struct {
	tiles []tile.Tile
}

func NewHand(tiles ...tile.Tile) *Hand {
	h := &Hand{tiles: make([]tile.Tile, 0, consts.HandSize)}
	h.AddTiles(tiles)
	return h
}

func (h *Hand) AddTiles(tiles []tile.Tile) {
	h.tiles = append(h.tiles, tiles...)
}

func (h *Hand) Tiles() []tile.Tile {
	return util.TileCopy(h.tiles)
}

func (h *Hand) Empty() bool {
	return len(h.tiles) == 0
}

// RemoveTile drops the first exact copy of t, keeping the order of the rest.
func (h *Hand) RemoveTile(t tile.Tile) bool {
	for index, tileInHand := range h.tiles {
		if tileInHand == t {
			h.tiles = append(h.tiles[:index], h.tiles[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.tiles)
}

func (h *Hand) String() string {
	return tile.ToTileString(h.tiles)
}
