package meld

import (
	"fmt"

	"github.com/ratel-online/rummy/rule"
	"github.com/ratel-online/rummy/rummy/tile"
	"github.com/ratel-online/rummy/rummy/util"
)

type Run struct {
	Start tile.Tile
	Span  int
}

func (r Run) Length() int {
	return r.Span + 1
}

func (r Run) Value() int {
	return RunValue(int(r.Start.Value), r.Span)
}

func (r Run) Tiles() []tile.Tile {
	tiles := make([]tile.Tile, 0, r.Length())
	for i := 0; i <= r.Span; i++ {
		tiles = append(tiles, tile.New(r.Start.Value+uint8(i), r.Start.Suit))
	}
	return tiles
}

func (r Run) String() string {
	return fmt.Sprintf("%s+%d", r.Start, r.Span)
}

// FindRuns maps the starting tile of every run to its span. Window sizes are
// scanned in ascending order, so the longest run from a given start wins.
func FindRuns(tiles []tile.Tile) map[tile.Tile]int {
	runs := make(map[tile.Tile]int)
	for _, r := range FindRunMelds(tiles) {
		runs[r.Start] = r.Span
	}
	return runs
}

// FindRunMelds lists every valid window, overlapping ones included, ordered
// by suit, then window length, then start position.
func FindRunMelds(tiles []tile.Tile) []Run {
	prepared := util.Dedup(tile.SortByValueThenSuit(tiles))
	minRun, maxRun := rule.RummyRules.RunBoundary()
	var runs []Run
	for _, suit := range tile.OrdinarySuits {
		suited := util.FilterSuit(prepared, suit)
		for k := minRun; k <= maxRun; k++ {
			for i := 0; i+k <= len(suited); i++ {
				first, last := suited[i], suited[i+k-1]
				if !rule.RummyRules.IsRun(first.Value, last.Value, k) {
					continue
				}
				runs = append(runs, Run{Start: first, Span: int(last.Value) - int(first.Value)})
			}
		}
	}
	return runs
}

// RunValue is the face sum n + (n+1) + ... + (n+span).
func RunValue(start, span int) int {
	return (span + 1) * (2*start + span) / 2
}
