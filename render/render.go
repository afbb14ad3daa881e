package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/rummy/rummy/meld"
	"github.com/ratel-online/rummy/rummy/tile"
)

var Stdout io.Writer = color.Output

var suitColors = map[tile.Suit]func(string, ...interface{}) string{
	tile.Blue:       color.New(color.FgHiCyan).SprintfFunc(),
	tile.Red:        color.New(color.FgHiRed).SprintfFunc(),
	tile.Orange:     color.New(color.FgHiYellow).SprintfFunc(),
	tile.Black:      color.New(color.FgHiBlack, color.BgWhite).SprintfFunc(),
	tile.JokerRed:   color.New(color.FgHiRed, color.Bold).SprintfFunc(),
	tile.JokerBlack: color.New(color.FgHiBlack, color.BgWhite, color.Bold).SprintfFunc(),
}

func Paint(t tile.Tile) string {
	paint, ok := suitColors[t.Suit]
	if !ok {
		return t.String()
	}
	if t.IsJoker() {
		return paint("[%s]", t.Suit)
	}
	return paint("[%s]", t)
}

func Tiles(tiles []tile.Tile) string {
	buf := bytes.Buffer{}
	for i, t := range tiles {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(Paint(t))
	}
	return buf.String()
}

func Sets(sets map[uint8]int) string {
	values := make([]int, 0, len(sets))
	for v := range sets {
		values = append(values, int(v))
	}
	sort.Ints(values)
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-10s\n", "Value", "Suits"))
	for _, v := range values {
		buf.WriteString(fmt.Sprintf("%-10d%-10d\n", v, sets[uint8(v)]))
	}
	return buf.String()
}

func Runs(runs map[tile.Tile]int) string {
	starts := make([]tile.Tile, 0, len(runs))
	for start := range runs {
		starts = append(starts, start)
	}
	starts = tile.SortByValueThenSuit(starts)
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-10s%-10s\n", "Start", "Span", "Value"))
	for _, start := range starts {
		span := runs[start]
		buf.WriteString(fmt.Sprintf("%-10s%-10d%-10d\n", start, span, meld.RunValue(int(start.Value), span)))
	}
	return buf.String()
}

func Result(hand []tile.Tile, result meld.Result) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Your hand: %s\n", Tiles(tile.SortByValueThenSuit(hand))))
	buf.WriteString("Sets:\n")
	buf.WriteString(Sets(result.Sets))
	buf.WriteString("Runs:\n")
	buf.WriteString(Runs(result.Runs))
	if len(result.Melds) > 0 {
		buf.WriteString("Playable runs:\n")
		for _, r := range result.Melds {
			buf.WriteString(fmt.Sprintf("%s = %d\n", Tiles(r.Tiles()), r.Value()))
		}
	}
	return buf.String()
}

type jsonRun struct {
	Start string `json:"start"`
	Span  int    `json:"span"`
	Value int    `json:"value"`
}

type jsonResult struct {
	Sets map[int]int `json:"sets"`
	Runs []jsonRun   `json:"runs"`
}

// JSON projects a result onto plain keys, tiles become their string form.
func JSON(result meld.Result) []byte {
	out := jsonResult{Sets: make(map[int]int, len(result.Sets)), Runs: make([]jsonRun, 0, len(result.Runs))}
	for v, n := range result.Sets {
		out.Sets[int(v)] = n
	}
	starts := make([]tile.Tile, 0, len(result.Runs))
	for start := range result.Runs {
		starts = append(starts, start)
	}
	for _, start := range tile.SortByValueThenSuit(starts) {
		span := result.Runs[start]
		out.Runs = append(out.Runs, jsonRun{Start: start.String(), Span: span, Value: meld.RunValue(int(start.Value), span)})
	}
	return json.Marshal(out)
}
