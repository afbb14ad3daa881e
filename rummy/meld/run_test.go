package meld_test

import (
	"testing"

	"github.com/ratel-online/rummy/rummy/meld"
	"github.com/ratel-online/rummy/rummy/tile"
	"github.com/stretchr/testify/require"
)

var overlappingRunsHand = []tile.Tile{
	tile.New(3, tile.Red),
	tile.New(1, tile.Red),
	tile.New(12, tile.Orange),
	tile.New(2, tile.Red),
	tile.New(5, tile.Red),
	tile.New(10, tile.Orange),
	tile.New(3, tile.Red),
	tile.New(4, tile.Red),
	tile.New(13, tile.Orange),
	tile.New(11, tile.Orange),
}

func TestFindRuns(t *testing.T) {
	t.Run("records_every_start_with_its_longest_span", func(t *testing.T) {
		runs := meld.FindRuns(overlappingRunsHand)
		require.Equal(t, map[tile.Tile]int{
			tile.New(1, tile.Red):     4,
			tile.New(2, tile.Red):     3,
			tile.New(3, tile.Red):     2,
			tile.New(10, tile.Orange): 3,
			tile.New(11, tile.Orange): 2,
		}, runs)
	})

	t.Run("rejects_windows_with_gaps", func(t *testing.T) {
		runs := meld.FindRuns([]tile.Tile{
			tile.New(1, tile.Red),
			tile.New(2, tile.Red),
			tile.New(4, tile.Red),
			tile.New(5, tile.Red),
			tile.New(6, tile.Red),
		})
		require.Equal(t, map[tile.Tile]int{tile.New(4, tile.Red): 2}, runs)
	})

	t.Run("needs_three_tiles_of_one_suit", func(t *testing.T) {
		runs := meld.FindRuns([]tile.Tile{
			tile.New(1, tile.Black),
			tile.New(2, tile.Black),
			tile.New(3, tile.Red),
			tile.New(10, tile.Orange),
			tile.New(11, tile.Orange),
			tile.New(13, tile.Orange),
		})
		require.Empty(t, runs)
	})

	t.Run("caps_windows_at_six_tiles", func(t *testing.T) {
		var long []tile.Tile
		for v := uint8(1); v <= 13; v++ {
			long = append(long, tile.New(v, tile.Blue))
		}
		runs := meld.FindRuns(long)
		require.Len(t, runs, 11)
		require.Equal(t, 5, runs[tile.New(1, tile.Blue)])
		require.Equal(t, 5, runs[tile.New(8, tile.Blue)])
		require.Equal(t, 2, runs[tile.New(11, tile.Blue)])
	})

	t.Run("ignores_jokers", func(t *testing.T) {
		runs := meld.FindRuns([]tile.Tile{
			tile.New(1, tile.Red),
			tile.New(2, tile.Red),
			tile.Joker(tile.JokerRed),
			tile.Joker(tile.JokerBlack),
		})
		require.Empty(t, runs)
	})

	t.Run("empty_hand_has_no_runs", func(t *testing.T) {
		runs := meld.FindRuns(nil)
		require.NotNil(t, runs)
		require.Empty(t, runs)
	})
}

func TestFindRunMelds(t *testing.T) {
	melds := meld.FindRunMelds(overlappingRunsHand)
	require.Equal(t, []meld.Run{
		{Start: tile.New(1, tile.Red), Span: 2},
		{Start: tile.New(2, tile.Red), Span: 2},
		{Start: tile.New(3, tile.Red), Span: 2},
		{Start: tile.New(1, tile.Red), Span: 3},
		{Start: tile.New(2, tile.Red), Span: 3},
		{Start: tile.New(1, tile.Red), Span: 4},
		{Start: tile.New(10, tile.Orange), Span: 2},
		{Start: tile.New(11, tile.Orange), Span: 2},
		{Start: tile.New(10, tile.Orange), Span: 3},
	}, melds)
	require.Empty(t, meld.FindRunMelds(nil))
}

func TestRun(t *testing.T) {
	r := meld.Run{Start: tile.New(10, tile.Orange), Span: 3}
	require.Equal(t, 4, r.Length())
	require.Equal(t, 46, r.Value())
	require.Equal(t, "10O+3", r.String())
	require.Equal(t, []tile.Tile{
		tile.New(10, tile.Orange),
		tile.New(11, tile.Orange),
		tile.New(12, tile.Orange),
		tile.New(13, tile.Orange),
	}, r.Tiles())
}

func TestRunValue(t *testing.T) {
	t.Run("matches_the_face_sum_of_every_detected_run", func(t *testing.T) {
		var all []tile.Tile
		for _, suit := range tile.OrdinarySuits {
			for v := uint8(1); v <= 13; v++ {
				all = append(all, tile.New(v, suit))
			}
		}
		melds := meld.FindRunMelds(all)
		require.NotEmpty(t, melds)
		for _, r := range melds {
			sum := 0
			for _, tl := range r.Tiles() {
				sum += int(tl.Value)
			}
			require.Equal(t, sum, meld.RunValue(int(r.Start.Value), r.Span), r.String())
			require.Zero(t, (r.Span+1)*(2*int(r.Start.Value)+r.Span)%2, r.String())
		}
	})

	t.Run("known_values", func(t *testing.T) {
		require.Equal(t, 6, meld.RunValue(1, 2))
		require.Equal(t, 15, meld.RunValue(1, 4))
		require.Equal(t, 36, meld.RunValue(11, 2))
	})
}
