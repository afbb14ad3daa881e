package game_test

import (
	"testing"

	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/event"
	"github.com/ratel-online/rummy/rummy/game"
	"github.com/ratel-online/rummy/rummy/meld"
	"github.com/ratel-online/rummy/rummy/tile"
	"github.com/stretchr/testify/require"
)

func TestRoundConfigValidate(t *testing.T) {
	require.NoError(t, game.DefaultRoundConfig().Validate())

	cfg := game.DefaultRoundConfig()
	cfg.MaxValue = 0
	require.Equal(t, consts.ErrorsMaxValueInvalid, cfg.Validate())

	cfg = game.DefaultRoundConfig()
	cfg.NumSuits = 6
	require.Equal(t, consts.ErrorsSuitsInvalid, cfg.Validate())

	cfg = game.DefaultRoundConfig()
	cfg.HandSize = 0
	require.Equal(t, consts.ErrorsHandSizeInvalid, cfg.Validate())

	_, err := game.NewRound(cfg, nil)
	require.Equal(t, consts.ErrorsHandSizeInvalid, err)
}

func TestRoundDeal(t *testing.T) {
	t.Run("deals_a_hand_and_reports_it", func(t *testing.T) {
		listener := event.NewDummyListener()
		event.TilesDrawn.AddListener(listener)

		round, err := game.NewRound(game.DefaultRoundConfig(), game.RandomShuffler(3))
		require.NoError(t, err)
		hand, err := round.Deal()
		require.NoError(t, err)
		require.Equal(t, 14, hand.Size())
		require.Equal(t, 92, round.Stack().Size())
		require.Equal(t, []interface{}{
			event.TilesDrawnPayload{Tiles: hand.Tiles(), Remaining: 92},
		}, listener.ReceivedPayloads())
	})

	t.Run("runs_out_of_tiles", func(t *testing.T) {
		round, err := game.NewRound(game.RoundConfig{MaxValue: 2, NumSuits: 1, HandSize: 4}, nil)
		require.NoError(t, err)
		_, err = round.Deal()
		require.NoError(t, err)
		_, err = round.Deal()
		require.Equal(t, consts.ErrorsInsufficientTiles, err)
		require.Equal(t, 2, round.Stack().Size())
	})
}

func TestRoundEvaluate(t *testing.T) {
	listener := event.NewDummyListener()
	event.MeldsFound.AddListener(listener)

	round, err := game.NewRound(game.DefaultRoundConfig(), nil)
	require.NoError(t, err)
	// Unshuffled, the top of the stack is both jokers then 13A down to 2A.
	hand, err := round.Deal()
	require.NoError(t, err)

	result := round.Evaluate(hand)
	require.Equal(t, 2, result.Sets[consts.JokerValue])
	require.Equal(t, 1, result.Sets[2])
	require.Len(t, result.Sets, 13)

	require.Len(t, result.Runs, 10)
	require.Equal(t, 5, result.Runs[tile.New(2, tile.Black)])
	require.Equal(t, 5, result.Runs[tile.New(8, tile.Black)])
	require.Equal(t, 4, result.Runs[tile.New(9, tile.Black)])
	require.Equal(t, 2, result.Runs[tile.New(11, tile.Black)])

	require.Len(t, listener.ReceivedPayloads(), 1)
	payload := listener.ReceivedPayloads()[0].(event.MeldsFoundPayload)
	require.Equal(t, hand.Tiles(), payload.Hand)
	require.Equal(t, result.Runs, payload.Runs)

	again := round.Evaluate(game.NewHand(tile.SortByValue(hand.Tiles())...))
	require.Equal(t, result, again)
}

func TestRoundEvaluateNilHand(t *testing.T) {
	round, err := game.NewRound(game.DefaultRoundConfig(), nil)
	require.NoError(t, err)
	var result meld.Result
	require.NotPanics(t, func() { result = round.Evaluate(nil) })
	require.Empty(t, result.Sets)
	require.Empty(t, result.Runs)
	require.Empty(t, result.Melds)
}
