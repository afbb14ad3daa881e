package game

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/event"
	"github.com/ratel-online/rummy/rummy/meld"
	"github.com/ratel-online/rummy/rummy/tile"
)

type RoundConfig struct {
	MaxValue uint8
	NumSuits int
	HandSize int
}

func DefaultRoundConfig() RoundConfig {
	return RoundConfig{
		MaxValue: consts.MaxTileValue,
		NumSuits: consts.NumSuits,
		HandSize: consts.HandSize,
	}
}

func (c RoundConfig) Validate() error {
	if c.MaxValue == 0 || c.MaxValue >= consts.JokerValue {
		return consts.ErrorsMaxValueInvalid
	}
	if c.NumSuits < 1 || c.NumSuits > len(tile.OrdinarySuits) {
		return consts.ErrorsSuitsInvalid
	}
	if c.HandSize < 1 {
		return consts.ErrorsHandSizeInvalid
	}
	return nil
}

// Round owns one stack for the length of a round.
type Round struct {
	config RoundConfig
	stack  *Stack
	cache  *meld.Cache
}

func NewRound(config RoundConfig, shuffler Shuffler) (*Round, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	stack := Generate(config.MaxValue, config.NumSuits)
	stack.Shuffle(shuffler)
	log.Infof("[Round] stack of %d tiles ready\n", stack.Size())
	return &Round{
		config: config,
		stack:  stack,
		cache:  meld.NewCache(),
	}, nil
}

func (r *Round) Stack() *Stack {
	return r.stack
}

func (r *Round) Config() RoundConfig {
	return r.config
}

func (r *Round) Deal() (*Hand, error) {
	hand, err := r.stack.Draw(r.config.HandSize)
	if err != nil {
		log.Errorf("[Round] deal %d tiles failed, %d left: %v\n", r.config.HandSize, r.stack.Size(), err)
		return nil, err
	}
	event.TilesDrawn.Emit(event.TilesDrawnPayload{
		Tiles:     hand.Tiles(),
		Remaining: r.stack.Size(),
	})
	return hand, nil
}

// Evaluate treats a nil hand as empty.
func (r *Round) Evaluate(hand *Hand) meld.Result {
	var tiles []tile.Tile
	if hand != nil {
		tiles = hand.Tiles()
	}
	result := r.cache.Evaluate(tiles)
	event.MeldsFound.Emit(event.MeldsFoundPayload{
		Hand: tiles,
		Sets: result.Sets,
		Runs: result.Runs,
	})
	return result
}
