package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/rummy/render"
	"github.com/ratel-online/rummy/rummy/game"
	"github.com/ratel-online/rummy/rummy/meld"
	"github.com/ratel-online/rummy/rummy/tile"
	"github.com/spf13/cast"
)

// usage: rummy [maxValue numSuits handSize [seed]]
//        rummy hand 1R 2R 3R 13U ...
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "hand" {
		if err := evaluateHand(args[1:]); err != nil {
			log.Error(err)
			os.Exit(1)
		}
		return
	}
	config, seed, err := parseArgs(args)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	round, err := game.NewRound(config, game.RandomShuffler(seed))
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	hand, err := round.Deal()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	log.Infof("dealt %d tiles, %d left in stack\n", hand.Size(), round.Stack().Size())
	result := round.Evaluate(hand)
	_, _ = fmt.Fprint(render.Stdout, render.Result(hand.Tiles(), result))
	log.Info(string(render.JSON(result)))
}

func parseArgs(args []string) (game.RoundConfig, int64, error) {
	config := game.DefaultRoundConfig()
	seed := time.Now().UnixNano()
	var err error
	if len(args) > 0 {
		if config.MaxValue, err = cast.ToUint8E(args[0]); err != nil {
			return config, 0, err
		}
	}
	if len(args) > 1 {
		if config.NumSuits, err = cast.ToIntE(args[1]); err != nil {
			return config, 0, err
		}
	}
	if len(args) > 2 {
		if config.HandSize, err = cast.ToIntE(args[2]); err != nil {
			return config, 0, err
		}
	}
	if len(args) > 3 {
		if seed, err = cast.ToInt64E(args[3]); err != nil {
			return config, 0, err
		}
	}
	return config, seed, config.Validate()
}

func evaluateHand(tokens []string) error {
	tiles, err := tile.ParseAll(tokens)
	if err != nil {
		return err
	}
	result := meld.Evaluate(tiles)
	_, err = fmt.Fprint(render.Stdout, render.Result(tiles, result))
	return err
}
