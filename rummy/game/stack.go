package game

import (
	"math/rand"

	"github.com/ratel-online/rummy/consts"
	"github.com/ratel-online/rummy/rummy/tile"
	"github.com/ratel-online/rummy/rummy/util"
)

// Shuffler has the shape of rand.Shuffle so a *rand.Rand method value fits.
type Shuffler func(n int, swap func(i, j int))

func RandomShuffler(seed int64) Shuffler {
	return rand.New(rand.NewSource(seed)).Shuffle
}

type Stack struct {
	tiles []tile.Tile
}

func NewStack() *Stack {
	return Generate(consts.MaxTileValue, consts.NumSuits)
}

// Generate builds an unshuffled stack: two copies of every value for each
// suit, then the red and black jokers. It panics on impossible sizes.
func Generate(maxValue uint8, numSuits int) *Stack {
	if maxValue == 0 || maxValue >= consts.JokerValue {
		panic(consts.ErrorsMaxValueInvalid)
	}
	if numSuits < 1 || numSuits > len(tile.OrdinarySuits) {
		panic(consts.ErrorsSuitsInvalid)
	}
	n := int(maxValue)
	total := n * numSuits * 2
	tiles := make([]tile.Tile, 0, total+consts.NumJokers)
	for i := 0; i < total; i++ {
		suit := tile.OrdinarySuits[(i/n)%numSuits]
		tiles = append(tiles, tile.New(uint8(i%n+1), suit))
	}
	tiles = append(tiles, tile.Joker(tile.JokerRed), tile.Joker(tile.JokerBlack))
	return &Stack{tiles: tiles}
}

func (s *Stack) Shuffle(shuffler Shuffler) {
	if shuffler == nil {
		return
	}
	shuffler(len(s.tiles), func(i, j int) { s.tiles[i], s.tiles[j] = s.tiles[j], s.tiles[i] })
}

func (s *Stack) Size() int {
	return len(s.tiles)
}

func (s *Stack) Empty() bool {
	return len(s.tiles) == 0
}

func (s *Stack) Tiles() []tile.Tile {
	return util.TileCopy(s.tiles)
}

// Draw pops count tiles off the end of the stack, in removal order.
// The stack is left untouched when it holds fewer than count tiles.
func (s *Stack) Draw(count int) (*Hand, error) {
	if count < 0 {
		return nil, consts.ErrorsInputInvalid
	}
	if len(s.tiles) < count {
		return nil, consts.ErrorsInsufficientTiles
	}
	drawn := make([]tile.Tile, 0, count)
	for i := 0; i < count; i++ {
		last := len(s.tiles) - 1
		drawn = append(drawn, s.tiles[last])
		s.tiles = s.tiles[:last]
	}
	return &Hand{tiles: drawn}, nil
}

func (s *Stack) DrawOne() (tile.Tile, error) {
	hand, err := s.Draw(1)
	if err != nil {
		return tile.Tile{}, err
	}
	return hand.tiles[0], nil
}
