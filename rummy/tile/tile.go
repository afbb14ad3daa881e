package tile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/rummy/consts"
)

type Suit int

// Declaration order is the canonical suit sort order.
const (
	Blue Suit = iota
	Red
	Orange
	Black
	JokerRed
	JokerBlack
)

// OrdinarySuits are the suits that take part in runs.
var OrdinarySuits = []Suit{Blue, Red, Orange, Black}

var suitCodes = map[Suit]string{
	Blue:       "U",
	Red:        "R",
	Orange:     "O",
	Black:      "A",
	JokerRed:   "JR",
	JokerBlack: "JB",
}

func (s Suit) String() string {
	switch s {
	case Blue, Red, Orange, Black, JokerRed, JokerBlack:
		return suitCodes[s]
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

func (s Suit) IsJoker() bool {
	return s == JokerRed || s == JokerBlack
}

func SuitByCode(code string) (Suit, error) {
	for suit, c := range suitCodes {
		if c == code {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("%winvalid suit '%s'", consts.ErrorsTileInvalid, code)
}

type Tile struct {
	Value uint8
	Suit  Suit
}

func New(value uint8, suit Suit) Tile {
	return Tile{Value: value, Suit: suit}
}

func Joker(suit Suit) Tile {
	return Tile{Value: consts.JokerValue, Suit: suit}
}

func (t Tile) IsJoker() bool {
	return t.Suit.IsJoker() || t.Value == consts.JokerValue
}

func (t Tile) String() string {
	return strconv.Itoa(int(t.Value)) + t.Suit.String()
}

// Parse reads the String form back, e.g. "13R" or "255JB".
func Parse(s string) (Tile, error) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return Tile{}, fmt.Errorf("%wbad tile '%s'", consts.ErrorsTileInvalid, s)
	}
	value, err := strconv.ParseUint(s[:i], 10, 8)
	if err != nil || value == 0 {
		return Tile{}, fmt.Errorf("%wbad tile value '%s'", consts.ErrorsTileInvalid, s)
	}
	suit, err := SuitByCode(s[i:])
	if err != nil {
		return Tile{}, err
	}
	return New(uint8(value), suit), nil
}

func ParseAll(tokens []string) ([]Tile, error) {
	tiles := make([]Tile, 0, len(tokens))
	for _, token := range tokens {
		t, err := Parse(token)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

func ToTileString(tiles []Tile) string {
	ret := make([]string, 0, len(tiles))
	for _, t := range tiles {
		ret = append(ret, t.String())
	}
	return strings.Join(ret, " ")
}
