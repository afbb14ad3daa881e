package consts

import "math"

const (
	MaxTileValue = 13
	NumSuits     = 4
	HandSize     = 14
	// NumJokers red and black.
	NumJokers = 2

	// JokerValue is reserved for jokers, ordinary tiles stay below it.
	JokerValue = math.MaxUint8

	MinRunLength = 3
	MaxRunLength = 6
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInputInvalid      = NewErr(1, false, "Input invalid. ")
	ErrorsInsufficientTiles = NewErr(2, false, "Not enough tiles in stack. ")
	ErrorsMaxValueInvalid   = NewErr(3, true, "Max tile value invalid. ")
	ErrorsSuitsInvalid      = NewErr(3, true, "Suit count invalid. ")
	ErrorsTileInvalid       = NewErr(4, false, "Tile invalid. ")
	ErrorsHandSizeInvalid   = NewErr(3, true, "Hand size invalid. ")
)
