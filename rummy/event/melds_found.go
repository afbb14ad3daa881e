package event

import "github.com/ratel-online/rummy/rummy/tile"

var MeldsFound = &meldsFoundEmitter{}

type MeldsFoundPayload struct {
	Hand []tile.Tile
	Sets map[uint8]int
	Runs map[tile.Tile]int
}

type MeldsFoundListener interface {
	OnMeldsFound(MeldsFoundPayload)
}

type meldsFoundEmitter struct {
	listeners []MeldsFoundListener
}

func (e *meldsFoundEmitter) AddListener(listener MeldsFoundListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *meldsFoundEmitter) Emit(payload MeldsFoundPayload) {
	for _, listener := range e.listeners {
		listener.OnMeldsFound(payload)
	}
}
