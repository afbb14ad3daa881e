package event

import "github.com/ratel-online/rummy/rummy/tile"

var TilesDrawn = &tilesDrawnEmitter{}

type TilesDrawnPayload struct {
	Tiles     []tile.Tile
	Remaining int
}

type TilesDrawnListener interface {
	OnTilesDrawn(TilesDrawnPayload)
}

type tilesDrawnEmitter struct {
	listeners []TilesDrawnListener
}

func (e *tilesDrawnEmitter) AddListener(listener TilesDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *tilesDrawnEmitter) Emit(payload TilesDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnTilesDrawn(payload)
	}
}
