package meld

import (
	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/rummy/rummy/tile"
	"github.com/ratel-online/rummy/rummy/util"
)

type Result struct {
	Sets  map[uint8]int
	Runs  map[tile.Tile]int
	Melds []Run
}

func Evaluate(tiles []tile.Tile) Result {
	melds := FindRunMelds(tiles)
	runs := make(map[tile.Tile]int, len(melds))
	for _, r := range melds {
		runs[r.Start] = r.Span
	}
	return Result{
		Sets:  FindSets(tiles),
		Runs:  runs,
		Melds: melds,
	}
}

func (r Result) clone() Result {
	c := Result{
		Sets: make(map[uint8]int, len(r.Sets)),
		Runs: make(map[tile.Tile]int, len(r.Runs)),
	}
	for v, n := range r.Sets {
		c.Sets[v] = n
	}
	for start, span := range r.Runs {
		c.Runs[start] = span
	}
	if r.Melds != nil {
		c.Melds = append([]Run(nil), r.Melds...)
	}
	return c
}

// Cache memoises Evaluate by hand fingerprint. Safe for concurrent use.
// Every caller gets its own copy of the cached result.
type Cache struct {
	results *hashmap.HashMap
}

func NewCache() *Cache {
	return &Cache{results: hashmap.New()}
}

func (c *Cache) Get(tiles []tile.Tile) (Result, bool) {
	if v, ok := c.results.Get(util.Fingerprint(tiles)); ok {
		return v.(Result).clone(), true
	}
	return Result{}, false
}

func (c *Cache) Evaluate(tiles []tile.Tile) Result {
	key := util.Fingerprint(tiles)
	if v, ok := c.results.Get(key); ok {
		return v.(Result).clone()
	}
	result := Evaluate(tiles)
	c.results.Set(key, result)
	return result.clone()
}

func (c *Cache) Len() int {
	n := 0
	c.results.Foreach(func(e *hashmap.Entry) {
		n++
	})
	return n
}

func (c *Cache) Clear() {
	var keys []interface{}
	c.results.Foreach(func(e *hashmap.Entry) {
		keys = append(keys, e.Key())
	})
	for _, key := range keys {
		c.results.Del(key)
	}
}
