package rules

import (
	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/rng"
)

// DrawOne removes and returns one random tile from bag, reporting false
// if bag is empty. Selection iterates colors in canonical order and picks
// whichever color's count range contains a uniformly drawn target index,
// so the result depends only on r's sequence and bag's canonical-order
// contents — never on map iteration order.
func DrawOne(bag model.TileMultiset, r *rng.RNG) (model.TileColor, bool) {
	total := bag.Total()
	if total == 0 {
		return "", false
	}
	target := r.Intn(total)
	for _, color := range model.Colors {
		n := bag.Count(color)
		if target < n {
			bag.Add(color, -1)
			return color, true
		}
		target -= n
	}
	return "", false
}

// lowBagThreshold is the bag size below which RefillFactories drains the
// lid back into the bag before drawing, per spec: a refill with fewer
// than a full color's worth of tiles left tops up from the lid first
// rather than risking emptying mid-fill.
const lowBagThreshold = model.TilesPerColor

// RefillFactories clears every factory and the center's tile pool, tops
// the bag up from the lid if it holds fewer than lowBagThreshold tiles,
// then fills each factory with TilesPerFactory tiles drawn from the bag.
// If the bag empties before every factory is full, the remaining
// factories are left partially filled or empty, which is legal in the
// endgame.
func RefillFactories(state *model.State, r *rng.RNG) {
	state.Center.Tiles = model.NewTileMultiset()
	for i := range state.Factories {
		state.Factories[i] = model.NewTileMultiset()
	}

	if state.Bag.Total() < lowBagThreshold {
		drainLidIntoBag(state)
	}

	for i := range state.Factories {
		for j := 0; j < model.TilesPerFactory; j++ {
			color, ok := DrawOne(state.Bag, r)
			if !ok {
				break
			}
			state.Factories[i].Add(color, 1)
		}
	}
}

func drainLidIntoBag(state *model.State) {
	for _, color := range model.Colors {
		if n := state.Lid.Count(color); n > 0 {
			state.Bag.Add(color, n)
			state.Lid.Add(color, -n)
		}
	}
}
