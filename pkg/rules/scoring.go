package rules

import "github.com/azulpractice/engine/pkg/model"

// WallTileScore returns the points earned for placing a tile at (row, col)
// on wall, which must already have that position marked filled. An
// isolated tile (no filled neighbor in either direction) scores 1. Tiles
// that connect to neighbors score the horizontal run length plus the
// vertical run length, each counted only when it exceeds 1.
func WallTileScore(wall model.Wall, row, col int) int {
	horizontal := runLength(wall, row, col, 0, 1) + runLength(wall, row, col, 0, -1) + 1
	vertical := runLength(wall, row, col, 1, 0) + runLength(wall, row, col, -1, 0) + 1

	if horizontal == 1 && vertical == 1 {
		return 1
	}
	score := 0
	if horizontal > 1 {
		score += horizontal
	}
	if vertical > 1 {
		score += vertical
	}
	return score
}

// runLength counts filled positions starting one step from (row, col) in
// direction (dr, dc), stopping at the first empty cell or the wall edge.
func runLength(wall model.Wall, row, col, dr, dc int) int {
	n := 0
	r, c := row+dr, col+dc
	for r >= 0 && r < 5 && c >= 0 && c < 5 && wall[r][c] {
		n++
		r += dr
		c += dc
	}
	return n
}

// FloorPenalty returns the (non-positive) score change for a floor line
// holding tileCount tiles plus, if hasToken, the first-player token
// occupying slot 0. Only the first model.FloorLineSlots slots incur a
// penalty; tiles beyond that are free.
func FloorPenalty(tileCount int, hasToken bool) int {
	occupied := tileCount
	if hasToken {
		occupied++
	}
	if occupied > model.FloorLineSlots {
		occupied = model.FloorLineSlots
	}
	penalty := 0
	for i := 0; i < occupied; i++ {
		penalty += model.FloorPenalties[i]
	}
	return penalty
}

// ApplyFloorPenalties adds each player's floor penalty to their score,
// clamping the result at zero, and clears their floor line (tiles go to
// the lid; the token, if present, is consumed).
func ApplyFloorPenalties(state *model.State) {
	for seat := range state.Players {
		player := &state.Players[seat]
		penalty := FloorPenalty(len(player.FloorLine.Tiles), player.FloorLine.HasFirstPlayerToken)
		player.Score += penalty
		if player.Score < 0 {
			player.Score = 0
		}
		for _, color := range player.FloorLine.Tiles {
			state.Lid.Add(color, 1)
		}
		player.FloorLine.Tiles = nil
		player.FloorLine.HasFirstPlayerToken = false
	}
}
