package rules

import (
	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/rng"
	"github.com/azulpractice/engine/pkg/wall"
)

// ResolvePatternLines tiles every complete pattern line onto its player's
// wall, scores the newly-placed tile, discards the line's remaining
// tiles to the lid, and resets the line. A line whose wall position is
// already filled — a corrupted or hand-built state — is discarded
// without scoring rather than double-counting the position. It returns
// the adjacency points awarded to each seat this call, which callers
// that need the scoring component separate from floor penalties (such as
// pkg/evaluator's expected_adjacency_points feature) can use directly.
func ResolvePatternLines(state *model.State) [2]int {
	var adjacencyScored [2]int
	for seat := range state.Players {
		player := &state.Players[seat]
		for row := range player.PatternLines {
			line := &player.PatternLines[row]
			if !line.IsComplete() || line.Color == nil {
				continue
			}
			color := *line.Color
			col := wall.ColumnOf(row, color)

			discard := line.CountFilled
			if !player.Wall[row][col] {
				player.Wall[row][col] = true
				score := WallTileScore(player.Wall, row, col)
				player.Score += score
				adjacencyScored[seat] += score
				discard--
			}

			if discard > 0 {
				state.Lid.Add(color, discard)
			}
			line.CountFilled = 0
			line.Color = nil
		}
	}
	return adjacencyScored
}

// CheckGameEnd reports whether any player has completed a full wall row,
// the game-end condition.
func CheckGameEnd(state model.State) bool {
	for _, player := range state.Players {
		for row := 0; row < 5; row++ {
			if player.Wall.FullRow(row) {
				return true
			}
		}
	}
	return false
}

// EndOfRoundResult is what ResolveEndOfRound produces: the resolved
// state, whether the game has ended, and the adjacency points each seat
// scored tiling its wall this round (separate from floor penalties, for
// callers like pkg/evaluator that track scoring components independently).
type EndOfRoundResult struct {
	State           model.State
	Ended           bool
	AdjacencyScored [2]int
}

// ResolveEndOfRound runs the full end-of-round pipeline: tile the walls
// and score them, apply floor penalties, determine next round's starting
// player from whoever held the first-player token, move the token back
// to the center, and — unless the game has ended — advance the round
// number and refill the factories.
func ResolveEndOfRound(state model.State, r *rng.RNG) (EndOfRoundResult, error) {
	next := state.Clone()

	var hadToken [2]bool
	for seat := range next.Players {
		hadToken[seat] = next.Players[seat].FloorLine.HasFirstPlayerToken
	}

	adjacency := ResolvePatternLines(&next)
	ApplyFloorPenalties(&next)

	nextFirst := uint8(0)
	if hadToken[1] && !hadToken[0] {
		nextFirst = 1
	}
	next.ActivePlayer = nextFirst
	next.Center.HasFirstPlayerToken = true

	if CheckGameEnd(next) {
		next.DraftPhase = model.RoundEnd
		return EndOfRoundResult{State: next, Ended: true, AdjacencyScored: adjacency}, nil
	}

	next.RoundNumber++
	next.DraftPhase = model.RoundStart
	RefillFactories(&next, r)

	if Debug {
		if err := CheckTileConservation(next); err != nil {
			return EndOfRoundResult{}, err
		}
	}
	return EndOfRoundResult{State: next, Ended: false, AdjacencyScored: adjacency}, nil
}
