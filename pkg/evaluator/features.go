package evaluator

import "github.com/azulpractice/engine/pkg/model"

// ActionFeatures summarizes what an action is expected to cost and earn,
// averaged across the rollouts that evaluated it. These are the numbers
// feedback bullets are built from, not the EV itself.
type ActionFeatures struct {
	ExpectedFloorPenalty    float64 `json:"expected_floor_penalty"`
	ExpectedCompletions     float64 `json:"expected_completions"`
	ExpectedAdjacencyPoints float64 `json:"expected_adjacency_points"`
	ExpectedTilesToFloor    float64 `json:"expected_tiles_to_floor"`
	TilesAcquired           int     `json:"tiles_acquired"`
	TakesFirstPlayerToken   bool    `json:"takes_first_player_token"`
}

// CountPatternLinesCompleted reports how many of the seat's pattern lines
// went from complete to empty between before and after — the signature
// left by ResolvePatternLines tiling and resetting a line during end of
// round resolution.
func CountPatternLinesCompleted(before, after model.PlayerBoard) int {
	n := 0
	for row := range before.PatternLines {
		b := before.PatternLines[row]
		a := after.PatternLines[row]
		if b.IsComplete() && a.CountFilled == 0 {
			n++
		}
	}
	return n
}

// countTilesToFloor reports how many tiles landed on a seat's floor line
// between before and after, clamped to zero for a floor line that was
// cleared by end-of-round resolution in between (grading never compares
// across a round boundary, but a defensive clamp costs nothing here).
func countTilesToFloor(before, after model.PlayerBoard) int {
	delta := len(after.FloorLine.Tiles) - len(before.FloorLine.Tiles)
	if delta < 0 {
		return 0
	}
	return delta
}

// takesFirstPlayerToken reports whether applying action hands seat the
// first-player token it didn't already hold.
func takesFirstPlayerToken(state model.State, seat uint8, action model.DraftAction) bool {
	if state.Players[seat].FloorLine.HasFirstPlayerToken {
		return false
	}
	return action.Source.Kind == model.SourceCenter && state.Center.HasFirstPlayerToken
}

// tilesAcquired reports how many tiles of action's color the source holds
// before the action is applied — the static count any rollout of this
// action would move.
func tilesAcquired(state model.State, action model.DraftAction) int {
	switch action.Source.Kind {
	case model.SourceFactory:
		return state.Factories[action.Source.FactoryIndex].Count(action.Color)
	default:
		return state.Center.Tiles.Count(action.Color)
	}
}
