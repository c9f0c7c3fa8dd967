package generator

import "github.com/azulpractice/engine/pkg/model"

// computeRoundStage classifies within-round progress by tiles remaining
// on the table: 14 or more is Start, 7 through 13 is Mid, 6 or fewer is
// End.
func computeRoundStage(state model.State) model.RoundStage {
	total := state.TableTileCount()
	switch {
	case total >= 14:
		return model.RoundStart
	case total >= 7:
		return model.RoundMid
	default:
		return model.RoundEnd
	}
}

// computeGameStage classifies across-game progress by wall development:
// the max wall-tile count across seats, and whether any row is within one
// tile of completion (4 of 5 filled). Late if the max is 18 or more or
// any row is near-complete; Mid if 9 through 17; Early otherwise.
func computeGameStage(state model.State) model.GameStage {
	maxWallTiles := 0
	nearCompletion := false
	for _, player := range state.Players {
		tiles := player.Wall.Count()
		if tiles > maxWallTiles {
			maxWallTiles = tiles
		}
		for row := 0; row < 5; row++ {
			if player.Wall.RowCount(row) >= 4 {
				nearCompletion = true
			}
		}
	}
	switch {
	case nearCompletion || maxWallTiles >= 18:
		return model.GameLate
	case maxWallTiles >= 9:
		return model.GameMid
	default:
		return model.GameEarly
	}
}
