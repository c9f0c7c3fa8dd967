package rules

import (
	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/wall"
)

// LegalActions enumerates every legal draft action for seat in state, in
// deterministic order: factories 0..4 then the center; within a source,
// colors in canonical order; within a color, pattern-line rows 0..4 then
// Floor. This ordering is a hard requirement (spec §5) so that anything
// built on top — shortlisting, rollouts, scenario sampling — is
// reproducible across runtimes.
func LegalActions(state model.State, seat uint8) ([]model.DraftAction, error) {
	if seat > 1 {
		return nil, invalidPlayer(seat)
	}
	player := state.Players[seat]

	var actions []model.DraftAction
	for i, factory := range state.Factories {
		actions = append(actions, actionsForSource(model.FactorySource(i), factory, player)...)
	}
	actions = append(actions, actionsForSource(model.CenterSource(), state.Center.Tiles, player)...)
	return actions, nil
}

func actionsForSource(source model.ActionSource, tiles model.TileMultiset, player model.PlayerBoard) []model.DraftAction {
	var actions []model.DraftAction
	for _, color := range model.Colors {
		if tiles.Count(color) == 0 {
			continue
		}
		for row := 0; row < model.PatternLineCount; row++ {
			if canPlaceInPatternLine(player, row, color) {
				actions = append(actions, model.DraftAction{
					Source:      source,
					Color:       color,
					Destination: model.PatternLineDestination(row),
				})
			}
		}
		actions = append(actions, model.DraftAction{
			Source:      source,
			Color:       color,
			Destination: model.FloorDestination(),
		})
	}
	return actions
}

// canPlaceInPatternLine reports whether color may legally be placed in
// the given pattern-line row of player: the line must not be complete,
// its existing color (if any) must match, and the wall must not already
// hold that color in that row.
func canPlaceInPatternLine(player model.PlayerBoard, row int, color model.TileColor) bool {
	line := player.PatternLines[row]
	if line.CountFilled == line.Capacity {
		return false
	}
	if line.CountFilled > 0 && line.Color != nil && *line.Color != color {
		return false
	}
	col := wall.ColumnOf(row, color)
	return !player.Wall[row][col]
}
