package rules

import (
	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/wall"
)

// Apply validates and applies action against the active player named in
// state, returning a new state. state is never mutated; apply clones it
// before making any change. On validation failure state is returned
// unchanged alongside a *Error.
//
// The eight steps: validate, clone, remove tiles from the source,
// spill a factory's leftovers into the center, transfer the first-player
// token if the center yields one, place the drafted tiles (with
// overflow spilling to the floor), toggle the active player, and —
// when Debug is set — recheck tile conservation before returning.
func Apply(state model.State, action model.DraftAction) (model.State, error) {
	seat := state.ActivePlayer
	player := state.Players[seat]

	count, verr := validateSource(state, action.Source, action.Color)
	if verr != nil {
		return state, verr
	}
	if verr := validateDestination(player, action.Destination, action.Color); verr != nil {
		return state, verr
	}

	next := state.Clone()

	switch action.Source.Kind {
	case model.SourceFactory:
		factory := next.Factories[action.Source.FactoryIndex]
		factory.Add(action.Color, -count)
		for _, c := range model.Colors {
			if n := factory.Count(c); n > 0 {
				next.Center.Tiles.Add(c, n)
				factory.Add(c, -n)
			}
		}
		next.Factories[action.Source.FactoryIndex] = factory
	case model.SourceCenter:
		next.Center.Tiles.Add(action.Color, -count)
		if next.Center.HasFirstPlayerToken {
			next.Players[seat].FloorLine.HasFirstPlayerToken = true
			next.Center.HasFirstPlayerToken = false
		}
	}

	placeTiles(&next.Players[seat], action.Destination, action.Color, count)

	next.ActivePlayer = model.Opponent(seat)

	if Debug {
		if err := CheckTileConservation(next); err != nil {
			return state, err
		}
	}

	return next, nil
}

// validateSource checks that source is in range and holds at least one
// tile of color, returning the number of tiles of that color it holds.
func validateSource(state model.State, source model.ActionSource, color model.TileColor) (int, *Error) {
	var tiles model.TileMultiset
	switch source.Kind {
	case model.SourceFactory:
		if source.FactoryIndex < 0 || source.FactoryIndex >= model.FactoryCount {
			return 0, invalidSource(source.FactoryIndex)
		}
		tiles = state.Factories[source.FactoryIndex]
	case model.SourceCenter:
		tiles = state.Center.Tiles
	}
	count := tiles.Count(color)
	if count == 0 {
		return 0, sourceEmpty(source.String(), string(color))
	}
	return count, nil
}

// validateDestination checks that destination legally accepts color for
// player, returning the specific rules error when it does not.
func validateDestination(player model.PlayerBoard, destination model.Destination, color model.TileColor) *Error {
	if destination.Kind == model.DestFloor {
		return nil
	}
	row := destination.Row
	if row < 0 || row >= model.PatternLineCount {
		return invalidDestination(row)
	}
	line := player.PatternLines[row]
	if line.CountFilled == line.Capacity {
		return patternLineComplete(row)
	}
	if line.CountFilled > 0 && line.Color != nil && *line.Color != color {
		return colorMismatch(row, string(*line.Color), string(color))
	}
	col := wall.ColumnOf(row, color)
	if player.Wall[row][col] {
		return wallConflict(row, string(color))
	}
	return nil
}

// placeTiles drops count tiles of color into player's chosen destination,
// spilling any overflow beyond a pattern line's capacity onto the floor.
func placeTiles(player *model.PlayerBoard, destination model.Destination, color model.TileColor, count int) {
	if destination.Kind == model.DestFloor {
		appendToFloor(player, color, count)
		return
	}

	line := &player.PatternLines[destination.Row]
	available := line.Capacity - line.CountFilled
	placed := count
	if placed > available {
		placed = available
	}
	if line.Color == nil {
		c := color
		line.Color = &c
	}
	line.CountFilled += placed

	overflow := count - placed
	if overflow > 0 {
		appendToFloor(player, color, overflow)
	}
}

func appendToFloor(player *model.PlayerBoard, color model.TileColor, count int) {
	for i := 0; i < count; i++ {
		player.FloorLine.Tiles = append(player.FloorLine.Tiles, color)
	}
}
