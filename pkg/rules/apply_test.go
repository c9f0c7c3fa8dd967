package rules

import (
	"testing"

	"github.com/azulpractice/engine/pkg/model"
)

func TestApply_FactorySpillMovesLeftoversToCenter(t *testing.T) {
	state := model.NewState()
	state.Factories[0] = model.NewTileMultiset()
	state.Factories[0].Add(model.Red, 3)
	state.Factories[0].Add(model.Blue, 1)
	// Fill the bag up to the full tile count so the Debug conservation
	// recheck accepts the state.
	state.Bag.Add(model.White, model.TotalTiles-state.TotalTileCount())

	next, err := Apply(state, model.DraftAction{
		Source:      model.FactorySource(0),
		Color:       model.Red,
		Destination: model.PatternLineDestination(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Factories[0].Total() != 0 {
		t.Errorf("factory 0 total = %d, want 0", next.Factories[0].Total())
	}
	if next.Center.Tiles.Count(model.Blue) != 1 {
		t.Errorf("center blue count = %d, want 1", next.Center.Tiles.Count(model.Blue))
	}
}

func TestApply_DocumentedOverflowScenario(t *testing.T) {
	state := model.NewState()
	state.Factories[0] = model.NewTileMultiset()
	state.Factories[0].Add(model.Red, 3)
	red := model.Red
	state.Players[0].PatternLines[1] = model.PatternLine{Capacity: 2, Color: &red, CountFilled: 1}
	state.Bag.Add(model.White, model.TotalTiles-state.TotalTileCount())

	next, err := Apply(state, model.DraftAction{
		Source:      model.FactorySource(0),
		Color:       model.Red,
		Destination: model.PatternLineDestination(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line := next.Players[0].PatternLines[1]
	if !line.IsComplete() {
		t.Fatal("expected line to be complete")
	}
	if len(next.Players[0].FloorLine.Tiles) != 2 {
		t.Errorf("floor tile count = %d, want 2 (overflow)", len(next.Players[0].FloorLine.Tiles))
	}
	if next.ActivePlayer != 1 {
		t.Errorf("active player = %d, want 1 (toggled)", next.ActivePlayer)
	}
}

func TestApply_TokenTransferFromCenter(t *testing.T) {
	state := model.NewState()
	state.Center.Tiles.Add(model.Blue, 2)
	state.Center.HasFirstPlayerToken = true
	state.Bag.Add(model.White, model.TotalTiles-state.TotalTileCount())

	next, err := Apply(state, model.DraftAction{
		Source:      model.CenterSource(),
		Color:       model.Blue,
		Destination: model.FloorDestination(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Center.HasFirstPlayerToken {
		t.Error("expected token to leave the center")
	}
	if !next.Players[0].FloorLine.HasFirstPlayerToken {
		t.Error("expected the acting player to receive the token")
	}
}

func TestApply_RejectsSourceEmpty(t *testing.T) {
	state := model.NewState()
	_, err := Apply(state, model.DraftAction{
		Source:      model.FactorySource(0),
		Color:       model.Blue,
		Destination: model.FloorDestination(),
	})
	if err == nil {
		t.Fatal("expected SOURCE_EMPTY error")
	}
	if err.(*Error).Code != "SOURCE_EMPTY" {
		t.Errorf("code = %s, want SOURCE_EMPTY", err.(*Error).Code)
	}
}

func TestApply_RejectsColorMismatch(t *testing.T) {
	state := model.NewState()
	state.Factories[0] = model.NewTileMultiset()
	state.Factories[0].Add(model.Red, 2)
	blue := model.Blue
	state.Players[0].PatternLines[1] = model.PatternLine{Capacity: 2, Color: &blue, CountFilled: 1}

	_, err := Apply(state, model.DraftAction{
		Source:      model.FactorySource(0),
		Color:       model.Red,
		Destination: model.PatternLineDestination(1),
	})
	if err == nil || err.(*Error).Code != "COLOR_MISMATCH" {
		t.Fatalf("expected COLOR_MISMATCH, got %v", err)
	}
}

func TestApply_RejectsWallConflict(t *testing.T) {
	state := model.NewState()
	state.Factories[0] = model.NewTileMultiset()
	state.Factories[0].Add(model.Blue, 2)
	state.Players[0].Wall[0][0] = true

	_, err := Apply(state, model.DraftAction{
		Source:      model.FactorySource(0),
		Color:       model.Blue,
		Destination: model.PatternLineDestination(0),
	})
	if err == nil || err.(*Error).Code != "WALL_CONFLICT" {
		t.Fatalf("expected WALL_CONFLICT, got %v", err)
	}
}

func TestApply_RejectsPatternLineComplete(t *testing.T) {
	state := model.NewState()
	state.Factories[0] = model.NewTileMultiset()
	state.Factories[0].Add(model.Blue, 2)
	blue := model.Blue
	state.Players[0].PatternLines[0] = model.PatternLine{Capacity: 1, Color: &blue, CountFilled: 1}

	_, err := Apply(state, model.DraftAction{
		Source:      model.FactorySource(0),
		Color:       model.Blue,
		Destination: model.PatternLineDestination(0),
	})
	if err == nil || err.(*Error).Code != "PATTERN_LINE_COMPLETE" {
		t.Fatalf("expected PATTERN_LINE_COMPLETE, got %v", err)
	}
}

func TestApply_RejectsInvalidFactoryIndex(t *testing.T) {
	state := model.NewState()
	_, err := Apply(state, model.DraftAction{
		Source:      model.FactorySource(99),
		Color:       model.Blue,
		Destination: model.FloorDestination(),
	})
	if err == nil || err.(*Error).Code != "INVALID_SOURCE" {
		t.Fatalf("expected INVALID_SOURCE, got %v", err)
	}
}

func TestApply_DoesNotMutateInputState(t *testing.T) {
	state := model.NewState()
	state.Factories[0] = model.NewTileMultiset()
	state.Factories[0].Add(model.Blue, 2)
	state.Bag.Add(model.White, model.TotalTiles-state.TotalTileCount())

	_, err := Apply(state, model.DraftAction{
		Source:      model.FactorySource(0),
		Color:       model.Blue,
		Destination: model.FloorDestination(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Factories[0].Total() != 2 {
		t.Errorf("input state was mutated: factory 0 total = %d, want 2", state.Factories[0].Total())
	}
}
