package generator

import (
	"testing"

	"github.com/azulpractice/engine/pkg/model"
)

func TestPassesQualityFilters_TooFewActions(t *testing.T) {
	state := model.NewState()
	state.Factories[0].Add(model.Blue, 2)

	config := model.FilterDefaults{MinLegalActions: 100, MinUniqueDestinations: 2, MaxFloorRatio: 1.0}
	ok, err := PassesQualityFilters(state, config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected filter to reject a scenario with too few legal actions")
	}
}

func TestPassesQualityFilters_Passes(t *testing.T) {
	state := model.NewState()
	state.Factories[0].Add(model.Blue, 2)
	state.Factories[1].Add(model.Red, 2)
	state.Factories[2].Add(model.Yellow, 2)

	config := model.DefaultFilterDefaults()
	ok, err := PassesQualityFilters(state, config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected filter to pass a scenario with multiple factories of distinct colors")
	}
}

func TestCountUniqueDestinations_AllFloor(t *testing.T) {
	actions := []model.DraftAction{
		{Source: model.FactorySource(0), Color: model.Blue, Destination: model.FloorDestination()},
		{Source: model.FactorySource(1), Color: model.Red, Destination: model.FloorDestination()},
	}
	if got := countUniqueDestinations(actions); got != 1 {
		t.Errorf("countUniqueDestinations = %d, want 1", got)
	}
}

func TestCountUniqueDestinations_Mixed(t *testing.T) {
	actions := []model.DraftAction{
		{Source: model.FactorySource(0), Color: model.Blue, Destination: model.FloorDestination()},
		{Source: model.FactorySource(1), Color: model.Red, Destination: model.PatternLineDestination(0)},
		{Source: model.FactorySource(2), Color: model.Yellow, Destination: model.PatternLineDestination(0)},
	}
	if got := countUniqueDestinations(actions); got != 2 {
		t.Errorf("countUniqueDestinations = %d, want 2", got)
	}
}

func TestPassesQualityFilters_RequireNonFloorOptionRejectsAllFloor(t *testing.T) {
	state := model.NewState()
	for row := 0; row < 5; row++ {
		for c := 0; c < 5; c++ {
			state.Players[0].Wall[row][c] = true
		}
	}
	state.Factories[0].Add(model.Blue, 2)

	config := model.FilterDefaults{MinLegalActions: 1, MinUniqueDestinations: 1, RequireNonFloorOption: true, MaxFloorRatio: 1.0}
	ok, err := PassesQualityFilters(state, config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected RequireNonFloorOption to reject an all-floor scenario")
	}
}
