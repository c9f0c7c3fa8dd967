package generator

import (
	"testing"

	"github.com/azulpractice/engine/pkg/model"
)

func TestComputeRoundStage_Start(t *testing.T) {
	state := model.NewState()
	state.Factories[0].Add(model.Blue, 4)
	state.Factories[1].Add(model.Red, 4)
	state.Factories[2].Add(model.Yellow, 4)
	state.Factories[3].Add(model.Black, 2)
	if got := computeRoundStage(state); got != model.RoundStart {
		t.Errorf("computeRoundStage = %v, want RoundStart", got)
	}
}

func TestComputeRoundStage_Mid(t *testing.T) {
	state := model.NewState()
	state.Factories[0].Add(model.Blue, 3)
	state.Factories[1].Add(model.Red, 3)
	state.Center.Tiles.Add(model.Yellow, 2)
	if got := computeRoundStage(state); got != model.RoundMid {
		t.Errorf("computeRoundStage = %v, want RoundMid", got)
	}
}

func TestComputeRoundStage_End(t *testing.T) {
	state := model.NewState()
	state.Factories[0].Add(model.Blue, 2)
	state.Center.Tiles.Add(model.Red, 3)
	if got := computeRoundStage(state); got != model.RoundEnd {
		t.Errorf("computeRoundStage = %v, want RoundEnd", got)
	}
}

func TestComputeGameStage_Early(t *testing.T) {
	state := model.NewState()
	state.Players[0].Wall[0][0] = true
	state.Players[0].Wall[0][1] = true
	state.Players[0].Wall[1][0] = true
	if got := computeGameStage(state); got != model.GameEarly {
		t.Errorf("computeGameStage = %v, want GameEarly", got)
	}
}

func TestComputeGameStage_Mid(t *testing.T) {
	state := model.NewState()
	for c := 0; c < 3; c++ {
		state.Players[0].Wall[0][c] = true
		state.Players[0].Wall[1][c] = true
		state.Players[0].Wall[2][c] = true
	}
	state.Players[0].Wall[3][0] = true // 10 total, no row >= 4
	if got := computeGameStage(state); got != model.GameMid {
		t.Errorf("computeGameStage = %v, want GameMid", got)
	}
}

func TestComputeGameStage_LateByWallCount(t *testing.T) {
	state := model.NewState()
	for row := 0; row < 4; row++ {
		for c := 0; c < 5; c++ {
			state.Players[0].Wall[row][c] = true
		}
	}
	if got := computeGameStage(state); got != model.GameLate {
		t.Errorf("computeGameStage = %v, want GameLate", got)
	}
}

func TestComputeGameStage_LateByNearCompletion(t *testing.T) {
	state := model.NewState()
	for c := 0; c < 4; c++ {
		state.Players[0].Wall[0][c] = true
	}
	if got := computeGameStage(state); got != model.GameLate {
		t.Errorf("computeGameStage = %v, want GameLate (near row completion)", got)
	}
}
