package rollout

import (
	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/policy"
	"github.com/azulpractice/engine/pkg/rng"
	"github.com/azulpractice/engine/pkg/rules"
)

// Config configures one rollout: which policy plays each seat, the seed
// its RNG derives from, and the safety cutoff on actions simulated.
type Config struct {
	ActivePlayerPolicy policy.Policy
	OpponentPolicy     policy.Policy
	Seed               uint64
	MaxActions         int
}

// Result is a completed rollout's outcome.
type Result struct {
	FinalState        model.State
	Player0Score      int
	Player1Score      int
	ActionsSimulated  int
	CompletedNormally bool
	AdjacencyScored   [2]int
}

// Simulate clones initial, plays the drafting round to completion using
// config's policies, resolves end of round, and reports both seats'
// final scores. It returns a *Error with code DEADLOCK if a seat has no
// legal action before the round completes, or MAX_ACTIONS_EXCEEDED if
// the safety cutoff is hit; any other error is rules validation failing
// on an action a policy should never have produced.
func Simulate(initial model.State, config Config) (Result, error) {
	state := initial.Clone()
	r := rng.New(config.Seed)

	maxActions := config.MaxActions
	if maxActions <= 0 {
		maxActions = DefaultMaxActions
	}

	actionsSimulated := 0
	for !roundComplete(state) {
		if actionsSimulated >= maxActions {
			return Result{}, maxActionsExceeded(maxActions)
		}

		legal, err := rules.LegalActions(state, state.ActivePlayer)
		if err != nil {
			return Result{}, err
		}
		if len(legal) == 0 {
			return Result{}, deadlock(state.ActivePlayer)
		}

		pol := config.ActivePlayerPolicy
		if state.ActivePlayer != 0 {
			pol = config.OpponentPolicy
		}
		action := pol.Choose(state, legal, r)

		next, err := rules.Apply(state, action)
		if err != nil {
			return Result{}, err
		}
		state = next
		actionsSimulated++
	}

	resolution, err := rules.ResolveEndOfRound(state, r)
	if err != nil {
		return Result{}, err
	}

	return Result{
		FinalState:        resolution.State,
		Player0Score:      resolution.State.Players[0].Score,
		Player1Score:      resolution.State.Players[1].Score,
		ActionsSimulated:  actionsSimulated,
		CompletedNormally: true,
		AdjacencyScored:   resolution.AdjacencyScored,
	}, nil
}

// roundComplete reports whether every factory and the center hold no
// tiles (the first-player token may remain).
func roundComplete(state model.State) bool {
	if state.Center.Tiles.Total() != 0 {
		return false
	}
	for _, f := range state.Factories {
		if f.Total() != 0 {
			return false
		}
	}
	return true
}
