package generator

import (
	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/policy"
	"github.com/azulpractice/engine/pkg/rng"
	"github.com/azulpractice/engine/pkg/rules"
)

// snapshotFrequency is how often, in decisions, a snapshot is recorded
// during the sampling round.
const snapshotFrequency = 2

// maxDecisions is the safety cutoff on decisions made during the
// sampling round, independent of round_number > 10 bailing out of
// play-forward.
const maxDecisions = 100

// minSnapshotLegalActions is the minimum legal-action count a snapshot
// must have to be recorded at all.
const minSnapshotLegalActions = 3

// Params configures one scenario generation call.
type Params struct {
	TargetGameStage  model.GameStage
	TargetRoundStage *model.RoundStage
	Seed             uint64
	PolicyMix        model.PolicyMixConfig
}

// snapshot is one recorded decision point during play-forward, tagged
// with both stage classifications and its legal-action count (the
// quality score the base implementation ranks snapshots by).
type snapshot struct {
	state            model.State
	gameStage        model.GameStage
	roundStage       model.RoundStage
	legalActionCount int
}

func newSnapshot(state model.State) (snapshot, error) {
	legal, err := rules.LegalActions(state, state.ActivePlayer)
	if err != nil {
		return snapshot{}, err
	}
	return snapshot{
		state:            state,
		gameStage:        computeGameStage(state),
		roundStage:       computeRoundStage(state),
		legalActionCount: len(legal),
	}, nil
}

// createInitialState returns round 1, active player 0, a full bag, and
// factories refilled once from that bag using r.
func createInitialState(r *rng.RNG) model.State {
	state := model.NewState()
	for _, c := range model.Colors {
		state.Bag.Add(c, model.TilesPerColor)
	}
	rules.RefillFactories(&state, r)
	return state
}

// playOneRound plays every legal action for the active seat, choosing
// each with a freshly-selected policy from policyMix, until the round
// empties, then resolves end of round and returns the resulting state.
func playOneRound(state model.State, policyMix model.PolicyMixConfig, r *rng.RNG) (model.State, error) {
	for {
		legal, err := rules.LegalActions(state, state.ActivePlayer)
		if err != nil {
			return model.State{}, err
		}
		if len(legal) == 0 {
			break
		}
		pol := policy.FromConfig(policyMix)
		action := pol.Choose(state, legal, r)
		next, err := rules.Apply(state, action)
		if err != nil {
			return model.State{}, err
		}
		state = next
	}
	result, err := rules.ResolveEndOfRound(state, r)
	if err != nil {
		return model.State{}, err
	}
	return result.State, nil
}

// GenerateScenario plays a round-1 state forward from params.Seed,
// completing full rounds with params.PolicyMix until the game stage
// reaches params.TargetGameStage, then samples snapshots every
// snapshotFrequency decisions in that round and selects the
// highest-legal-action-count snapshot whose tags match
// params.TargetGameStage (strictly) and params.TargetRoundStage (if set).
// There is no fallback to a non-matching stage: if no recorded snapshot
// matches, generation fails and the caller is expected to retry with a
// different seed (see GenerateScenarioWithFilters).
func GenerateScenario(params Params) (model.State, error) {
	r := rng.New(params.Seed)
	state := createInitialState(r)

	for computeGameStage(state) != params.TargetGameStage {
		if state.RoundNumber > 10 {
			return model.State{}, generationFailed("round number exceeded 10 without reaching the target game stage")
		}

		next, err := playOneRound(state, params.PolicyMix, r)
		if err != nil {
			return model.State{}, err
		}
		state = next

		if computeGameStage(state) == params.TargetGameStage {
			break
		}

		targetWallTiles := targetWallTilesFor(params.TargetGameStage)
		if targetWallTiles > 0 {
			wallTiles := 0
			for _, p := range state.Players {
				wallTiles += p.Wall.Count()
			}
			if wallTiles > targetWallTiles+10 {
				return model.State{}, generationFailed("overshot the target game stage by too wide a margin")
			}
		}
	}

	var snapshots []snapshot
	decisionCount := 0
	for {
		legal, err := rules.LegalActions(state, state.ActivePlayer)
		if err != nil {
			return model.State{}, err
		}
		if len(legal) == 0 || decisionCount >= maxDecisions {
			break
		}

		if decisionCount%snapshotFrequency == 0 {
			snap, err := newSnapshot(state)
			if err != nil {
				return model.State{}, err
			}
			if snap.legalActionCount >= minSnapshotLegalActions {
				snapshots = append(snapshots, snap)
			}
		}
		decisionCount++

		pol := policy.FromConfig(params.PolicyMix)
		action := pol.Choose(state, legal, r)
		next, err := rules.Apply(state, action)
		if err != nil {
			return model.State{}, err
		}
		state = next
	}

	if finalLegal, err := rules.LegalActions(state, state.ActivePlayer); err == nil && len(finalLegal) > 0 {
		snap, err := newSnapshot(state)
		if err != nil {
			return model.State{}, err
		}
		if snap.legalActionCount >= minSnapshotLegalActions {
			snapshots = append(snapshots, snap)
		}
	}

	var matching []snapshot
	for _, s := range snapshots {
		if s.gameStage != params.TargetGameStage {
			continue
		}
		if params.TargetRoundStage != nil && s.roundStage != *params.TargetRoundStage {
			continue
		}
		matching = append(matching, s)
	}
	if len(matching) == 0 {
		return model.State{}, generationFailed("no sampled snapshot matched the target stage")
	}

	best := matching[0]
	for _, s := range matching[1:] {
		if s.legalActionCount > best.legalActionCount {
			best = s
		}
	}

	selected := best.state
	seedStr := rng.FormatSeed(params.Seed)
	selected.ScenarioSeed = &seedStr
	selected.DraftPhase = computeRoundStage(selected)
	gameStage := computeGameStage(selected)
	selected.ScenarioStage = &gameStage
	return selected, nil
}

// targetWallTilesFor returns the minimum wall-tile count GenerateScenario
// expects to see once the target game stage is reached, used only to
// detect an overshoot so a hopeless seed fails fast instead of playing
// rounds forever.
func targetWallTilesFor(stage model.GameStage) int {
	switch stage {
	case model.GameMid:
		return 9
	case model.GameLate:
		return 18
	default:
		return 0
	}
}

// GenerateScenarioWithFilters retries GenerateScenario across up to
// maxAttempts seeds derived as params.Seed + attempt*1000, returning the
// first resulting state that also passes PassesQualityFilters against
// filterConfig. If no attempt's state passes the filters, it falls back
// to the last stage-matching state it saw — generation only fails
// outright if no attempt produced a stage-matching state at all.
func GenerateScenarioWithFilters(params Params, filterConfig model.FilterDefaults, maxAttempts int) (model.State, error) {
	var fallback *model.State

	for attempt := 0; attempt < maxAttempts; attempt++ {
		attemptParams := params
		attemptParams.Seed = params.Seed + uint64(attempt)*1000

		state, err := GenerateScenario(attemptParams)
		if err != nil {
			continue
		}
		stateCopy := state
		fallback = &stateCopy

		ok, err := PassesQualityFilters(state, filterConfig)
		if err != nil {
			return model.State{}, err
		}
		if ok {
			return state, nil
		}
	}

	if fallback != nil {
		return *fallback, nil
	}
	return model.State{}, generationFailed("no attempt produced a stage-matching state")
}
