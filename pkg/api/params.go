package api

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/azulpractice/engine/pkg/generator"
	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/rng"
)

// GeneratorParamsJSON is the wire shape generate_scenario accepts. Every
// field is optional; missing fields fall back to a sensible default the
// same way the original wasm_api.generate_scenario does.
type GeneratorParamsJSON struct {
	TargetGameStage  *model.GameStage      `json:"targetGameStage,omitempty"`
	TargetRoundStage *model.RoundStage     `json:"targetRoundStage,omitempty"`
	TargetPhase      *model.GameStage      `json:"targetPhase,omitempty"` // legacy alias for targetGameStage
	Seed             *string               `json:"seed,omitempty"`
	PolicyMix        *string               `json:"policyMix,omitempty"`
	FilterConfig     *model.FilterDefaults `json:"filterConfig,omitempty"`
}

var randomGameStages = [3]model.GameStage{model.GameEarly, model.GameMid, model.GameLate}

func randomSeed() uint64 {
	// #nosec G404 -- scenario generation seed variety, not a security token.
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return r.Uint64()
}

// toInternal converts the wire params into generator.Params plus the
// filter thresholds to check the result against, applying defaults for
// every field the caller omitted.
func (p GeneratorParamsJSON) toInternal() (generator.Params, model.FilterDefaults, error) {
	targetGameStage := p.TargetGameStage
	if targetGameStage == nil {
		targetGameStage = p.TargetPhase
	}
	var stage model.GameStage
	if targetGameStage != nil {
		stage = *targetGameStage
	} else {
		// #nosec G404 -- target-stage selection, not a security token.
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		stage = randomGameStages[r.Intn(len(randomGameStages))]
	}

	seed := randomSeed()
	if p.Seed != nil {
		parsed, err := rng.ParseSeedString(*p.Seed)
		if err != nil {
			return generator.Params{}, model.FilterDefaults{}, fmt.Errorf("invalid seed: %w", err)
		}
		seed = parsed
	}

	policyMix := model.DefaultPolicyMixConfig()
	if p.PolicyMix != nil {
		switch *p.PolicyMix {
		case "random":
			policyMix = model.PolicyMixConfig{Kind: model.PolicyMixRandom}
		case "greedy":
			policyMix = model.PolicyMixConfig{Kind: model.PolicyMixGreedy}
		case "mixed":
			policyMix = model.PolicyMixConfig{Kind: model.PolicyMixMixed, GreedyRatio: 0.7}
		default:
			return generator.Params{}, model.FilterDefaults{}, fmt.Errorf("invalid policyMix: %q (expected 'random', 'greedy', or 'mixed')", *p.PolicyMix)
		}
	}

	filterConfig := model.DefaultFilterDefaults()
	if p.FilterConfig != nil {
		filterConfig = *p.FilterConfig
	}

	return generator.Params{
		TargetGameStage:  stage,
		TargetRoundStage: p.TargetRoundStage,
		Seed:             seed,
		PolicyMix:        policyMix,
	}, filterConfig, nil
}
