package generator

import (
	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/rules"
)

// destFloor is the single bucket every Floor destination hashes to when
// counting unique destinations; pattern-line rows bucket by row index.
const destFloor = -1

// countUniqueDestinations counts the distinct destinations named by
// actions: each pattern-line row is its own destination, and every Floor
// destination counts once, together.
func countUniqueDestinations(actions []model.DraftAction) int {
	seen := make(map[int]struct{})
	for _, a := range actions {
		if a.Destination.Kind == model.DestFloor {
			seen[destFloor] = struct{}{}
		} else {
			seen[a.Destination.Row] = struct{}{}
		}
	}
	return len(seen)
}

// floorActionRatio is the fraction of actions whose destination is Floor.
func floorActionRatio(actions []model.DraftAction) float64 {
	if len(actions) == 0 {
		return 0
	}
	floor := 0
	for _, a := range actions {
		if a.Destination.Kind == model.DestFloor {
			floor++
		}
	}
	return float64(floor) / float64(len(actions))
}

// PassesQualityFilters reports whether state meets every threshold in
// config for the active seat's legal actions: at least MinLegalActions
// legal actions, at least MinUniqueDestinations distinct destinations,
// not every action routed to Floor when RequireNonFloorOption is set, and
// a floor-action ratio no higher than MaxFloorRatio. MinEVGap/MaxEVGap are
// declared on config but never checked here — they require an evaluation
// pass this package does not run; a host applies them itself after
// calling pkg/evaluator.
func PassesQualityFilters(state model.State, config model.FilterDefaults) (bool, error) {
	legal, err := rules.LegalActions(state, state.ActivePlayer)
	if err != nil {
		return false, err
	}

	if len(legal) < config.MinLegalActions {
		return false, nil
	}
	if countUniqueDestinations(legal) < config.MinUniqueDestinations {
		return false, nil
	}
	if config.RequireNonFloorOption {
		allFloor := true
		for _, a := range legal {
			if a.Destination.Kind != model.DestFloor {
				allFloor = false
				break
			}
		}
		if allFloor {
			return false, nil
		}
	}
	if floorActionRatio(legal) > config.MaxFloorRatio {
		return false, nil
	}
	return true, nil
}
