package policy

import (
	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/rng"
)

// Policy selects one action from a non-empty list of legal actions.
// Implementations may consult state for context (Greedy does; Random
// ignores it) and must consume r for any randomness so selection stays
// reproducible under a fixed seed.
type Policy interface {
	Choose(state model.State, legal []model.DraftAction, r *rng.RNG) model.DraftAction
}

// Random selects uniformly among the legal actions.
type Random struct{}

// Choose returns a uniformly random legal action. It panics if legal is
// empty — callers are expected to check legality first, exactly as
// pkg/rollout does before invoking a policy.
func (Random) Choose(_ model.State, legal []model.DraftAction, r *rng.RNG) model.DraftAction {
	return legal[r.Intn(len(legal))]
}

// Greedy scores every legal action with a heuristic that favors pattern
// lines over the floor, rows with more empty capacity, taking more
// tiles, and extending an already-started line of the same color, then
// picks uniformly among the top-scoring actions.
type Greedy struct{}

// Choose returns the highest-scoring legal action, breaking ties
// uniformly at random. It panics if legal is empty.
func (Greedy) Choose(state model.State, legal []model.DraftAction, r *rng.RNG) model.DraftAction {
	player := state.Players[state.ActivePlayer]

	best := legal[0]
	bestScore := ScoreAction(state, player, legal[0])
	var ties []model.DraftAction
	ties = append(ties, best)

	for _, action := range legal[1:] {
		score := ScoreAction(state, player, action)
		switch {
		case score > bestScore:
			bestScore = score
			best = action
			ties = ties[:0]
			ties = append(ties, action)
		case score == bestScore:
			ties = append(ties, action)
		}
	}
	if len(ties) == 1 {
		return best
	}
	return ties[r.Intn(len(ties))]
}

// ScoreAction computes the greedy heuristic score for action, taken by
// player from state: 10 tiles-taken, plus — only for a PatternLine
// destination — 100 base, 5 per empty slot in the line before placement,
// and 15 more if the line is already partially filled with the same
// color.
func ScoreAction(state model.State, player model.PlayerBoard, action model.DraftAction) int {
	n := tileCount(state, action)
	score := 10 * n

	if action.Destination.Kind != model.DestPatternLine {
		return score
	}

	line := player.PatternLines[action.Destination.Row]
	empty := line.Capacity - line.CountFilled
	score += 100 + 5*empty
	if line.CountFilled > 0 && line.Color != nil && *line.Color == action.Color {
		score += 15
	}
	return score
}

func tileCount(state model.State, action model.DraftAction) int {
	switch action.Source.Kind {
	case model.SourceFactory:
		return state.Factories[action.Source.FactoryIndex].Count(action.Color)
	default:
		return state.Center.Tiles.Count(action.Color)
	}
}

// Mixed chooses Greedy with probability Ratio and Random otherwise.
type Mixed struct {
	Ratio float64
}

// Choose draws one float64 from r; below Ratio it delegates to Greedy,
// otherwise to Random.
func (m Mixed) Choose(state model.State, legal []model.DraftAction, r *rng.RNG) model.DraftAction {
	if r.Float64() < m.Ratio {
		return Greedy{}.Choose(state, legal, r)
	}
	return Random{}.Choose(state, legal, r)
}

// FromConfig builds the Policy named by a model.PolicyMixConfig.
func FromConfig(cfg model.PolicyMixConfig) Policy {
	switch cfg.Kind {
	case model.PolicyMixRandom:
		return Random{}
	case model.PolicyMixGreedy:
		return Greedy{}
	default:
		return Mixed{Ratio: cfg.GreedyRatio}
	}
}
