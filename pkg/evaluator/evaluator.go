package evaluator

import (
	"time"

	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/policy"
	"github.com/azulpractice/engine/pkg/rng"
	"github.com/azulpractice/engine/pkg/rollout"
	"github.com/azulpractice/engine/pkg/rules"
	"github.com/azulpractice/engine/pkg/wall"
)

// RolloutPolicyConfig names which policy plays each seat during a
// candidate's rollouts. The default is both seats playing Greedy, the
// strongest single-ply heuristic available, so EV differences reflect
// the candidate action rather than noisy opponent play.
type RolloutPolicyConfig struct {
	ActivePlayerPolicy model.PolicyMixConfig `json:"activePlayerPolicy"`
	OpponentPolicy     model.PolicyMixConfig `json:"opponentPolicy"`
}

// DefaultRolloutPolicyConfig returns both seats set to Greedy.
func DefaultRolloutPolicyConfig() RolloutPolicyConfig {
	greedy := model.PolicyMixConfig{Kind: model.PolicyMixGreedy}
	return RolloutPolicyConfig{ActivePlayerPolicy: greedy, OpponentPolicy: greedy}
}

// EvaluatorParams configures one evaluation pass.
type EvaluatorParams struct {
	TimeBudgetMs      int                 `json:"timeBudgetMs"`
	RolloutsPerAction int                 `json:"rolloutsPerAction"`
	EvaluatorSeed     uint64              `json:"evaluatorSeed"`
	ShortlistSize     int                 `json:"shortlistSize"`
	RolloutConfig     RolloutPolicyConfig `json:"rolloutConfig"`
	MaxActions        int                 `json:"maxActions"`
}

// ParamsFromDefaults builds EvaluatorParams from a host's model.Config
// defaults plus a per-call seed.
func ParamsFromDefaults(defaults model.EvaluatorDefaults, seed uint64) EvaluatorParams {
	return EvaluatorParams{
		TimeBudgetMs:      defaults.TimeBudgetMs,
		RolloutsPerAction: defaults.RolloutsPerAction,
		EvaluatorSeed:     seed,
		ShortlistSize:     defaults.ShortlistSize,
		RolloutConfig:     DefaultRolloutPolicyConfig(),
	}
}

// CandidateAction is one legal action's evaluated expected value.
type CandidateAction struct {
	Action   model.DraftAction `json:"action"`
	EV       float64           `json:"ev"`
	Rollouts int               `json:"rollouts"`
	Features ActionFeatures    `json:"features"`
}

// EvaluationMetadata records how an evaluation pass actually ran, for
// callers (and tests) that care whether the time budget was hit.
type EvaluationMetadata struct {
	ElapsedMs             int64  `json:"elapsed_ms"`
	RolloutsRun           int    `json:"rollouts_run"`
	CandidatesEvaluated   int    `json:"candidates_evaluated"`
	TotalLegalActions     int    `json:"total_legal_actions"`
	Seed                  uint64 `json:"seed"`
	CompletedWithinBudget bool   `json:"completed_within_budget"`
}

// EvaluationResult is what EvaluateBestMove returns, and what
// GradeUserAction enriches with the user's own comparison fields.
type EvaluationResult struct {
	BestAction   model.DraftAction  `json:"best_action"`
	BestEV       float64            `json:"best_ev"`
	BestFeatures ActionFeatures     `json:"best_features"`
	Candidates   []CandidateAction  `json:"candidates"`
	Metadata     EvaluationMetadata `json:"metadata"`

	UserAction   *model.DraftAction `json:"user_action,omitempty"`
	UserEV       *float64           `json:"user_ev,omitempty"`
	DeltaEV      *float64           `json:"delta_ev,omitempty"`
	UserFeatures *ActionFeatures    `json:"user_features,omitempty"`
	Feedback     []FeedbackBullet   `json:"feedback,omitempty"`
	Grade        *Grade             `json:"grade,omitempty"`
}

// countPlaceableRows counts how many of the five pattern-line rows could
// legally accept color right now — the color-versatility component of
// the shortlist heuristic.
func countPlaceableRows(player model.PlayerBoard, color model.TileColor) int {
	n := 0
	for row := range player.PatternLines {
		line := player.PatternLines[row]
		if line.IsComplete() {
			continue
		}
		if line.CountFilled > 0 && line.Color != nil && *line.Color != color {
			continue
		}
		if player.Wall[row][wall.ColumnOf(row, color)] {
			continue
		}
		n++
	}
	return n
}

// scoreActionHeuristic ranks candidates for shortlisting before rollouts
// run: it rewards color versatility (how many rows could still take this
// color) and penalizes drawing the first-player token out of the center,
// since that token costs floor-penalty points this cheap heuristic can't
// otherwise see.
func scoreActionHeuristic(state model.State, seat uint8, action model.DraftAction) float64 {
	player := state.Players[seat]
	score := policy.ScoreAction(state, player, action)
	fscore := float64(score)
	fscore += float64(countPlaceableRows(player, action.Color)) * 3.0
	if action.Source.Kind == model.SourceCenter && state.Center.HasFirstPlayerToken {
		fscore -= 15.0
	}
	return fscore
}

// shortlistActions returns the size highest-heuristic-scoring actions
// from legal, or legal unchanged if it already fits within size (or size
// is 0, disabling shortlisting).
func shortlistActions(state model.State, seat uint8, legal []model.DraftAction, size int) []model.DraftAction {
	if size <= 0 || len(legal) <= size {
		return legal
	}
	type scored struct {
		action model.DraftAction
		score  float64
	}
	ranked := make([]scored, len(legal))
	for i, a := range legal {
		ranked[i] = scored{action: a, score: scoreActionHeuristic(state, seat, a)}
	}
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].score > ranked[j-1].score; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	out := make([]model.DraftAction, size)
	for i := 0; i < size; i++ {
		out[i] = ranked[i].action
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// evaluateCandidate runs one rollout of action from state for seat per
// entry of seeds (derived by the caller with rng.RolloutSeed or
// rng.GradingRolloutSeed), and returns the mean utility plus the averaged
// ActionFeatures.
func evaluateCandidate(state model.State, seat uint8, action model.DraftAction, params EvaluatorParams, seeds []uint64) (float64, ActionFeatures, error) {
	before := state.Players[seat]
	afterAction, err := rules.Apply(state, action)
	if err != nil {
		return 0, ActionFeatures{}, evaluationFailed(err.Error())
	}

	// The floor-penalty and tiles-to-floor cost of this action is settled
	// the instant it is applied — the pattern-line/floor placement is
	// deterministic given the action — so it is computed once here rather
	// than re-derived from each rollout's (post-resolution, floor-cleared)
	// final state.
	afterFloor := afterAction.Players[seat].FloorLine
	immediateTilesToFloor := countTilesToFloor(before, afterAction.Players[seat])
	immediateFloorPenalty := rules.FloorPenalty(len(afterFloor.Tiles), afterFloor.HasFirstPlayerToken)

	utilities := make([]float64, 0, len(seeds))
	var completionSum, adjacencySum float64

	activePolicy := policy.FromConfig(params.RolloutConfig.ActivePlayerPolicy)
	opponentPolicy := policy.FromConfig(params.RolloutConfig.OpponentPolicy)

	for _, seed := range seeds {
		cfg := rollout.Config{
			ActivePlayerPolicy: activePolicy,
			OpponentPolicy:     opponentPolicy,
			Seed:               seed,
			MaxActions:         params.MaxActions,
		}
		result, err := rollout.Simulate(afterAction, cfg)
		if err != nil {
			return 0, ActionFeatures{}, evaluationFailed(err.Error())
		}

		var utility float64
		if seat == 0 {
			utility = float64(result.Player0Score - result.Player1Score)
		} else {
			utility = float64(result.Player1Score - result.Player0Score)
		}
		utilities = append(utilities, utility)

		after := result.FinalState.Players[seat]
		completionSum += float64(CountPatternLinesCompleted(afterAction.Players[seat], after))
		adjacencySum += float64(result.AdjacencyScored[seat])
	}

	n := float64(len(seeds))
	features := ActionFeatures{
		ExpectedFloorPenalty:    float64(-immediateFloorPenalty),
		ExpectedCompletions:     completionSum / n,
		ExpectedAdjacencyPoints: adjacencySum / n,
		ExpectedTilesToFloor:    float64(immediateTilesToFloor),
		TilesAcquired:           tilesAcquired(state, action),
		TakesFirstPlayerToken:   takesFirstPlayerToken(state, seat, action),
	}
	return mean(utilities), features, nil
}

// EvaluateBestMove enumerates every legal action for seat in state,
// shortlists them by a fast heuristic when there are more than
// params.ShortlistSize candidates, runs params.RolloutsPerAction Monte
// Carlo rollouts per candidate with seeds derived by
// rng.RolloutSeed(params.EvaluatorSeed, k) (k a monotonic counter across
// the whole call), and returns the highest-EV action. Time is checked
// between candidates, never between rollouts of the same candidate, and
// only once the budget is exhausted does evaluation stop early with
// whatever candidates it has already scored.
func EvaluateBestMove(state model.State, seat uint8, params EvaluatorParams) (EvaluationResult, error) {
	if seat > 1 {
		return EvaluationResult{}, invalidPlayer(seat)
	}

	legal, err := rules.LegalActions(state, seat)
	if err != nil {
		return EvaluationResult{}, evaluationFailed(err.Error())
	}
	if len(legal) == 0 {
		return EvaluationResult{}, noLegalActions()
	}

	candidates := shortlistActions(state, seat, legal, params.ShortlistSize)

	start := time.Now()
	rolloutsPerAction := params.RolloutsPerAction
	if rolloutsPerAction < 1 {
		rolloutsPerAction = 1
	}

	seedCounter := 0
	results := make([]CandidateAction, 0, len(candidates))
	completedWithinBudget := true

	for i, action := range candidates {
		if i > 0 && params.TimeBudgetMs > 0 {
			if time.Since(start) > time.Duration(params.TimeBudgetMs)*time.Millisecond {
				completedWithinBudget = false
				break
			}
		}

		seeds := make([]uint64, rolloutsPerAction)
		for k := 0; k < rolloutsPerAction; k++ {
			seeds[k] = rng.RolloutSeed(params.EvaluatorSeed, seedCounter)
			seedCounter++
		}

		ev, features, err := evaluateCandidate(state, seat, action, params, seeds)
		if err != nil {
			return EvaluationResult{}, err
		}
		results = append(results, CandidateAction{Action: action, EV: ev, Rollouts: len(seeds), Features: features})
	}

	if len(results) == 0 {
		return EvaluationResult{}, evaluationFailed("no candidate completed within the time budget")
	}

	best := results[0]
	for _, c := range results[1:] {
		if c.EV > best.EV {
			best = c
		}
	}

	return EvaluationResult{
		BestAction:   best.Action,
		BestEV:       best.EV,
		BestFeatures: best.Features,
		Candidates:   results,
		Metadata: EvaluationMetadata{
			ElapsedMs:             time.Since(start).Milliseconds(),
			RolloutsRun:           seedCounter,
			CandidatesEvaluated:   len(results),
			TotalLegalActions:     len(legal),
			Seed:                  params.EvaluatorSeed,
			CompletedWithinBudget: completedWithinBudget,
		},
	}, nil
}

// GradeUserAction checks that userAction is legal in state for seat, then
// compares it against bestResult (a prior EvaluateBestMove call over the
// same state and seat). The user action is always rolled out afresh with
// seeds from rng.GradingRolloutSeed, so it never replays the evaluator's
// own stream, and its features come from those rollouts. If userAction
// already appears in bestResult's candidate list, that candidate's EV is
// used as the user EV, avoiding seed-variance artifacts; otherwise the
// fresh rollouts' EV is used.
func GradeUserAction(state model.State, seat uint8, userAction model.DraftAction, params EvaluatorParams, bestResult EvaluationResult) (EvaluationResult, error) {
	if seat > 1 {
		return EvaluationResult{}, invalidPlayer(seat)
	}

	legal, err := rules.LegalActions(state, seat)
	if err != nil {
		return EvaluationResult{}, gradingFailed(err.Error())
	}
	legalMatch := false
	for _, a := range legal {
		if a.Equal(userAction) {
			legalMatch = true
			break
		}
	}
	if !legalMatch {
		return EvaluationResult{}, gradingFailed("user action is not legal in the given state")
	}

	var userEV float64
	reusedEV := false
	for _, c := range bestResult.Candidates {
		if c.Action.Equal(userAction) {
			userEV = c.EV
			reusedEV = true
			break
		}
	}

	rolloutsPerAction := params.RolloutsPerAction
	if rolloutsPerAction < 1 {
		rolloutsPerAction = 1
	}

	// EV may be reused from the candidate list, but features are always
	// recomputed from fresh grading-seeded rollouts (offset by a fixed
	// large constant from the evaluator's own rollout seeds) to decorrelate
	// the user's feedback from whatever rollouts produced bestResult.
	seeds := make([]uint64, rolloutsPerAction)
	for k := 0; k < rolloutsPerAction; k++ {
		seeds[k] = rng.GradingRolloutSeed(params.EvaluatorSeed, k)
	}
	ev, userFeatures, err := evaluateCandidate(state, seat, userAction, params, seeds)
	if err != nil {
		return EvaluationResult{}, gradingFailed(err.Error())
	}
	if !reusedEV {
		userEV = ev
	}

	deltaEV := bestResult.BestEV - userEV
	grade := ComputeGrade(deltaEV)
	bullets := GenerateFeedbackBullets(userFeatures, bestResult.BestFeatures)

	result := bestResult
	result.UserAction = &userAction
	result.UserEV = &userEV
	result.DeltaEV = &deltaEV
	result.UserFeatures = &userFeatures
	result.Feedback = bullets
	result.Grade = &grade
	return result, nil
}
