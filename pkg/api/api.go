package api

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/azulpractice/engine/pkg/evaluator"
	"github.com/azulpractice/engine/pkg/generator"
	"github.com/azulpractice/engine/pkg/model"
	"github.com/azulpractice/engine/pkg/rng"
	"github.com/azulpractice/engine/pkg/rules"
)

// maxGenerationAttempts bounds how many seeds GenerateScenario tries
// before giving up, mirroring the original wasm_api's retry budget.
const maxGenerationAttempts = 500

func newRequestID() string {
	return uuid.NewString()
}

// ListLegalActions returns the JSON array of legal draft actions for
// playerID in the given state, or a JSON error envelope.
func ListLegalActions(stateJSON string, playerID uint8) string {
	requestID := newRequestID()
	log.Debug().Str("request_id", requestID).Str("call", "list_legal_actions").Msg("api call")

	var state model.State
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return serializeError(requestID, "INVALID_JSON", fmt.Sprintf("failed to parse state JSON: %v", err), nil)
	}
	if playerID > 1 {
		return serializeError(requestID, "INVALID_PLAYER", fmt.Sprintf("player ID %d is out of range (must be 0 or 1)", playerID), map[string]any{"player_id": playerID})
	}

	actions, err := rules.LegalActions(state, playerID)
	if err != nil {
		return engineError(requestID, "INVARIANT_VIOLATION", err)
	}

	data, err := json.Marshal(actions)
	if err != nil {
		return serializeError(requestID, "SERIALIZATION_ERROR", fmt.Sprintf("failed to serialize actions: %v", err), nil)
	}
	return string(data)
}

// ApplyAction applies actionJSON to stateJSON and returns the resulting
// state as JSON, or a JSON error envelope.
func ApplyAction(stateJSON, actionJSON string) string {
	requestID := newRequestID()
	log.Debug().Str("request_id", requestID).Str("call", "apply_action").Msg("api call")

	var state model.State
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return serializeError(requestID, "INVALID_STATE_JSON", fmt.Sprintf("failed to parse state JSON: %v", err), nil)
	}
	var action model.DraftAction
	if err := json.Unmarshal([]byte(actionJSON), &action); err != nil {
		return serializeError(requestID, "INVALID_ACTION_JSON", fmt.Sprintf("failed to parse action JSON: %v", err), nil)
	}

	newState, err := rules.Apply(state, action)
	if err != nil {
		return engineError(requestID, "INVARIANT_VIOLATION", err)
	}

	data, err := json.Marshal(newState)
	if err != nil {
		return serializeError(requestID, "SERIALIZATION_ERROR", fmt.Sprintf("failed to serialize state: %v", err), nil)
	}
	return string(data)
}

// ResolveEndOfRound scores tiles, applies floor penalties, and refills
// factories for stateJSON, returning the resulting state as JSON.
func ResolveEndOfRound(stateJSON string) string {
	requestID := newRequestID()
	log.Debug().Str("request_id", requestID).Str("call", "resolve_end_of_round").Msg("api call")

	var state model.State
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return serializeError(requestID, "INVALID_STATE_JSON", fmt.Sprintf("failed to parse state JSON: %v", err), nil)
	}

	// The wire state carries no RNG seed (the original engine drew its
	// refill tiles from the process-global RNG here too); a fresh random
	// seed per call preserves that "caller never supplies one" contract
	// while keeping pkg/rules itself deterministic and testable.
	r := rng.New(randomSeed())
	result, err := rules.ResolveEndOfRound(state, r)
	if err != nil {
		return engineError(requestID, "INVARIANT_VIOLATION", err)
	}

	data, err := json.Marshal(result.State)
	if err != nil {
		return serializeError(requestID, "SERIALIZATION_ERROR", fmt.Sprintf("failed to serialize state: %v", err), nil)
	}
	return string(data)
}

// GenerateScenario builds a practice state from paramsJSON (a
// GeneratorParamsJSON), returning the generated state as JSON.
func GenerateScenario(paramsJSON string) string {
	requestID := newRequestID()
	log.Debug().Str("request_id", requestID).Str("call", "generate_scenario").Msg("api call")

	var params GeneratorParamsJSON
	if paramsJSON != "" {
		if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
			return serializeError(requestID, "INVALID_PARAMS_JSON", fmt.Sprintf("failed to parse params: %v", err), nil)
		}
	}

	generatorParams, filterConfig, err := params.toInternal()
	if err != nil {
		return serializeError(requestID, "INVALID_PARAMS", err.Error(), nil)
	}

	state, err := generator.GenerateScenarioWithFilters(generatorParams, filterConfig, maxGenerationAttempts)
	if err != nil {
		return engineError(requestID, "GENERATION_FAILED", err)
	}

	data, err := json.Marshal(state)
	if err != nil {
		return serializeError(requestID, "SERIALIZATION_ERROR", fmt.Sprintf("failed to serialize state: %v", err), nil)
	}
	return string(data)
}

// EvaluateBestMove runs rollout-based Monte Carlo evaluation over every
// legal action for playerID and returns the resulting EvaluationResult
// as JSON.
func EvaluateBestMove(stateJSON string, playerID uint8, paramsJSON string) string {
	requestID := newRequestID()
	log.Debug().Str("request_id", requestID).Str("call", "evaluate_best_move").Msg("api call")

	var state model.State
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return serializeError(requestID, "INVALID_STATE_JSON", fmt.Sprintf("failed to parse state JSON: %v", err), nil)
	}
	var params evaluator.EvaluatorParams
	if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
		return serializeError(requestID, "INVALID_PARAMS_JSON", fmt.Sprintf("failed to parse params JSON: %v", err), nil)
	}

	result, err := evaluator.EvaluateBestMove(state, playerID, params)
	if err != nil {
		return engineError(requestID, "EVALUATION_FAILED", err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return serializeError(requestID, "SERIALIZATION_ERROR", fmt.Sprintf("failed to serialize result: %v", err), nil)
	}
	return string(data)
}

// GradeUserAction evaluates the best move then grades userActionJSON
// against it, returning the enriched EvaluationResult as JSON.
func GradeUserAction(stateJSON string, playerID uint8, userActionJSON, paramsJSON string) string {
	requestID := newRequestID()
	log.Debug().Str("request_id", requestID).Str("call", "grade_user_action").Msg("api call")

	var state model.State
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return serializeError(requestID, "INVALID_STATE_JSON", fmt.Sprintf("failed to parse state JSON: %v", err), nil)
	}
	var userAction model.DraftAction
	if err := json.Unmarshal([]byte(userActionJSON), &userAction); err != nil {
		return serializeError(requestID, "INVALID_ACTION_JSON", fmt.Sprintf("failed to parse action JSON: %v", err), nil)
	}
	var params evaluator.EvaluatorParams
	if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
		return serializeError(requestID, "INVALID_PARAMS_JSON", fmt.Sprintf("failed to parse params JSON: %v", err), nil)
	}

	bestResult, err := evaluator.EvaluateBestMove(state, playerID, params)
	if err != nil {
		return engineError(requestID, "EVALUATION_FAILED", err)
	}

	result, err := evaluator.GradeUserAction(state, playerID, userAction, params, bestResult)
	if err != nil {
		return engineError(requestID, "GRADING_FAILED", err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return serializeError(requestID, "SERIALIZATION_ERROR", fmt.Sprintf("failed to serialize result: %v", err), nil)
	}
	return string(data)
}
