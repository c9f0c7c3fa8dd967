package api

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/azulpractice/engine/pkg/evaluator"
	"github.com/azulpractice/engine/pkg/generator"
	"github.com/azulpractice/engine/pkg/rules"
)

// errorEnvelope is the stable JSON shape every failure is reported in:
// {"error": {"code": ..., "message": ..., "context": ...}}.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// serializeError renders code/message/context as the error envelope. It
// never fails: if marshaling the context somehow errors, the context is
// dropped rather than losing the whole response.
func serializeError(requestID, code, message string, context map[string]any) string {
	envelope := errorEnvelope{Error: errorBody{Code: code, Message: message, Context: context}}
	data, err := json.Marshal(envelope)
	if err != nil {
		data, _ = json.Marshal(errorEnvelope{Error: errorBody{Code: code, Message: message}})
	}
	log.Debug().Str("request_id", requestID).Str("code", code).Str("message", message).Msg("api call failed")
	return string(data)
}

// engineError renders whichever of the engine's own *Error types err holds
// as an error envelope, falling back to a generic code if err is some
// other error type entirely (should not happen for calls this package
// makes, but the boundary must never panic on an unexpected error shape).
func engineError(requestID, fallbackCode string, err error) string {
	switch e := err.(type) {
	case *rules.Error:
		return serializeError(requestID, e.Code, e.Message, e.Context)
	case *generator.Error:
		return serializeError(requestID, e.Code, e.Message, nil)
	case *evaluator.Error:
		return serializeError(requestID, e.Code, e.Message, nil)
	default:
		return serializeError(requestID, fallbackCode, err.Error(), nil)
	}
}
