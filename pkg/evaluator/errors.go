package evaluator

import "fmt"

// Error is the evaluator's machine-readable failure: a stable code for
// the JSON boundary (pkg/api) plus a human-readable message.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func noLegalActions() *Error {
	return &Error{Code: "NO_LEGAL_ACTIONS", Message: "no legal actions available"}
}

func invalidPlayer(playerID uint8) *Error {
	return &Error{Code: "INVALID_PLAYER", Message: fmt.Sprintf("player ID %d is out of range", playerID)}
}

func evaluationFailed(message string) *Error {
	return &Error{Code: "EVALUATION_FAILED", Message: message}
}

func gradingFailed(message string) *Error {
	return &Error{Code: "GRADING_FAILED", Message: message}
}
