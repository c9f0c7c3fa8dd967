package rollout

import "fmt"

// Error is rollout's machine-readable failure: a stable code for the
// JSON boundary (pkg/api) plus a human-readable message.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func deadlock(seat uint8) *Error {
	return &Error{
		Code:    "DEADLOCK",
		Message: fmt.Sprintf("no legal actions for player %d but round is not complete", seat),
	}
}

func maxActionsExceeded(limit int) *Error {
	return &Error{
		Code:    "MAX_ACTIONS_EXCEEDED",
		Message: fmt.Sprintf("rollout exceeded max_actions (%d)", limit),
	}
}
