package generator

import "fmt"

// Error is the generator's machine-readable failure: a stable code for
// the JSON boundary (pkg/api) plus a human-readable message.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func generationFailed(message string) *Error {
	return &Error{Code: "GENERATION_FAILED", Message: message}
}
