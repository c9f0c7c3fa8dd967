package rules

import "fmt"

// Error is the rules core's machine-readable validation error: a stable
// code for the JSON boundary (pkg/api), a human-readable message, and
// optional context data for debugging.
type Error struct {
	Code    string
	Message string
	Context map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalidPlayer(playerID uint8) *Error {
	return &Error{
		Code:    "INVALID_PLAYER",
		Message: fmt.Sprintf("player ID %d is out of range", playerID),
		Context: map[string]any{"player_id": playerID},
	}
}

func invalidSource(factoryIdx int) *Error {
	return &Error{
		Code:    "INVALID_SOURCE",
		Message: fmt.Sprintf("factory index %d is out of bounds", factoryIdx),
		Context: map[string]any{"factory_index": factoryIdx},
	}
}

func sourceEmpty(source string, color string) *Error {
	return &Error{
		Code:    "SOURCE_EMPTY",
		Message: fmt.Sprintf("source %s does not contain %s tiles", source, color),
		Context: map[string]any{"source": source, "color": color},
	}
}

func colorMismatch(row int, existing, attempted string) *Error {
	return &Error{
		Code:    "COLOR_MISMATCH",
		Message: fmt.Sprintf("cannot place %s tiles into pattern line %d which contains %s", attempted, row, existing),
		Context: map[string]any{"row": row, "existing_color": existing, "attempted_color": attempted},
	}
}

func wallConflict(row int, color string) *Error {
	return &Error{
		Code:    "WALL_CONFLICT",
		Message: fmt.Sprintf("color %s already exists in wall row %d", color, row),
		Context: map[string]any{"row": row, "color": color},
	}
}

func patternLineComplete(row int) *Error {
	return &Error{
		Code:    "PATTERN_LINE_COMPLETE",
		Message: fmt.Sprintf("pattern line %d is already complete", row),
		Context: map[string]any{"row": row},
	}
}

func invalidDestination(row int) *Error {
	return &Error{
		Code:    "INVALID_DESTINATION",
		Message: fmt.Sprintf("pattern line row %d is out of bounds", row),
		Context: map[string]any{"row": row},
	}
}

func invariantViolation(message string) *Error {
	return &Error{Code: "INVARIANT_VIOLATION", Message: message}
}
