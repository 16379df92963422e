package rctl

import (
	"errors"
	"fmt"

	"github.com/rohanthewiz/rctl/core/resolve"
)

// NoActionError is returned by Dispatch when no action, default included,
// can serve a route.
type NoActionError = resolve.NoActionError

var (
	// ErrNoAction matches every *NoActionError.
	ErrNoAction = resolve.ErrNoAction

	// ErrInvalidActionResult matches every *InvalidActionResultError.
	ErrInvalidActionResult = errors.New("invalid action result")
)

// InvalidActionResultError reports an action that returned something other
// than nil or a View.
type InvalidActionResultError struct {
	Action string
	Value  any
}

func (e *InvalidActionResultError) Error() string {
	return fmt.Sprintf("%s: action %q returned %T (%v), want nil or a View",
		ErrInvalidActionResult, e.Action, e.Value, e.Value)
}

func (e *InvalidActionResultError) Is(target error) bool {
	return target == ErrInvalidActionResult
}
