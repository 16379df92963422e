package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoAction is matched by every *NoActionError via errors.Is.
var ErrNoAction = errors.New("no action resolvable")

// NoActionError reports that neither a segment-derived name nor the default
// action is callable for a route.
type NoActionError struct {
	Route RouteMeta
	// Tried holds the candidate names in search order. When a default action
	// was configured it is the last entry.
	Tried []string
	// Default is the full default action name, empty when disabled.
	Default string
}

func (e *NoActionError) Error() string {
	return fmt.Sprintf("%s for route %q (%s), tried [%s]",
		ErrNoAction, e.Route.Name, e.Route.Pattern, strings.Join(e.Tried, ", "))
}

func (e *NoActionError) Is(target error) bool {
	return target == ErrNoAction
}
