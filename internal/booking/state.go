package booking

import (
	"net/http"
	"strings"

	"github.com/peershare/item-sharing-backend/internal/pkg/apperror"
)

// ErrUnsupportedState rejects unknown state filter tokens. The message is
// part of the public API contract.
var ErrUnsupportedState = apperror.New(http.StatusBadRequest, "Unknown state: UNSUPPORTED_STATUS")

// State classifies bookings at query time, relative to "now" and to status.
// It is a filter, not a persisted value.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT" // start < now < end
	StatePast     State = "PAST"    // end < now
	StateFuture   State = "FUTURE"  // start > now
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState parses a state token case-insensitively. An empty token means
// ALL; anything unrecognized fails with ErrUnsupportedState.
func ParseState(raw string) (State, error) {
	switch State(strings.ToUpper(strings.TrimSpace(raw))) {
	case "", StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", ErrUnsupportedState
	}
}
