package timer

import "github.com/fitdeck/fitdeck/internal/apperr"

var errInvalidTransition = &apperr.Error{
	Message: "invalid timer transition: cannot %s a timer that is %s",
}

// ErrInvalidTransition is returned when an operation is not allowed in the
// timer's current state. The timer is left unchanged.
var ErrInvalidTransition error = errInvalidTransition
