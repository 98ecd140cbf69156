package session

import "github.com/fitdeck/fitdeck/internal/apperr"

var (
	errNotActive = &apperr.Error{
		Message: "cannot %s a workout that is %s",
	}

	errSessionActive = &apperr.Error{
		Message: "workout %q is still active: finish or discard it first",
	}

	errNoSession = &apperr.Error{
		Message: "no workout in progress",
	}
)

// ErrNotActive reports an operation on a completed or discarded session.
var ErrNotActive error = errNotActive

// ErrSessionActive reports an attempt to start a session while another one is
// active.
var ErrSessionActive error = errSessionActive

// ErrNoSession reports an operation that needs a current session when there is
// none.
var ErrNoSession error = errNoSession
