package metrics

import "github.com/fitdeck/fitdeck/internal/apperr"

var (
	errNotDurable = &apperr.Error{
		Message: "change kept in memory but not saved",
	}

	errUnknownRecord = &apperr.Error{
		Message: "no %s with id %q",
	}

	errUnknownField = &apperr.Error{
		Message: "unknown recovery field %q (expected sleep, muscle or readiness)",
	}

	errLoad = &apperr.Error{
		Message: "loading dashboard failed",
	}
)

// ErrNotDurable reports that an operation took effect in memory but could not
// be persisted.
var ErrNotDurable error = errNotDurable

// ErrUnknownRecord reports that no history entry or goal has the given id.
var ErrUnknownRecord error = errUnknownRecord
