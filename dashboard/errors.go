package dashboard

import "github.com/fitdeck/fitdeck/internal/apperr"

var (
	errNoSession = &apperr.Error{
		Message: "no workout in progress",
	}

	errInvalidSince = &apperr.Error{
		Message: "since must be a YYYY-MM-DD date",
	}

	errInvalidDelta = &apperr.Error{
		Message: "delta must be an integer",
	}

	errInvalidBody = &apperr.Error{
		Message: "malformed request body",
	}

	errIncompleteGoal = &apperr.Error{
		Message: "a goal needs a name and a target",
	}
)
