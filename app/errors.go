package app

import "github.com/fitdeck/fitdeck/internal/apperr"

var (
	errNoConfig = &apperr.Error{
		Message: "configuration was not loaded",
	}

	errOpenStore = &apperr.Error{
		Message: "unable to open the store",
	}

	errUnknownTemplate = &apperr.Error{
		Message: "no workout template named %q: run 'fitdeck templates' to list them",
	}

	errMissingArg = &apperr.Error{
		Message: "missing argument: %s",
	}

	errInvalidArg = &apperr.Error{
		Message: "invalid %s %q",
	}

	errSameDriver = &apperr.Error{
		Message: "the destination store is the same as the current one (%s)",
	}

	errSessionCmd = &apperr.Error{
		Message: "session command failed",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}

	errSound = &apperr.Error{
		Message: "unable to play the workout sound",
	}

	errUnsupportedSound = &apperr.Error{
		Message: "unsupported sound format %q: use ogg, mp3, flac or wav",
	}
)
