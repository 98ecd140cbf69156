package store

import "github.com/fitdeck/fitdeck/internal/apperr"

var errNotFound = &apperr.Error{
	Message: "key not found",
}

// ErrNotFound is returned by Load for keys that have never been saved.
var ErrNotFound error = errNotFound

var (
	errStoreLocked = &apperr.Error{
		Message: "is fitdeck already running? Only one instance can use the bolt store at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown store driver: %q",
	}

	errRedisUnavailable = &apperr.Error{
		Message: "redis store unavailable",
	}
)

// ErrStoreLocked is returned by NewBolt when another process holds the
// database file.
var ErrStoreLocked error = errStoreLocked
