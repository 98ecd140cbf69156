package config

import "github.com/fitdeck/fitdeck/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "first-run prompt failed",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown store driver %q (expected one of %v)",
	}

	errInvalidBoost = &apperr.Error{
		Message: "recovery boost range [%d, %d] must satisfy 0 <= min <= max <= 100",
	}

	errInvalidStep = &apperr.Error{
		Message: "recovery step must be between %d and %d",
	}

	errInvalidIntensity = &apperr.Error{
		Message: "invalid intensity mapping",
	}

	errInvalidPort = &apperr.Error{
		Message: "dashboard port %d is out of range",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "invalid log level",
	}
)
