package config

import "github.com/ayoisaiah/misbaha/internal/apperr"

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

	errUnknownHaptic = &apperr.Error{
		Message: "unknown haptic mode: %s (must be tone, bell, or off)",
	}

	errInvalidColor = &apperr.Error{
		Message: "accent color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidCompletionCmd = &apperr.Error{
		Message: "unable to parse completion_cmd option",
	}
)
