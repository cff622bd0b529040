package app

import (
	"github.com/ayoisaiah/misbaha/internal/apperr"
)

var (
	errMissingRef = &apperr.Error{
		Message: "a counter id or name is required",
	}

	errUnknownSort = &apperr.Error{
		Message: "unknown sort order %q: use natural or lifetime",
	}

	errUnknownTheme = &apperr.Error{
		Message: "unknown theme %q: use dark, light or toggle",
	}

	errConflictingFixed = &apperr.Error{
		Message: "--fixed and --no-fixed cannot be used together",
	}

	errReadImport = &apperr.Error{
		Message: "unable to read import file %q",
	}

	errDecodeImport = &apperr.Error{
		Message: "import file %q is not a JSON array of counters",
	}

	errNullImport = &apperr.Error{
		Message: "collection is null",
	}

	errDeleteAborted = &apperr.Error{
		Message: "deletion aborted",
	}

	errCompletionCmd = &apperr.Error{
		Message: "completion command failed",
	}
)
