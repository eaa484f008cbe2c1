package config

import "github.com/ayoisaiah/mapty/internal/apperr"

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

	errInvalidZoom = &apperr.Error{
		Message: "map zoom must be between %d and %d, got %d",
	}

	errUnknownProvider = &apperr.Error{
		Message: "unknown geolocation provider: %q (must be one of %v)",
	}

	errInvalidLatitude = &apperr.Error{
		Message: "latitude must be between -90 and 90, got %v",
	}

	errInvalidLongitude = &apperr.Error{
		Message: "longitude must be between -180 and 180, got %v",
	}

	errInvalidTimeout = &apperr.Error{
		Message: "geolocation timeout must be positive, got %v",
	}
)
