package session

import "github.com/ayoisaiah/mapty/internal/apperr"

const (
	msgInvalidInput   = "Inputs have to be positive numbers"
	msgNoPosition     = "Could not get your position"
	msgSaveFailed     = "Could not save your workout"
	msgMapUnavailable = "Could not load the map"
)

var (
	ErrInvalidWorkoutInput = &apperr.Error{
		Message: "invalid workout input",
	}

	ErrGeolocationUnavailable = &apperr.Error{
		Message: "geolocation unavailable",
	}

	ErrPersistenceRead = &apperr.Error{
		Message: "could not read saved workouts",
	}

	ErrLookupMiss = &apperr.Error{
		Message: "no workout with id %q",
	}

	ErrSaveWorkouts = &apperr.Error{
		Message: "could not save workouts",
	}

	errMapInit = &apperr.Error{
		Message: "could not initialise the map",
	}

	errClearWorkouts = &apperr.Error{
		Message: "could not clear saved workouts",
	}
)
