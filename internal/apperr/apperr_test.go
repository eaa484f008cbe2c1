package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/mapty/internal/apperr"
)

var errTemplate = &apperr.Error{
	Message: "zoom must be between %d and %d",
}

func TestFmt(t *testing.T) {
	err := errTemplate.Fmt(1, 18)

	assert.Equal(t, "zoom must be between 1 and 18", err.Error())
	assert.Empty(t, errTemplate.Context, "template must not be modified")
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("loading config: %w", errTemplate.Fmt(1, 18))

	assert.ErrorIs(t, err, errTemplate)
	assert.NotErrorIs(t, err, &apperr.Error{Message: "something else"})
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")

	err := (&apperr.Error{Message: "saving workouts failed"}).Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "saving workouts failed: disk full", err.Error())
}
