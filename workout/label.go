package workout

import (
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
)

var months = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// Label returns the display label of a workout of the given kind created at
// t, e.g. "Running on April 14".
func Label(kind Kind, t time.Time) string {
	return fmt.Sprintf("%s on %s %d", kind.Title(), months[t.Month()-1], t.Day())
}

// NewID returns a unique, time-ordered identifier derived from t. The
// timestamp has second resolution; the random payload keeps identifiers
// created within the same second apart.
func NewID(t time.Time) string {
	id, err := ksuid.NewRandomWithTime(t)
	if err != nil {
		return ksuid.New().String()
	}

	return id.String()
}
