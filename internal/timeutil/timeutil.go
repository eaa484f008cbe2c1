// Package timeutil provides utility functions for working with time values
// supplied on the command-line.
package timeutil

import (
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

// DateFormat is used when printing workout dates.
const DateFormat = "Jan 02, 2006 03:04 PM"

// FromStr parses an absolute or relative date such as "2 weeks ago" or
// "2026-04-14" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}
