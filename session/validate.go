package session

import (
	"math"
	"strconv"
	"strings"

	"github.com/ayoisaiah/mapty/workout"
)

// parseNumber converts a raw form value. An empty value is 0 and anything
// that is not a number is NaN, so both fail validation.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}

	return f
}

func allFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func allPositive(values ...float64) bool {
	for _, v := range values {
		if !(v > 0) {
			return false
		}
	}

	return true
}

// parsedForm is the numeric form of FormValues.
type parsedForm struct {
	kind      workout.Kind
	distance  float64
	duration  float64
	cadence   float64
	elevation float64
}

func parseForm(v FormValues) parsedForm {
	return parsedForm{
		kind:      v.Kind,
		distance:  parseNumber(v.Distance),
		duration:  parseNumber(v.Duration),
		cadence:   parseNumber(v.Cadence),
		elevation: parseNumber(v.Elevation),
	}
}

// valid reports whether the form can produce a workout. Elevation gain is
// only checked for finiteness, so it may be zero or negative. The derived
// pace or speed must be finite and positive too, which rules out extreme
// values whose ratio overflows.
func (p parsedForm) valid() bool {
	switch p.kind {
	case workout.Running:
		pace := p.duration / p.distance

		return allFinite(p.distance, p.duration, p.cadence, pace) &&
			allPositive(p.distance, p.duration, p.cadence, pace)
	case workout.Cycling:
		speed := p.distance / (p.duration / 60)

		return allFinite(p.distance, p.duration, p.elevation, speed) &&
			allPositive(p.distance, p.duration, speed)
	}

	return false
}
