package workout

import (
	"encoding/json"
	"math"

	"github.com/ayoisaiah/mapty/internal/apperr"
)

var (
	errMalformedRecord = &apperr.Error{
		Message: "malformed workout record at index %d",
	}

	errUnknownKind = &apperr.Error{
		Message: "unknown workout kind: %q",
	}

	errMissingID = &apperr.Error{
		Message: "workout record has no id",
	}

	errPayloadMismatch = &apperr.Error{
		Message: "%s workout record carries the wrong metrics",
	}

	errInvalidRecord = &apperr.Error{
		Message: "workout record %q is invalid: %s",
	}
)

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}

// check enforces the invariants of a constructed workout on a decoded one.
func (w *Workout) check() error {
	switch {
	case !positive(w.Distance):
		return errInvalidRecord.Fmt(w.ID, "distance must be positive")
	case !positive(w.Duration):
		return errInvalidRecord.Fmt(w.ID, "duration must be positive")
	case w.Label == "":
		return errInvalidRecord.Fmt(w.ID, "missing label")
	}

	metric, _ := w.Metric()
	if !positive(metric) {
		return errInvalidRecord.Fmt(w.ID, "derived metric must be positive")
	}

	return nil
}

// UnmarshalJSON decodes a flat workout record and checks that its metrics
// match its kind and that its values are usable. Derived values are taken
// from the record as-is.
func (w *Workout) UnmarshalJSON(b []byte) error {
	type record Workout

	var r record

	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}

	if r.ID == "" {
		return errMissingID
	}

	switch r.Kind {
	case Running:
		if r.CyclingMetrics != nil || r.RunningMetrics == nil {
			return errPayloadMismatch.Fmt(r.Kind)
		}
	case Cycling:
		if r.RunningMetrics != nil || r.CyclingMetrics == nil {
			return errPayloadMismatch.Fmt(r.Kind)
		}
	default:
		return errUnknownKind.Fmt(r.Kind)
	}

	*w = Workout(r)

	return w.check()
}

// Encode serialises the collection as a JSON array of flat records in
// insertion order.
func Encode(workouts []*Workout) ([]byte, error) {
	if workouts == nil {
		workouts = []*Workout{}
	}

	return json.Marshal(workouts)
}

// Decode parses a collection previously produced by Encode. A single bad
// record fails the whole collection.
func Decode(b []byte) ([]*Workout, error) {
	var raw []json.RawMessage

	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}

	workouts := make([]*Workout, 0, len(raw))

	for i, v := range raw {
		var w Workout

		if err := json.Unmarshal(v, &w); err != nil {
			return nil, errMalformedRecord.Fmt(i).Wrap(err)
		}

		workouts = append(workouts, &w)
	}

	return workouts, nil
}
