// Package stats reports workout totals and breakdowns
package stats

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/mapty/internal/ui"
	"github.com/ayoisaiah/mapty/workout"
)

const (
	barChartChar  = "▇"
	noWorkoutsMsg = "No workouts found for the specified time range"
)

type aggregatePeriod string

const (
	monthly aggregatePeriod = "Monthly"
	weekly  aggregatePeriod = "Weekly"
)

// KindSummary holds the totals of one workout kind.
type KindSummary struct {
	Count     int
	Distance  float64
	Duration  float64
	Cadence   float64
	Elevation float64
}

// Metric returns the average pace (running) or speed (cycling) over all
// workouts of the kind.
func (k *KindSummary) Metric(kind workout.Kind) float64 {
	if k.Distance == 0 || k.Duration == 0 {
		return 0
	}

	if kind == workout.Cycling {
		return k.Distance / (k.Duration / 60)
	}

	return k.Duration / k.Distance
}

// Summary holds the totals of a set of workouts.
type Summary struct {
	Kinds    map[workout.Kind]*KindSummary
	Weekly   map[int]float64
	Monthly  map[int]float64
	Start    time.Time
	End      time.Time
	Count    int
	Distance float64
	Duration float64
}

// Compute totals the workouts.
func Compute(workouts []*workout.Workout) Summary {
	s := Summary{
		Kinds:   make(map[workout.Kind]*KindSummary),
		Weekly:  make(map[int]float64),
		Monthly: make(map[int]float64),
	}

	for i := range 7 {
		s.Weekly[i] = 0
	}

	for _, w := range workouts {
		k, ok := s.Kinds[w.Kind]
		if !ok {
			k = &KindSummary{}
			s.Kinds[w.Kind] = k
		}

		k.Count++
		k.Distance += w.Distance
		k.Duration += w.Duration

		switch w.Kind {
		case workout.Running:
			k.Cadence += w.Cadence
		case workout.Cycling:
			k.Elevation += w.ElevationGain
		}

		s.Count++
		s.Distance += w.Distance
		s.Duration += w.Duration

		s.Weekly[int(w.CreatedAt.Weekday())] += w.Distance
		s.Monthly[int(w.CreatedAt.Month())] += w.Distance

		if s.Start.IsZero() || w.CreatedAt.Before(s.Start) {
			s.Start = w.CreatedAt
		}

		if w.CreatedAt.After(s.End) {
			s.End = w.CreatedAt
		}
	}

	return s
}

func getBarChart(data map[int]float64, period aggregatePeriod) string {
	if len(data) == 0 {
		return ""
	}

	header := ui.Blue(fmt.Sprintf("\n%s breakdown (km)", period))

	keys := make([]int, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	var bars pterm.Bars

	for _, k := range keys {
		var label string

		switch period {
		case monthly:
			label = time.Month(k).String()
		case weekly:
			label = time.Weekday(k).String()
		}

		bars = append(bars, pterm.Bar{
			Value: int(math.Round(data[k])),
			Label: label,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// getSummary retrieves the overall totals.
func getSummary(s Summary) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	workouts := fmt.Sprintln("Workouts:", ui.Green(s.Count))

	distance := fmt.Sprintf(
		"Distance: %s\n",
		ui.Green(fmt.Sprintf("%.1f km", s.Distance)),
	)

	duration := fmt.Sprintf(
		"Time: %s\n",
		ui.Green((time.Duration(s.Duration * float64(time.Minute))).Round(time.Minute)),
	)

	return header + workouts + distance + duration
}

// getKinds retrieves the per-kind breakdown.
func getKinds(s Summary) string {
	var builder strings.Builder

	for _, kind := range workout.Kinds {
		k, ok := s.Kinds[kind]
		if !ok {
			continue
		}

		builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue(kind.Icon()+" "+kind.Title())))
		builder.WriteString(fmt.Sprintln("Workouts:", ui.Green(k.Count)))
		builder.WriteString(fmt.Sprintf(
			"Distance: %s\n", ui.Green(fmt.Sprintf("%.1f km", k.Distance)),
		))

		switch kind {
		case workout.Running:
			builder.WriteString(fmt.Sprintf(
				"Average pace: %s\n",
				ui.Green(fmt.Sprintf("%.1f min/km", k.Metric(kind))),
			))
			builder.WriteString(fmt.Sprintf(
				"Average cadence: %s\n",
				ui.Green(fmt.Sprintf("%.1f spm", k.Cadence/float64(k.Count))),
			))
		case workout.Cycling:
			builder.WriteString(fmt.Sprintf(
				"Average speed: %s\n",
				ui.Green(fmt.Sprintf("%.1f km/h", k.Metric(kind))),
			))
			builder.WriteString(fmt.Sprintf(
				"Elevation gain: %s\n",
				ui.Green(fmt.Sprintf("%.0f m", k.Elevation)),
			))
		}
	}

	return builder.String()
}

// Show prints the statistics for the workouts.
func Show(w io.Writer, workouts []*workout.Workout) {
	if len(workouts) == 0 {
		pterm.Info.Println(noWorkoutsMsg)
		return
	}

	s := Compute(workouts)

	reportingStart := s.Start.Format("January 02, 2006")
	reportingEnd := s.End.Format("January 02, 2006")
	timePeriod := "Reporting period: " + reportingStart + " - " + reportingEnd

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(timePeriod)

	output := fmt.Sprint(
		header,
		getSummary(s),
		getKinds(s),
		getBarChart(s.Monthly, monthly),
		getBarChart(s.Weekly, weekly),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}
