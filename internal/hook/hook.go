// Package hook runs the user's post-save command and desktop notification
package hook

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/mapty/internal/apperr"
	"github.com/ayoisaiah/mapty/internal/config"
	"github.com/ayoisaiah/mapty/workout"
)

var errParseCmd = &apperr.Error{
	Message: "unable to parse settings.cmd option",
}

// notify is replaced in tests.
var notify = func(title, msg, icon string) error {
	return beeep.Notify(title, msg, icon)
}

// Runner executes the configured side effects after a workout is saved.
type Runner struct {
	logger        *slog.Logger
	cmd           string
	notifications bool
}

// New creates a Runner from the configuration.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{
		cmd:           cfg.Settings.Cmd,
		notifications: cfg.Notifications.Enabled,
		logger:        logger,
	}
}

// AfterSave notifies the desktop and runs the command. Failures are logged
// and never affect the saved workout.
func (r *Runner) AfterSave(ctx context.Context, w *workout.Workout) {
	if r.notifications {
		r.notify(w)
	}

	if err := r.runCmd(ctx, w); err != nil {
		r.logger.Error(
			"running settings.cmd",
			slog.String("cmd", r.cmd),
			slog.Any("error", err),
		)
	}
}

func (r *Runner) notify(w *workout.Workout) {
	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join("mapty", "static", "icon.png"),
	)

	metric, unit := w.Metric()

	title := w.Kind.Icon() + " " + w.Label
	msg := fmt.Sprintf("%s km in %s min, %.1f %s",
		formatFloat(w.Distance), formatFloat(w.Duration), metric, unit)

	if err := notify(title, msg, pathToIcon); err != nil {
		r.logger.Warn("unable to display notification", slog.Any("error", err))
	}
}

// runCmd executes the configured command with the workout exposed through
// MAPTY_WORKOUT_* environment variables.
func (r *Runner) runCmd(ctx context.Context, w *workout.Workout) error {
	if r.cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(r.cmd)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(os.Environ(), Env(w)...)

	return cmd.Run()
}

// Env returns the environment variables describing w.
func Env(w *workout.Workout) []string {
	metric, _ := w.Metric()

	env := []string{
		"MAPTY_WORKOUT_ID=" + w.ID,
		"MAPTY_WORKOUT_KIND=" + string(w.Kind),
		"MAPTY_WORKOUT_LABEL=" + w.Label,
		"MAPTY_WORKOUT_LAT=" + formatFloat(w.Coords.Lat()),
		"MAPTY_WORKOUT_LNG=" + formatFloat(w.Coords.Lng()),
		"MAPTY_WORKOUT_DISTANCE=" + formatFloat(w.Distance),
		"MAPTY_WORKOUT_DURATION=" + formatFloat(w.Duration),
		"MAPTY_WORKOUT_METRIC=" + formatFloat(metric),
	}

	switch w.Kind {
	case workout.Running:
		env = append(env, "MAPTY_WORKOUT_CADENCE="+formatFloat(w.Cadence))
	case workout.Cycling:
		env = append(env, "MAPTY_WORKOUT_ELEVATION="+formatFloat(w.ElevationGain))
	}

	return env
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
