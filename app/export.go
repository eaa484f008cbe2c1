package app

import (
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mapty/export"
	"github.com/ayoisaiah/mapty/internal/config"
	"github.com/ayoisaiah/mapty/internal/osutil"
)

// exportAction writes the saved workouts as GPX.
func exportAction(ctx *cli.Context) (err error) {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	workouts, err := loadWorkouts(e, ctx)
	if err != nil {
		return err
	}

	var out io.Writer = config.Stdout

	output := ctx.String("output")
	if output != "" {
		f, err := os.OpenFile(
			output,
			os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
			osutil.FilePermission,
		)
		if err != nil {
			return err
		}

		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()

		out = f
	}

	if err := export.WriteGPX(out, workouts); err != nil {
		return err
	}

	if output != "" {
		pterm.Success.Printfln("exported %d workouts to %s", len(workouts), output)
	}

	return nil
}
