package app

import (
	"bufio"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mapty/geo"
	"github.com/ayoisaiah/mapty/internal/config"
)

// resetAction deletes every saved workout. It requests for confirmation
// before proceeding with the operation.
func resetAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	db, err := e.openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	hl := newHeadless(e, geo.Unavailable{}, db, &flagForm{}, nil)

	// only the saved collection matters here, so no fix is requested
	_ = hl.ctrl.Start(ctx.Context)

	count := len(hl.ctrl.Workouts())
	if count == 0 {
		// clears a collection that could not be read
		if _, err := hl.ctrl.Reset(ctx.Context); err != nil {
			return err
		}

		pterm.Info.Println(noWorkoutsMsg)

		return nil
	}

	warning := pterm.Warning.Sprintf(
		"%d workouts will be deleted permanently. Press ENTER to proceed",
		count,
	)

	fmt.Fprint(config.Stdout, warning)

	reader := bufio.NewReader(config.Stdin)

	_, _ = reader.ReadString('\n')

	if _, err := hl.ctrl.Reset(ctx.Context); err != nil {
		return err
	}

	pterm.Success.Printfln("deleted %d workouts", count)

	return nil
}
