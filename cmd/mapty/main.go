package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayoisaiah/mapty/app"
	"github.com/ayoisaiah/mapty/report"
)

func run(ctx context.Context, args []string) error {
	return app.Get().RunContext(ctx, args)
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	err := run(ctx, os.Args)

	stop()

	if err != nil {
		report.Quit(err)
	}
}
