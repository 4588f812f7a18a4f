package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run keeps the process alive until a signal or an internal shutdown, then
// stops the graph with a fresh context so the final checkpoint can finish
// even though the signal context is already cancelled.
func run(ctx context.Context, app *fx.App) {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start freshbulk: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop freshbulk: %v\n", err)
		os.Exit(1)
	}
}
