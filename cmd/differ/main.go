// Package main is the entry point for the differ binary diff tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/differ/cmd/differ/commands"
	"go.trai.ch/differ/internal/app"
	"go.trai.ch/differ/internal/core/domain"
	_ "go.trai.ch/differ/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr passed in
		_, _ = fmt.Fprintln(stderr, "✗ Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interrupts stop the workers after their current pair
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)
	go components.Signal.Watch(ctx, signals)

	// 3. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 4. Execution
	if err := cli.Execute(ctx); err != nil {
		// The pair's outcome line already carries the failure.
		if errors.Is(err, domain.ErrPairFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
