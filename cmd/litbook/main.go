package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/litbook/litbook/books"
	"github.com/litbook/litbook/cmds"
	"github.com/litbook/litbook/logs"
	"github.com/litbook/litbook/modes"
	"github.com/reusee/dscope"
)

func main() {
	cmds.Execute(os.Args[1:])

	paths := *cmds.Rest()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: litbook [flags] <document>...")
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dscope.New(
		new(books.Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		run books.Run,
	) {
		if err := run(ctx, paths); err != nil {
			logger.Error("run failed",
				"error", err,
			)
			os.Exit(1)
		}
	})
}
