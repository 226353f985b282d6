package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/taskboard/internal/cli"
	"github.com/idilsaglam/taskboard/internal/config"
	"github.com/idilsaglam/taskboard/internal/exitcode"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("taskboard", flag.ContinueOnError)
	fs.Usage = func() { cli.PrintHelp(os.Stderr) }
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitcode.Success
		}
		fmt.Fprintln(os.Stderr, "✖ "+err.Error())
		return exitcode.Usage
	}

	// Hand the remaining args to the CLI runner.
	code := cli.Run(ctx, fs.Args(), cli.Options{
		Config: cfg,
		Out:    os.Stdout,
		Err:    os.Stderr,
	})
	if code != exitcode.Success {
		fmt.Fprintln(os.Stderr)
	}
	return code
}
