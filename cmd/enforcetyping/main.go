package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/enforcetyping/internal/app"
	"github.com/specialistvlad/enforcetyping/internal/cli"
	"github.com/specialistvlad/enforcetyping/internal/config"
	"github.com/specialistvlad/enforcetyping/internal/hcl_adapter"
	"github.com/specialistvlad/enforcetyping/internal/registry"
)

// main is the entrypoint for the enforcetyping application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Panics while building the app are reported as a clean error. Panics
	// while checking a call are recorded on that call's outcome.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	newConverter := func(reg *registry.Registry) config.Converter {
		return hcl_adapter.NewConverter(reg)
	}
	enforcetypingApp, err := app.NewApp(outW, appConfig, hcl_adapter.NewLoader(), newConverter)
	if err != nil {
		return err
	}

	return enforcetypingApp.Run(context.Background())
}
