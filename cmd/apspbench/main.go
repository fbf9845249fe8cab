// Command apspbench times the parallel all-pairs shortest-path engine on a
// synthetic directed graph and prints one table row and one CSV row per run.
//
// Usage:
//
//	apspbench <nodes> <density> <threads> [flags]
//	apspbench sweep --config sweep.toml [flags]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
)

// main is the entrypoint; run does the work so tests can drive it.
func main() {
	// Minimal logger until flags pick the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "apspbench:", err)
		stop()
		os.Exit(1)
	}
}

// run builds the command tree and executes it against args.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}
