package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/EmmerichFrog/bt-home-remote/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx, os.Args, os.Stdout, os.Stderr)
	cancel()
	os.Exit(exitCode)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, exitResult := config.Parse(args)
	if exitResult != nil {
		exitResult.Print(stdout, stderr)
		return exitResult.ExitCode
	}

	a, exitResult := newApp(cfg, stdout, stderr)
	if exitResult != nil {
		exitResult.Print(stdout, stderr)
		return exitResult.ExitCode
	}

	if exitResult := a.execute(ctx); exitResult != nil {
		exitResult.Print(stdout, stderr)
		return exitResult.ExitCode
	}
	return 0
}
