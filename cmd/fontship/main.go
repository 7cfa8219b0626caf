// Package main is the entry point for the fontship CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/theleagueof/fontship/internal/cli"
)

// main runs the CLI. The build identity is injected into the version
// package:
//
//	go build -ldflags "-X github.com/theleagueof/fontship/internal/version.Describe=$(git describe --tags)" ./cmd/fontship
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// A second signal after cancellation forces exit.
	go func() {
		<-ctx.Done()
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		sig := <-sigChan
		fmt.Fprintf(os.Stderr, "\nReceived second signal %v, forcing exit\n", sig)
		os.Exit(1)
	}()

	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
