// Package main is the entry point for the todolist CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todolist/internal/backend/googletasks"
	"todolist/internal/cli"
	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/service"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// After the first signal, a second one falls through to the default handler.
	go func() {
		<-ctx.Done()
		cancel()
	}()

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		client, err := googletasks.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	cancel()
	os.Exit(code)
}
