// Package cli parses the command line and runs commands against a session.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/prompt"
	"todolist/internal/service"
)

// ServiceFactory creates the export backend from config.
// It is called at most once per session, on the first command that needs it.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments, builds the session and dispatches to the command.
// With no arguments it starts the shell. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	input := prompt.NewLineReader(in)

	if len(args) == 0 {
		return d.dispatch(ctx, "shell", nil, input, out, errOut)
	}

	// Flags require a command in front of them.
	if strings.HasPrefix(args[0], "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", args[0])
		return exitcode.UserError
	}
	return d.dispatch(ctx, args[0], args[1:], input, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, name string, args []string, input *prompt.LineReader, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}

	fs := newFlagSet(cmd)
	var configDir string
	var quiet, debug, yes bool
	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")
	fs.BoolVar(&yes, "yes", false, "")
	fs.BoolVar(&yes, "y", false, "")

	positional, ok := parseFlags(fs, args, errOut)
	if !ok {
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	cfg.AssumeYes = yes

	sess, err := newSession(d, cfg, input, out, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.AuthError
	}
	return sess.run(ctx, cmd, positional, out, errOut)
}

func newFlagSet(cmd commands.Command) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)
	return fs
}

// parseFlags parses args into fs and reports errors in the CLI's own words.
// It returns the positional arguments; "--" lets a task start with a dash.
func parseFlags(fs *flag.FlagSet, args []string, errOut io.Writer) ([]string, bool) {
	if err := fs.Parse(args); err != nil {
		msg := err.Error()
		switch {
		case strings.HasPrefix(msg, "flag needs an argument:"):
			name := strings.TrimSpace(strings.TrimPrefix(msg, "flag needs an argument:"))
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", name)
		case strings.HasPrefix(msg, "flag provided but not defined:"):
			name := strings.TrimSpace(strings.TrimPrefix(msg, "flag provided but not defined:"))
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", name)
		case errors.Is(err, flag.ErrHelp):
			fmt.Fprintf(errOut, "error: unknown flag: -help\n")
		default:
			fmt.Fprintf(errOut, "error: %s\n", msg)
		}
		return nil, false
	}

	return fs.Args(), true
}
