// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"todolist/internal/config"
	"todolist/internal/prompt"
	"todolist/internal/service"
	"todolist/internal/store"
)

// Env is the session a command runs in. One Env lives for a whole process
// invocation, so every command in a shell sees the same store.
type Env struct {
	Config   *config.Config
	Settings config.Settings
	Store    *store.Store

	// Input is the line reader shared with confirmation prompts.
	Input *prompt.LineReader

	// Exec dispatches one input line against this session.
	// Nil when the command runs outside a dispatcher.
	Exec func(ctx context.Context, line string, out, errOut io.Writer) int
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command talks to Google Tasks.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// env is always provided. svc is nil if NeedsAuth() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, svc service.Service, args []string, out, errOut io.Writer) int
}

// LabelCommand is implemented by commands whose only argument is a task
// label. The shell hands them the rest of the line as typed.
type LabelCommand interface {
	TakesLabel() bool
}

// taskText joins args into a task label. ok is false if nothing but
// whitespace was given.
func taskText(args []string) (text string, ok bool) {
	text = strings.Join(args, " ")
	return text, strings.TrimSpace(text) != ""
}
