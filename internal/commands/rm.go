package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todolist/internal/exitcode"
	"todolist/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd removes every task matching the given text after confirmation.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"remove"} }
func (c *RmCmd) Synopsis() string  { return "Remove all tasks with this text (asks first)" }
func (c *RmCmd) Usage() string     { return "rm <task...>" }
func (c *RmCmd) NeedsAuth() bool   { return false }
func (c *RmCmd) TakesLabel() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, env *Env, svc service.Service, args []string, out, errOut io.Writer) int {
	text, ok := taskText(args)
	if !ok {
		fmt.Fprintln(errOut, "error: task required")
		return exitcode.UserError
	}

	res := env.Store.Remove(ctx, text)
	if !res.Confirmed && ctx.Err() != nil {
		return exitcode.Interrupted
	}

	// Declining is an answer, not a failure.
	if !env.Config.Quiet {
		if res.Confirmed {
			fmt.Fprintln(out, "ok")
		} else {
			fmt.Fprintln(out, "cancelled")
		}
	}
	return exitcode.Success
}
