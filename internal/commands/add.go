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
	Register(&AddCmd{})
}

// AddCmd appends a task to the session list.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a task to the end of the list" }
func (c *AddCmd) Usage() string     { return "add <task...>" }
func (c *AddCmd) NeedsAuth() bool   { return false }
func (c *AddCmd) TakesLabel() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, env *Env, svc service.Service, args []string, out, errOut io.Writer) int {
	text, ok := taskText(args)
	if !ok {
		fmt.Fprintln(errOut, "error: task required")
		return exitcode.UserError
	}

	env.Store.Add(text)

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
