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
	Register(&DoneCmd{})
}

// DoneCmd announces a task as done. The list itself is not changed.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task as done" }
func (c *DoneCmd) Usage() string     { return "done <task...>" }
func (c *DoneCmd) NeedsAuth() bool   { return false }
func (c *DoneCmd) TakesLabel() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *Env, svc service.Service, args []string, out, errOut io.Writer) int {
	text, ok := taskText(args)
	if !ok {
		fmt.Fprintln(errOut, "error: task required")
		return exitcode.UserError
	}

	env.Store.MarkAsDone(text)
	return exitcode.Success
}
