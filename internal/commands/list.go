package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todolist/internal/exitcode"
	"todolist/internal/output"
	"todolist/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd prints the session list in order.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "list" }
func (c *ListCmd) NeedsAuth() bool   { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, env *Env, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks := env.Store.Tasks()
	if len(tasks) == 0 {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "no tasks")
		}
		return exitcode.Success
	}

	output.FormatTasks(out, tasks)
	return exitcode.Success
}
