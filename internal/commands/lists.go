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
	Register(&ListsCmd{})
}

// ListsCmd prints the Google Tasks lists push can target.
type ListsCmd struct{}

func (c *ListsCmd) Name() string      { return "lists" }
func (c *ListsCmd) Aliases() []string { return nil }
func (c *ListsCmd) Synopsis() string  { return "Print Google Tasks lists" }
func (c *ListsCmd) Usage() string     { return "lists" }
func (c *ListsCmd) NeedsAuth() bool   { return true }

func (c *ListsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListsCmd) Run(ctx context.Context, env *Env, svc service.Service, args []string, out, errOut io.Writer) int {
	lists, err := svc.ListLists(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	for _, list := range lists {
		output.FormatListName(out, list)
	}
	return exitcode.Success
}
