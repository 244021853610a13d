package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todolist/internal/exitcode"
	"todolist/internal/service"
)

func init() {
	Register(&PushCmd{})
}

// PushCmd copies the session's tasks into a Google Tasks list.
// It only ever writes remotely; nothing is read back into the session.
type PushCmd struct {
	listName string
}

// SetListName sets the target list name (for testing).
func (c *PushCmd) SetListName(name string) {
	c.listName = name
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return nil }
func (c *PushCmd) Synopsis() string  { return "Copy tasks to a Google Tasks list" }
func (c *PushCmd) Usage() string     { return "push [--list <list-name>]" }
func (c *PushCmd) NeedsAuth() bool   { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *PushCmd) Run(ctx context.Context, env *Env, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	name := c.listName
	if name == "" {
		name = env.Settings.PushList
	}

	list, code, ok := resolveTarget(ctx, svc, name, errOut)
	if !ok {
		return code
	}

	// Titles already open remotely are skipped, so pushing twice is harmless.
	present, err := service.OpenTitles(ctx, svc, list.ID)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	var pushed, skipped int
	for _, text := range env.Store.Tasks() {
		if present[text] {
			skipped++
			continue
		}
		if err := svc.CreateTask(ctx, list.ID, text); err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
		present[text] = true
		pushed++
	}

	if !env.Config.Quiet {
		fmt.Fprintf(out, "pushed %d, skipped %d\n", pushed, skipped)
	}
	return exitcode.Success
}

// resolveTarget picks the named list, or the default list when name is empty.
func resolveTarget(ctx context.Context, svc service.Service, name string, errOut io.Writer) (service.TaskList, int, bool) {
	if name == "" {
		list, err := svc.DefaultList(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return service.TaskList{}, exitcode.BackendError, false
		}
		return list, exitcode.Success, true
	}

	list, err := svc.ResolveList(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrListNotFound):
			fmt.Fprintf(errOut, "error: list not found: %s\n", name)
			return service.TaskList{}, exitcode.UserError, false
		case errors.Is(err, service.ErrAmbiguousList):
			fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", name)
			return service.TaskList{}, exitcode.UserError, false
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return service.TaskList{}, exitcode.BackendError, false
	}
	return list, exitcode.Success, true
}
