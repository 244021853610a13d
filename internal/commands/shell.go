package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todolist/internal/exitcode"
	"todolist/internal/service"
)

// ShellPrompt is printed before each line read by the shell.
const ShellPrompt = "> "

func init() {
	Register(&ShellCmd{})
}

// ShellCmd reads commands line by line and runs them against one session.
type ShellCmd struct{}

func (c *ShellCmd) Name() string      { return "shell" }
func (c *ShellCmd) Aliases() []string { return nil }
func (c *ShellCmd) Synopsis() string  { return "Start an interactive session (default)" }
func (c *ShellCmd) Usage() string     { return "shell" }
func (c *ShellCmd) NeedsAuth() bool   { return false }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShellCmd) Run(ctx context.Context, env *Env, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if env.Exec == nil || env.Input == nil {
		fmt.Fprintln(errOut, "error: shell needs an interactive session")
		return exitcode.UserError
	}

	quiet := env.Config.Quiet
	if !quiet {
		fmt.Fprintln(out, `Type "help" for commands, "quit" to leave.`)
	}

	for {
		if !quiet {
			fmt.Fprint(out, ShellPrompt)
		}

		line, err := env.Input.ReadLine(ctx)
		if ctx.Err() != nil {
			if !quiet {
				fmt.Fprintln(out)
			}
			return exitcode.Interrupted
		}

		if fields := strings.Fields(line); len(fields) > 0 {
			switch fields[0] {
			case "quit", "exit":
				return exitcode.Success
			case c.Name():
				fmt.Fprintln(errOut, "error: already in a shell")
			default:
				env.Exec(ctx, line, out, errOut)
			}
		}

		if err != nil {
			if err != io.EOF {
				fmt.Fprintf(errOut, "error: %v\n", err)
				return exitcode.UserError
			}
			if !quiet {
				fmt.Fprintln(out)
			}
			return exitcode.Success
		}
	}
}
