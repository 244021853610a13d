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

func init() {
	Register(&HelpCmd{})
}

// HelpCmd prints usage for every registered command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText(DefaultRegistry))
	return exitcode.Success
}

func helpText(r *Registry) string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	b.WriteString("  todolist                          Start an interactive session\n")
	b.WriteString("  todolist <command> [flags] [args]\n")
	b.WriteString("\nCommands:\n")
	for _, cmd := range r.All() {
		synopsis := cmd.Synopsis()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			synopsis += " (alias: " + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(&b, "  %-30s  %s\n", cmd.Usage(), synopsis)
	}
	b.WriteString(commonFlagsText)
	return b.String()
}

const commonFlagsText = `
Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
  --yes, -y        Answer yes to every confirmation
`
