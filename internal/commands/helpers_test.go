package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/prompt"
	"todolist/internal/service"
	"todolist/internal/store"
)

// session wires a store to a terminal reading from a fixed input, the way
// the dispatcher does for a real invocation.
type session struct {
	env         *commands.Env
	out, errOut bytes.Buffer
}

func newSession(t *testing.T, input string, quiet bool) *session {
	t.Helper()
	return newSessionWithSeed(t, input, quiet, store.DefaultSeed)
}

func newSessionWithSeed(t *testing.T, input string, quiet bool, seed []string) *session {
	t.Helper()

	s := &session{}
	in := prompt.NewLineReader(strings.NewReader(input))
	term := prompt.NewTerminal(in, &s.out)
	s.env = &commands.Env{
		Config: &config.Config{Dir: t.TempDir(), Quiet: quiet},
		Store:  store.New(seed, term, term, nil),
		Input:  in,
	}
	return s
}

// run executes cmd and returns what it printed during this call only.
func (s *session) run(cmd commands.Command, svc service.Service, args ...string) (stdout, stderr string, code int) {
	s.out.Reset()
	s.errOut.Reset()
	code = cmd.Run(context.Background(), s.env, svc, args, &s.out, &s.errOut)
	return s.out.String(), s.errOut.String(), code
}

const removeCallDadPrompt = "Are you sure that you want to remove the following task? \n \"Call Dad\" [y/N]: "
