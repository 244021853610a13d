package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/prompt"
	"todolist/internal/service"
	"todolist/internal/store"
)

// session is one invocation's state: the store, its prompts, and the export
// backend once something has asked for it.
type session struct {
	d      *Dispatcher
	env    *commands.Env
	logger *slog.Logger
	svc    service.Service
}

func newSession(d *Dispatcher, cfg *config.Config, input *prompt.LineReader, out, errOut io.Writer) (*session, error) {
	settings, err := cfg.LoadSettings()
	if err != nil {
		return nil, err
	}

	seed := settings.Seed
	if seed == nil {
		seed = store.DefaultSeed
	}

	logger := newLogger(errOut, cfg.Debug)
	term := prompt.NewTerminal(input, out)
	var confirm store.Confirmer = term
	if cfg.AssumeYes {
		confirm = prompt.AssumeYes(term)
	}

	s := &session{d: d, logger: logger}
	s.env = &commands.Env{
		Config:   cfg,
		Settings: settings,
		Store:    store.New(seed, confirm, term, logger),
		Input:    input,
		Exec:     s.exec,
	}
	logger.Debug("session started", "config", cfg.Dir, "tasks", s.env.Store.Len())
	return s, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run executes cmd, creating the export backend first if the command needs it.
func (s *session) run(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	s.logger.Debug("running command", "command", cmd.Name(), "args", args)

	var svc service.Service
	if cmd.NeedsAuth() {
		var code int
		if svc, code = s.service(ctx, errOut); svc == nil {
			return code
		}
	}
	return cmd.Run(ctx, s.env, svc, args, out, errOut)
}

// exec runs one shell line. Common flags were fixed when the session started,
// so only command flags are accepted here. Label commands take the rest of
// the line as typed.
func (s *session) exec(ctx context.Context, line string, out, errOut io.Writer) int {
	name, rest := cutCommand(line)
	if name == "" {
		return exitcode.Success
	}

	cmd, ok := s.d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}

	if lc, ok := cmd.(commands.LabelCommand); ok && lc.TakesLabel() {
		return s.run(ctx, cmd, labelArgs(rest), out, errOut)
	}

	args, err := splitArgs(rest)
	if err != nil {
		fmt.Fprintf(errOut, "error: invalid line: %v\n", err)
		return exitcode.UserError
	}
	positional, ok := parseFlags(newFlagSet(cmd), args, errOut)
	if !ok {
		return exitcode.UserError
	}
	return s.run(ctx, cmd, positional, out, errOut)
}

func (s *session) service(ctx context.Context, errOut io.Writer) (service.Service, int) {
	if s.svc != nil {
		return s.svc, exitcode.Success
	}

	cfg := s.env.Config
	if s.d.factory == nil {
		if !cfg.HasOAuthClient() {
			fmt.Fprintf(errOut, "error: %s not found in %s\n", config.OAuthClientFile, cfg.Dir)
			return nil, exitcode.AuthError
		}
		fmt.Fprintln(errOut, "error: no backend configured")
		return nil, exitcode.BackendError
	}

	svc, err := s.d.factory(ctx, cfg)
	if err != nil {
		if isAuthError(err) {
			fmt.Fprintf(errOut, "error: auth error: %s\n", err)
			return nil, exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return nil, exitcode.BackendError
	}
	s.svc = svc
	return svc, exitcode.Success
}

func isAuthError(err error) bool {
	if errors.Is(err, service.ErrNotAuthenticated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "token") || strings.Contains(msg, "auth")
}
