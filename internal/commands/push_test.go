package commands_test

import (
	"errors"
	"slices"
	"testing"

	"todolist/internal/commands"
	"todolist/internal/exitcode"
	"todolist/internal/testutil"
)

func TestPushCommand_DefaultList(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, "Call Dad")
	s := newSession(t, "", false)

	stdout, stderr, code := s.run(&commands.PushCmd{}, svc)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "pushed 4, skipped 1\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}

	want := []string{"Call Dad", "Visit Ann", "Go to the Gym", "Wash the dishes", "Shop for the party"}
	if got := svc.Titles(testutil.DefaultListID); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPushCommand_Twice(t *testing.T) {
	svc := testutil.NewFakeService()
	s := newSession(t, "", false)

	s.run(&commands.PushCmd{}, svc)
	stdout, _, code := s.run(&commands.PushCmd{}, svc)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "pushed 0, skipped 5\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if n := len(svc.Titles(testutil.DefaultListID)); n != 5 {
		t.Errorf("expected 5 remote tasks, got %d", n)
	}
}

func TestPushCommand_CompletedRemoteTaskIsPushedAgain(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddCompletedTask(testutil.DefaultListID, "Visit Ann")
	s := newSession(t, "", true)

	s.run(&commands.PushCmd{}, svc)

	if n := len(svc.Titles(testutil.DefaultListID)); n != 6 {
		t.Errorf("expected 6 remote tasks, got %d", n)
	}
}

func TestPushCommand_DuplicateTasksPushedOnce(t *testing.T) {
	svc := testutil.NewFakeService()
	s := newSession(t, "", false)
	s.env.Store.Add("Visit Ann")

	stdout, _, _ := s.run(&commands.PushCmd{}, svc)

	if stdout != "pushed 5, skipped 1\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestPushCommand_NamedList(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("shopping", "Shopping")
	s := newSession(t, "", true)

	cmd := &commands.PushCmd{}
	cmd.SetListName("shopping")
	_, stderr, code := s.run(cmd, svc)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (%s)", exitcode.Success, code, stderr)
	}
	if n := len(svc.Titles("shopping")); n != 5 {
		t.Errorf("expected 5 tasks in Shopping, got %d", n)
	}
	if n := len(svc.Titles(testutil.DefaultListID)); n != 0 {
		t.Errorf("expected default list untouched, got %d tasks", n)
	}
}

func TestPushCommand_SettingsList(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("errands", "Errands")
	s := newSession(t, "", true)
	s.env.Settings.PushList = "Errands"

	s.run(&commands.PushCmd{}, svc)

	if n := len(svc.Titles("errands")); n != 5 {
		t.Errorf("expected 5 tasks in Errands, got %d", n)
	}
}

func TestPushCommand_ListNotFound(t *testing.T) {
	svc := testutil.NewFakeService()
	s := newSession(t, "", false)

	cmd := &commands.PushCmd{}
	cmd.SetListName("Garden")
	stdout, stderr, code := s.run(cmd, svc)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: list not found: Garden\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestPushCommand_AmbiguousList(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("w1", "Work")
	svc.AddList("w2", "work")
	s := newSession(t, "", false)

	cmd := &commands.PushCmd{}
	cmd.SetListName("WORK")
	_, stderr, code := s.run(cmd, svc)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: ambiguous list name: WORK\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestPushCommand_BackendErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name   string
		inject func(*testutil.FakeService)
	}{
		{"default list", func(f *testutil.FakeService) { f.DefaultListErr = boom }},
		{"list open tasks", func(f *testutil.FakeService) { f.ListOpenTasksErr = boom }},
		{"create task", func(f *testutil.FakeService) { f.CreateTaskErr = boom }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewFakeService()
			tt.inject(svc)
			s := newSession(t, "", false)

			_, stderr, code := s.run(&commands.PushCmd{}, svc)

			if code != exitcode.BackendError {
				t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
			}
			if stderr != "error: backend error: boom\n" {
				t.Errorf("unexpected stderr %q", stderr)
			}
		})
	}
}

func TestPushCommand_ResolveBackendNotFound(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ResolveListErr = errors.New("not found")
	s := newSession(t, "", false)

	cmd := &commands.PushCmd{}
	cmd.SetListName("Shopping")
	_, stderr, code := s.run(cmd, svc)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: backend error: not found\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestListsCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("shopping", "Shopping")
	svc.AddList("work", "Work")
	s := newSession(t, "", false)

	stdout, stderr, code := s.run(&commands.ListsCmd{}, svc)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "My Tasks [default]\nShopping\nWork\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}
