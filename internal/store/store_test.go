package store

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type answer bool

func (a answer) Confirm(ctx context.Context, message string) bool { return bool(a) }

type recorder struct {
	prompts  []string
	messages []string
	reply    bool
}

func (r *recorder) Confirm(ctx context.Context, message string) bool {
	r.prompts = append(r.prompts, message)
	return r.reply
}

func (r *recorder) Notify(message string) {
	r.messages = append(r.messages, message)
}

func TestNew_DefaultSeed(t *testing.T) {
	s := New(DefaultSeed, nil, nil, nil)

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []string{
		"Visit Ann",
		"Call Dad",
		"Go to the Gym",
		"Wash the dishes",
		"Shop for the party",
	}, s.Tasks())
}

func TestNew_CopiesSeed(t *testing.T) {
	seed := []string{"a", "b"}
	s := New(seed, nil, nil, nil)
	seed[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, s.Tasks())

	got := s.Tasks()
	got[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, s.Tasks())
}

func TestAdd_AppendsLast(t *testing.T) {
	s := New(DefaultSeed, nil, nil, nil)

	s.Add("X")

	require.Equal(t, 6, s.Len())
	assert.Equal(t, "X", s.Tasks()[5])
}

func TestAdd_AcceptsEmptyAndDuplicates(t *testing.T) {
	s := New([]string{"a"}, nil, nil, nil)

	s.Add("")
	s.Add("a")

	assert.Equal(t, []string{"a", "", "a"}, s.Tasks())
}

func TestRemove_ConfirmedRemovesAllMatches(t *testing.T) {
	s := New([]string{"X", "a", "X", "b", "X"}, answer(true), nil, nil)

	res := s.Remove(context.Background(), "X")

	assert.True(t, res.Confirmed)
	assert.Equal(t, 3, res.Removed)
	assert.Equal(t, []string{"a", "b"}, s.Tasks())
}

func TestRemove_Declined(t *testing.T) {
	s := New(DefaultSeed, answer(false), nil, nil)

	res := s.Remove(context.Background(), "Call Dad")

	assert.False(t, res.Confirmed)
	assert.Zero(t, res.Removed)
	assert.Equal(t, DefaultSeed, s.Tasks())
}

func TestRemove_NoMatch(t *testing.T) {
	s := New(DefaultSeed, answer(true), nil, nil)

	res := s.Remove(context.Background(), "nonexistent")

	assert.True(t, res.Confirmed)
	assert.Zero(t, res.Removed)
	assert.Equal(t, DefaultSeed, s.Tasks())
}

func TestRemove_NilConfirmerDeclines(t *testing.T) {
	s := New(DefaultSeed, nil, nil, nil)

	res := s.Remove(context.Background(), "Visit Ann")

	assert.False(t, res.Confirmed)
	assert.Equal(t, 5, s.Len())
}

func TestRemove_PromptNamesTask(t *testing.T) {
	rec := &recorder{reply: false}
	s := New(DefaultSeed, rec, rec, nil)

	s.Remove(context.Background(), "Call Dad")

	require.Len(t, rec.prompts, 1)
	assert.Equal(t, "Are you sure that you want to remove the following task? \n \"Call Dad\"", rec.prompts[0])
}

func TestMarkAsDone_NotifiesWithoutChangingList(t *testing.T) {
	rec := &recorder{}
	s := New(DefaultSeed, rec, rec, nil)

	s.MarkAsDone("Go to the Gym")
	s.MarkAsDone("not in the list")

	assert.Equal(t, DefaultSeed, s.Tasks())
	assert.Equal(t, []string{
		`The task: "Go to the Gym" is done`,
		`The task: "not in the list" is done`,
	}, rec.messages)
	assert.Empty(t, rec.prompts)
}

func TestMarkAsDone_NilNotifier(t *testing.T) {
	s := New(DefaultSeed, nil, nil, nil)

	assert.NotPanics(t, func() { s.MarkAsDone("Call Dad") })
	assert.Equal(t, 5, s.Len())
}

func TestScenario_AddThenRemove(t *testing.T) {
	s := New([]string{"Visit Ann", "Call Dad"}, answer(true), nil, nil)

	s.Add("Buy milk")
	assert.Equal(t, []string{"Visit Ann", "Call Dad", "Buy milk"}, s.Tasks())

	s.Remove(context.Background(), "Call Dad")
	assert.Equal(t, []string{"Visit Ann", "Buy milk"}, s.Tasks())
}

func TestOperations_AreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(nil, answer(true), nil, logger)

	s.Add("Buy milk")
	s.Remove(context.Background(), "Buy milk")
	s.MarkAsDone("Buy milk")

	out := buf.String()
	assert.Contains(t, out, `msg="adding task" task="Buy milk"`)
	assert.Contains(t, out, `msg="removing task" task="Buy milk" confirmed=true removed=1`)
	assert.Contains(t, out, `msg="marking task as done" task="Buy milk"`)
}
