// Package store holds the in-memory task list owned by a session.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// DefaultSeed is the task list every session starts with unless the
// configuration provides its own.
var DefaultSeed = []string{
	"Visit Ann",
	"Call Dad",
	"Go to the Gym",
	"Wash the dishes",
	"Shop for the party",
}

// Confirmer asks the user a yes/no question and blocks until answered.
// Implementations report anything other than an explicit yes as false.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// Notifier shows a one-way message to the user.
type Notifier interface {
	Notify(message string)
}

// RemoveResult describes the outcome of Remove.
type RemoveResult struct {
	// Confirmed is true if the user accepted the removal.
	Confirmed bool

	// Removed is the number of entries dropped from the list.
	Removed int
}

// Store is an ordered list of task labels.
// Labels are not unique and carry no identity beyond their text.
// A Store is owned by a single session and is not safe for concurrent use.
type Store struct {
	tasks   []string
	confirm Confirmer
	notify  Notifier
	logger  *slog.Logger
}

// New creates a store seeded with a copy of seed.
// A nil confirm declines every removal; nil notify and logger are no-ops.
func New(seed []string, confirm Confirmer, notify Notifier, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		tasks:   slices.Clone(seed),
		confirm: confirm,
		notify:  notify,
		logger:  logger,
	}
}

// Tasks returns a copy of the tasks in insertion order.
func (s *Store) Tasks() []string {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add appends text to the end of the list.
// Empty and duplicate labels are accepted as-is.
func (s *Store) Add(text string) {
	s.logger.Debug("adding task", "task", text)
	s.tasks = append(s.tasks, text)
}

// Remove asks for confirmation and, if given, drops every task equal to text.
// The relative order of the remaining tasks is kept.
func (s *Store) Remove(ctx context.Context, text string) RemoveResult {
	var res RemoveResult
	if s.confirm != nil {
		res.Confirmed = s.confirm.Confirm(ctx, RemovePrompt(text))
	}

	if res.Confirmed {
		before := len(s.tasks)
		s.tasks = slices.DeleteFunc(s.tasks, func(t string) bool { return t == text })
		res.Removed = before - len(s.tasks)
	}

	s.logger.Debug("removing task", "task", text, "confirmed", res.Confirmed, "removed", res.Removed)
	return res
}

// MarkAsDone tells the user the task is done.
// Nothing is recorded: the list is left exactly as it was.
func (s *Store) MarkAsDone(text string) {
	s.logger.Debug("marking task as done", "task", text)
	if s.notify != nil {
		s.notify.Notify(DoneMessage(text))
	}
}

// RemovePrompt is the question asked before removing text.
func RemovePrompt(text string) string {
	return fmt.Sprintf("Are you sure that you want to remove the following task? \n \"%s\"", text)
}

// DoneMessage is the notification sent when text is marked done.
func DoneMessage(text string) string {
	return fmt.Sprintf("The task: \"%s\" is done", text)
}
