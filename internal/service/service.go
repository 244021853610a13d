package service

import (
	"context"
	"errors"
)

// ErrNotAuthenticated is returned when no usable credentials are stored.
var ErrNotAuthenticated = errors.New("not logged in (run: todolist login)")

// ResolveList failures. Other errors from ResolveList come from the backend.
var (
	ErrListNotFound  = errors.New("list not found")
	ErrAmbiguousList = errors.New("ambiguous list name")
)

// PageSize is the number of tasks ListOpenTasks returns per page.
const PageSize = 100

// Service is the remote side of push and lists.
// Commands never import a backend SDK directly.
type Service interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ListLists returns all task lists in API order.
	ListLists(ctx context.Context) ([]TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns ErrListNotFound or ErrAmbiguousList (wrapped) when the name
	// does not pick exactly one list.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// ListOpenTasks returns one page of open tasks in API order.
	// page is 1-based. An out-of-range page returns an empty slice.
	ListOpenTasks(ctx context.Context, listID string, page int) ([]Task, error)

	// CreateTask creates a new task in the specified list.
	CreateTask(ctx context.Context, listID, title string) error
}

// OpenTitles collects the titles of every open task in a list, walking pages
// until a short page is returned.
func OpenTitles(ctx context.Context, svc Service, listID string) (map[string]bool, error) {
	titles := make(map[string]bool)
	for page := 1; ; page++ {
		tasks, err := svc.ListOpenTasks(ctx, listID, page)
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			titles[t.Title] = true
		}
		if len(tasks) < PageSize {
			return titles, nil
		}
	}
}
