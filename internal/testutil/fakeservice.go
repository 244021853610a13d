// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"todolist/internal/service"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// ErrNotFound is returned when a list ID does not exist.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory service.Service for tests.
type FakeService struct {
	mu    sync.RWMutex
	lists []service.TaskList
	tasks map[string][]service.Task // listID -> tasks
	next  int

	// Error injection
	DefaultListErr   error
	ListListsErr     error
	ResolveListErr   error
	ListOpenTasksErr error
	CreateTaskErr    error
}

// NewFakeService creates a FakeService holding only the default list "My Tasks".
func NewFakeService() *FakeService {
	return &FakeService{
		lists: []service.TaskList{{ID: DefaultListID, Title: "My Tasks", IsDefault: true}},
		tasks: map[string][]service.Task{DefaultListID: nil},
	}
}

// AddList adds a named list.
func (f *FakeService) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.TaskList{ID: id, Title: title})
	if _, ok := f.tasks[id]; !ok {
		f.tasks[id] = nil
	}
}

// AddTask adds an open task to a list.
func (f *FakeService) AddTask(listID, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appendLocked(listID, title, "needsAction")
}

// AddCompletedTask adds a completed task to a list.
func (f *FakeService) AddCompletedTask(listID, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appendLocked(listID, title, "completed")
}

func (f *FakeService) appendLocked(listID, title, status string) {
	f.next++
	f.tasks[listID] = append(f.tasks[listID], service.Task{
		ID:     fmt.Sprintf("t%d", f.next),
		Title:  title,
		Status: status,
	})
}

// Titles returns every task title in a list, open or not, in insertion order.
func (f *FakeService) Titles(listID string) []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var titles []string
	for _, t := range f.tasks[listID] {
		titles = append(titles, t.Title)
	}
	return titles
}

// DefaultList implements service.Service.
func (f *FakeService) DefaultList(ctx context.Context) (service.TaskList, error) {
	if f.DefaultListErr != nil {
		return service.TaskList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return service.TaskList{}, errors.New("no default list")
}

// ListLists implements service.Service.
func (f *FakeService) ListLists(ctx context.Context) ([]service.TaskList, error) {
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.TaskList, len(f.lists))
	copy(result, f.lists)
	return result, nil
}

// ResolveList implements service.Service.
func (f *FakeService) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	if f.ResolveListErr != nil {
		return service.TaskList{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	want := strings.ToLower(strings.TrimSpace(name))
	var matches []service.TaskList
	for _, l := range f.lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == want {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrListNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrAmbiguousList, name)
	}
}

// ListOpenTasks implements service.Service.
func (f *FakeService) ListOpenTasks(ctx context.Context, listID string, page int) ([]service.Task, error) {
	if f.ListOpenTasksErr != nil {
		return nil, f.ListOpenTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	tasks, ok := f.tasks[listID]
	if !ok {
		return nil, ErrNotFound
	}

	var open []service.Task
	for _, t := range tasks {
		if t.Status == "needsAction" {
			open = append(open, t)
		}
	}

	start := (page - 1) * service.PageSize
	if start >= len(open) {
		return nil, nil
	}
	end := min(start+service.PageSize, len(open))
	return open[start:end], nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, listID, title string) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tasks[listID]; !ok {
		return ErrNotFound
	}
	f.appendLocked(listID, title, "needsAction")
	return nil
}
