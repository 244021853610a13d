// Package service defines the backend-agnostic export port.
package service

// Task is a task as seen by the remote backend.
type Task struct {
	ID     string
	Title  string
	Status string // "needsAction" or "completed"
}

// TaskList is a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}
