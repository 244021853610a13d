// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todolist/internal/service"
)

// FormatTask writes one numbered task line.
// Format: "{N:>4}  {TEXT}\n".
func FormatTask(w io.Writer, num int, text string) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeTitle(text))
}

// FormatTasks writes every task numbered from 1.
func FormatTasks(w io.Writer, tasks []string) {
	for i, t := range tasks {
		FormatTask(w, i+1, t)
	}
}

// FormatListName formats a remote list name for the lists command.
func FormatListName(w io.Writer, list service.TaskList) {
	title := normalizeTitle(list.Title)
	if list.IsDefault {
		title += " [default]"
	}
	fmt.Fprintln(w, title)
}

// normalizeTitle keeps a title on one line; blank titles become "(untitled)".
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
