// Package prompt implements the store's user-facing ports on a terminal.
package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todolist/internal/store"
)

// Terminal asks questions and shows messages on a line-oriented terminal.
// The reader is shared with whatever else consumes input (the shell loop),
// so answers are read one line at a time.
type Terminal struct {
	in  *LineReader
	out io.Writer
}

// NewTerminal creates a Terminal reading answers from in and writing to out.
func NewTerminal(in *LineReader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Confirm prints message with a [y/N] suffix and waits for one line.
// Only "y" or "yes" confirm. EOF, read errors and a cancelled context decline;
// cancellation also interrupts a pending read.
func (t *Terminal) Confirm(ctx context.Context, message string) bool {
	if ctx.Err() != nil {
		return false
	}

	fmt.Fprintf(t.out, "%s [y/N]: ", message)

	line, err := t.in.ReadLine(ctx)
	if err != nil && line == "" {
		// Keep the next output off the prompt line.
		fmt.Fprintln(t.out)
		return false
	}
	return IsYes(line)
}

// Notify prints message on its own line.
func (t *Terminal) Notify(message string) {
	fmt.Fprintln(t.out, message)
}

// IsYes reports whether answer is an affirmative reply.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

type assumeYes struct {
	store.Notifier
}

func (assumeYes) Confirm(ctx context.Context, message string) bool { return true }

// AssumeYes returns a Confirmer that accepts every question without asking,
// forwarding notifications to n.
func AssumeYes(n store.Notifier) interface {
	store.Confirmer
	store.Notifier
} {
	return assumeYes{Notifier: n}
}
