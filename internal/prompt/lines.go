package prompt

import (
	"bufio"
	"context"
	"io"
)

type lineResult struct {
	line string
	err  error
}

// LineReader reads input one line at a time without blocking past a
// cancelled context. A read abandoned on cancellation is kept and returned
// by the next ReadLine, so no input is lost.
type LineReader struct {
	in      *bufio.Reader
	pending chan lineResult
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{in: bufio.NewReader(r)}
}

// ReadLine returns the next line including its newline.
// It returns ctx.Err() as soon as ctx is done, even while input is pending.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if l.pending == nil {
		ch := make(chan lineResult, 1)
		l.pending = ch
		go func() {
			line, err := l.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
	}

	select {
	case res := <-l.pending:
		l.pending = nil
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
