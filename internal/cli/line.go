package cli

import (
	"strings"
	"unicode"

	"github.com/google/shlex"
)

// cutCommand splits a shell line into its first word and the rest, with the
// rest's surrounding whitespace removed.
func cutCommand(line string) (name, rest string) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return strings.TrimSpace(line), ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

// labelArgs returns a task label exactly as typed. One pair of matching
// quotes around the whole label is removed, which keeps edge spaces.
func labelArgs(rest string) []string {
	if len(rest) >= 2 {
		q := rest[0]
		inner := rest[1 : len(rest)-1]
		if (q == '"' || q == '\'') && rest[len(rest)-1] == q && strings.IndexByte(inner, q) < 0 {
			rest = inner
		}
	}
	if rest == "" {
		return nil
	}
	return []string{rest}
}

// splitArgs tokenizes the arguments of a shell line, honouring quotes.
func splitArgs(rest string) ([]string, error) {
	return shlex.Split(rest)
}
