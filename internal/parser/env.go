package parser

import (
	"strings"

	"golang.org/x/xerrors"
)

// Entry is one NAME=value line of a listing command's output
type Entry struct {
	Name  string
	Value string
}

// SplitLines splits captured text into lines using text-mode semantics:
// "\r\n" and lone "\r" count as "\n", separators are dropped and a final
// trailing newline does not produce an empty last line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// ParseEntry splits a line at the first '='.
// ok is false when the line has no '=', in which case Name holds the whole line.
func ParseEntry(line string) (Entry, bool) {
	name, value, ok := strings.Cut(line, "=")
	return Entry{Name: name, Value: value}, ok
}

// ValidateAssignment checks that s has the NAME=value form
func ValidateAssignment(s string) error {
	entry, ok := ParseEntry(s)
	if !ok {
		return xerrors.Errorf("invalid assignment %q: expected NAME=value", s)
	}
	if entry.Name == "" {
		return xerrors.Errorf("invalid assignment %q: empty name", s)
	}
	return nil
}

// MergeEnviron appends overrides to base without removing earlier
// definitions of the same name. os/exec keeps the last one when it
// starts the child.
func MergeEnviron(base, overrides []string) []string {
	merged := make([]string, 0, len(base)+len(overrides))
	merged = append(merged, base...)
	return append(merged, overrides...)
}
