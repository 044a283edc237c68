package filter

import (
	"bufio"
	"io"
	"strings"

	"env-filter/internal/parser"
	"env-filter/internal/procexec"
)

// DefaultPrefix is the literal prefix a line must start with to be printed
const DefaultPrefix = "TMPDIR"

// Matcher decides whether a line is kept
type Matcher = func(line string) bool

// Prefix matches lines starting with the exact literal prefix.
// No case folding, no trimming.
func Prefix(prefix string) Matcher {
	return func(line string) bool {
		return strings.HasPrefix(line, prefix)
	}
}

// Lines returns the order-preserving subsequence of lines accepted by m
func Lines(lines []string, m Matcher) []string {
	matched := []string{}
	for _, line := range lines {
		if m(line) {
			matched = append(matched, line)
		}
	}
	return matched
}

// Write prints each line verbatim followed by a newline
func Write(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Report describes one filtering pass
type Report struct {
	Matched  []string
	Total    int
	ExitCode int
}

// Run captures the output of cmd, keeps the lines accepted by m and
// writes them to w in their original order.
// Launch failures are returned before anything is written.
func Run(c procexec.Capturer, cmd procexec.Command, m Matcher, w io.Writer) (*Report, error) {
	res, err := c.Capture(cmd)
	if err != nil {
		return nil, err
	}

	lines := parser.SplitLines(res.Stdout)
	matched := Lines(lines, m)
	if err := Write(w, matched); err != nil {
		return nil, err
	}

	return &Report{
		Matched:  matched,
		Total:    len(lines),
		ExitCode: res.ExitCode,
	}, nil
}
