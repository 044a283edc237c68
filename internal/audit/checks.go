package audit

import "env-filter/internal/parser"

// IssueType represents the category of an audit issue
type IssueType int

const (
	IssueDuplicate IssueType = iota
	IssueMalformed
)

func (t IssueType) String() string {
	switch t {
	case IssueDuplicate:
		return "duplicate"
	case IssueMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Issue represents a single audit finding
type Issue struct {
	Type    IssueType
	Key     string
	Count   int
	Message string
}

// CheckDuplicates finds names defined more than once, in first-seen order.
// A child started with an environment holding two TMPDIR entries lists both.
func CheckDuplicates(lines []string) []Issue {
	counts := make(map[string]int)
	var order []string
	for _, line := range lines {
		entry, ok := parser.ParseEntry(line)
		if !ok {
			continue
		}
		if counts[entry.Name] == 0 {
			order = append(order, entry.Name)
		}
		counts[entry.Name]++
	}

	var issues []Issue
	for _, name := range order {
		if counts[name] < 2 {
			continue
		}
		issues = append(issues, Issue{
			Type:    IssueDuplicate,
			Key:     name,
			Count:   counts[name],
			Message: "variable defined more than once",
		})
	}
	return issues
}

// CheckMalformed finds lines without an '=' separator
func CheckMalformed(lines []string) []Issue {
	var issues []Issue
	for _, line := range lines {
		if _, ok := parser.ParseEntry(line); ok {
			continue
		}
		issues = append(issues, Issue{
			Type:    IssueMalformed,
			Key:     line,
			Count:   1,
			Message: "line is not a NAME=value assignment",
		})
	}
	return issues
}
