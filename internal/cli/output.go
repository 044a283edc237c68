package cli

import (
	"fmt"
	"io"
	"strings"

	"env-filter/internal/audit"
)

// FormatIssues produces the stderr report for audit findings.
// It returns an empty string when there is nothing to report.
func FormatIssues(result *audit.Result) string {
	if result == nil || len(result.Issues) == 0 {
		return ""
	}

	groups := make(map[audit.IssueType][]audit.Issue)
	for _, issue := range result.Issues {
		groups[issue.Type] = append(groups[issue.Type], issue)
	}

	var sb strings.Builder

	typeOrder := []audit.IssueType{audit.IssueDuplicate, audit.IssueMalformed}
	typeNames := map[audit.IssueType]string{
		audit.IssueDuplicate: "Duplicate Variables",
		audit.IssueMalformed: "Malformed Lines",
	}

	for _, t := range typeOrder {
		issues := groups[t]
		if len(issues) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s (%d):\n", typeNames[t], len(issues)))
		for _, issue := range issues {
			if t == audit.IssueDuplicate {
				sb.WriteString(fmt.Sprintf("  - %s: defined %d times\n", issue.Key, issue.Count))
			} else {
				sb.WriteString(fmt.Sprintf("  - %q\n", issue.Key))
			}
		}
	}

	return sb.String()
}

// PrintUsage outputs help text
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "env-filter [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Runs /usr/bin/env and prints the lines starting with TMPDIR.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --prefix, -p <text>      Literal line prefix to keep (default TMPDIR)")
	fmt.Fprintln(w, "  --command, -c <path>     Listing command to run (default /usr/bin/env)")
	fmt.Fprintln(w, "  --arg, -a <arg>          Argument for the listing command (repeatable)")
	fmt.Fprintln(w, "  --set, -s <NAME=VALUE>   Add an entry to the child environment (repeatable)")
	fmt.Fprintln(w, "  --duplicates, -D         Report variables matched more than once")
	fmt.Fprintln(w, "  --malformed, -M          Report matched lines without '='")
	fmt.Fprintln(w, "  --strict                 Exit 1 when any issue is reported")
	fmt.Fprintln(w, "  --config <path>          Load defaults from a YAML file")
	fmt.Fprintln(w, "  --verbose, -v            Debug logging on stderr")
	fmt.Fprintln(w, "  --help, -h               Show this help message")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Exit Codes:")
	fmt.Fprintln(w, "  0  Success")
	fmt.Fprintln(w, "  1  Issues reported in strict mode")
	fmt.Fprintln(w, "  2  Fatal error (invalid arguments, bad config, command could not start)")
}
