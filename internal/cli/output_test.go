package cli

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"env-filter/internal/audit"
)

// For any list of issues, FormatIssues output contains every issue key.
func TestProperty_ReportIncludesAllIssues(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	genIssueType := gen.IntRange(0, 1).Map(func(i int) audit.IssueType {
		return audit.IssueType(i)
	})

	genIssue := gen.Struct(reflect.TypeOf(audit.Issue{}), map[string]gopter.Gen{
		"Type":    genIssueType,
		"Key":     gen.AlphaString().SuchThat(func(s string) bool { return len(s) > 0 }),
		"Count":   gen.IntRange(2, 5),
		"Message": gen.AlphaString(),
	})

	properties.Property("report contains all issue keys", prop.ForAll(
		func(issues []audit.Issue) bool {
			report := FormatIssues(&audit.Result{Issues: issues})
			for _, issue := range issues {
				if !strings.Contains(report, issue.Key) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genIssue),
	))

	properties.TestingRun(t)
}

func TestFormatIssues_Empty(t *testing.T) {
	if got := FormatIssues(nil); got != "" {
		t.Errorf("expected empty report for nil result, got %q", got)
	}
	if got := FormatIssues(&audit.Result{}); got != "" {
		t.Errorf("expected empty report for no issues, got %q", got)
	}
}

func TestFormatIssues_Grouped(t *testing.T) {
	result := &audit.Result{Issues: []audit.Issue{
		{Type: audit.IssueMalformed, Key: "TMPDIR", Count: 1},
		{Type: audit.IssueDuplicate, Key: "TMPDIR", Count: 2},
	}}

	want := "Duplicate Variables (1):\n" +
		"  - TMPDIR: defined 2 times\n" +
		"Malformed Lines (1):\n" +
		"  - \"TMPDIR\"\n"
	if got := FormatIssues(result); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf)

	autogold.Expect(`env-filter [options]

Runs /usr/bin/env and prints the lines starting with TMPDIR.

Options:
  --prefix, -p <text>      Literal line prefix to keep (default TMPDIR)
  --command, -c <path>     Listing command to run (default /usr/bin/env)
  --arg, -a <arg>          Argument for the listing command (repeatable)
  --set, -s <NAME=VALUE>   Add an entry to the child environment (repeatable)
  --duplicates, -D         Report variables matched more than once
  --malformed, -M          Report matched lines without '='
  --strict                 Exit 1 when any issue is reported
  --config <path>          Load defaults from a YAML file
  --verbose, -v            Debug logging on stderr
  --help, -h               Show this help message

Exit Codes:
  0  Success
  1  Issues reported in strict mode
  2  Fatal error (invalid arguments, bad config, command could not start)
`).Equal(t, buf.String())
}
