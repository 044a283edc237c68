package audit

// Result aggregates all audit findings
type Result struct {
	Issues   []Issue
	HasRisks bool
	Summary  map[IssueType]int
}

// ScanOptions configures the scan behavior
type ScanOptions struct {
	Duplicates bool
	Malformed  bool
	Strict     bool
}

// Scan runs the enabled checks over matched lines
func Scan(lines []string, opts *ScanOptions) *Result {
	if opts == nil {
		opts = &ScanOptions{}
	}

	var issues []Issue
	if opts.Duplicates {
		issues = append(issues, CheckDuplicates(lines)...)
	}
	if opts.Malformed {
		issues = append(issues, CheckMalformed(lines)...)
	}

	summary := make(map[IssueType]int)
	for _, issue := range issues {
		summary[issue.Type]++
	}

	// Issues are informational unless strict mode is on
	return &Result{
		Issues:   issues,
		HasRisks: opts.Strict && len(issues) > 0,
		Summary:  summary,
	}
}
