// Package diag collects structured warnings produced while generating
// redirect stubs. The host pipeline decides what to do with them: a normal
// build logs and continues, a strict build fails when Warnings() is non-empty.
package diag

import "time"

// Stage identifies which lifecycle hook produced an issue.
type Stage string

const (
	StageCollect Stage = "collect"
	StageEmit    Stage = "emit"
)

// IssueCode enumerates machine-parseable issue identifiers.
// These codes are stable contract and should only be appended (no reuse on removal).
type IssueCode string

const (
	IssueLegacyConfigKey   IssueCode = "LEGACY_CONFIG_KEY"
	IssueNonMarkdownSource IssueCode = "NON_MARKDOWN_SOURCE"
	IssueMissingTarget     IssueCode = "MISSING_TARGET"
)

// Severity represents normalized severity levels.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a structured taxonomy entry describing a discrete problem encountered.
type Issue struct {
	Code     IssueCode `json:"code"`
	Stage    Stage     `json:"stage"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	// Path is the redirect-map entry the issue relates to, when applicable.
	Path string `json:"path,omitempty"`
}

// Report captures the outcome of one redirect-generation run.
type Report struct {
	Start   time.Time
	End     time.Time
	Written int // redirect stubs written
	Skipped int // entries skipped because the target could not be resolved
	Issues  []Issue
}

// NewReport constructs a report with the start time set.
func NewReport() *Report {
	return &Report{Start: time.Now()}
}

// AddIssue appends a structured issue.
func (r *Report) AddIssue(code IssueCode, stage Stage, severity Severity, msg, path string) {
	r.Issues = append(r.Issues, Issue{Code: code, Stage: stage, Severity: severity, Message: msg, Path: path})
}

// Warnings returns the warning-severity issues. Hosts running in strict mode
// escalate a non-empty result to a build failure.
func (r *Report) Warnings() []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Severity == SeverityWarning {
			out = append(out, is)
		}
	}
	return out
}

// Finish sets the end time of the report.
func (r *Report) Finish() { r.End = time.Now() }
