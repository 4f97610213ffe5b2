package report

import (
	"time"

	"github.com/musheer090/kubescape-automator/internal/scanner"
)

// ScanResult records one framework's scan and archival outcome. Created per
// framework per run and discarded once the summary is emitted.
type ScanResult struct {
	Framework        scanner.Framework `json:"framework"`
	ExitCode         int               `json:"exit_code"`
	Succeeded        bool              `json:"succeeded"`
	LocalReportPath  string            `json:"local_report_path,omitempty"`
	LocalLogPath     string            `json:"local_log_path,omitempty"`
	RemoteReportPath string            `json:"remote_report_path,omitempty"`
	RemoteLogPath    string            `json:"remote_log_path,omitempty"`
	ReportUploaded   bool              `json:"report_uploaded"`
	LogUploaded      bool              `json:"log_uploaded"`
}

// RunSummary aggregates every ScanResult of a run and decides the process
// exit status.
type RunSummary struct {
	Timestamp       time.Time    `json:"timestamp"`
	Region          string       `json:"region"`
	Bucket          string       `json:"bucket"`
	Account         string       `json:"account,omitempty"`
	Format          string       `json:"format"`
	LocalDir        string       `json:"local_dir"`
	RemotePrefix    string       `json:"remote_prefix"`
	Results         []ScanResult `json:"results"`
	InstallLogPath  string       `json:"install_log_path,omitempty"`
	InstallLogSaved bool         `json:"install_log_saved,omitempty"`
	// Failures lists run-level failures outside the per-framework results,
	// e.g. a report upload that did not complete.
	Failures []string `json:"failures,omitempty"`
}

// AddFailure records a run-level failure.
func (s *RunSummary) AddFailure(msg string) {
	s.Failures = append(s.Failures, msg)
}

// Succeeded reports whether the whole run passed: every framework scan
// succeeded, every report was uploaded, and no run-level failure occurred.
func (s *RunSummary) Succeeded() bool {
	if len(s.Failures) > 0 {
		return false
	}
	for _, r := range s.Results {
		if !r.Succeeded || !r.ReportUploaded {
			return false
		}
	}
	return len(s.Results) > 0
}

// Reporter renders a RunSummary.
type Reporter interface {
	Generate(summary RunSummary) error
}
