// Package archive stages run artifacts in a timestamped local directory and
// mirrors them to the report bucket.
package archive

import (
	"path"
	"path/filepath"
	"time"

	"github.com/musheer090/kubescape-automator/internal/scanner"
)

const (
	// LocalBaseDir is the directory under $HOME holding all local runs.
	LocalBaseDir = "kubescape_reports"
	// RemoteBaseFolder is the key prefix under the bucket mirroring it.
	RemoteBaseFolder = "kubescape-reports"
)

// RunPath centralizes path computation for one run. Date and time segments
// keep artifact locations unique and human-readable per run.
type RunPath struct {
	Date string // "2006-01-02"
	Time string // "15-04-05"
}

// NewRunPath derives the path segments from the run start time.
func NewRunPath(started time.Time) RunPath {
	return RunPath{
		Date: started.Format("2006-01-02"),
		Time: started.Format("15-04-05"),
	}
}

// LocalDir returns the local run directory under home.
// Example: /home/u/kubescape_reports/2024-03-01/10-30-00
func (r RunPath) LocalDir(home string) string {
	return filepath.Join(home, LocalBaseDir, r.Date, r.Time)
}

// RemotePrefix returns the bucket key prefix for the run.
// Example: kubescape-reports/2024-03-01/10-30-00
func (r RunPath) RemotePrefix() string {
	return path.Join(RemoteBaseFolder, r.Date, r.Time)
}

// RemoteKey returns the bucket key for a named artifact of this run.
func (r RunPath) RemoteKey(name string) string {
	return path.Join(r.RemotePrefix(), name)
}

// ReportFileName returns the report filename for a framework and format.
// Example: NSA_Report.html
func ReportFileName(fw scanner.Framework, format string) string {
	return fw.Upper() + "_Report." + format
}

// LogFileName returns the scanner log filename for a framework.
// Example: MITRE_cli.log
func LogFileName(fw scanner.Framework) string {
	return fw.Upper() + "_cli.log"
}
