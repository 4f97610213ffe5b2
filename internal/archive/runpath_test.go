package archive

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/musheer090/kubescape-automator/internal/scanner"
)

func TestRunPath(t *testing.T) {
	rp := NewRunPath(time.Date(2024, 3, 1, 10, 30, 45, 0, time.UTC))

	if rp.Date != "2024-03-01" {
		t.Fatalf("expected date 2024-03-01, got %q", rp.Date)
	}
	if rp.Time != "10-30-45" {
		t.Fatalf("expected time 10-30-45, got %q", rp.Time)
	}

	want := filepath.Join("/home/u", "kubescape_reports", "2024-03-01", "10-30-45")
	if got := rp.LocalDir("/home/u"); got != want {
		t.Fatalf("expected local dir %q, got %q", want, got)
	}
	if got := rp.RemotePrefix(); got != "kubescape-reports/2024-03-01/10-30-45" {
		t.Fatalf("unexpected remote prefix %q", got)
	}
	if got := rp.RemoteKey("NSA_Report.json"); got != "kubescape-reports/2024-03-01/10-30-45/NSA_Report.json" {
		t.Fatalf("unexpected remote key %q", got)
	}
}

func TestRunPath_UniquePerTimestamp(t *testing.T) {
	a := NewRunPath(time.Date(2024, 3, 1, 10, 30, 45, 0, time.UTC))
	b := NewRunPath(time.Date(2024, 3, 1, 10, 30, 46, 0, time.UTC))
	if a.RemotePrefix() == b.RemotePrefix() {
		t.Fatalf("expected distinct prefixes for distinct run times")
	}
}

func TestArtifactFileNames(t *testing.T) {
	if got := ReportFileName(scanner.FrameworkNSA, "html"); got != "NSA_Report.html" {
		t.Fatalf("unexpected report name %q", got)
	}
	if got := ReportFileName(scanner.FrameworkMITRE, "pdf"); got != "MITRE_Report.pdf" {
		t.Fatalf("unexpected report name %q", got)
	}
	if got := LogFileName(scanner.FrameworkMITRE); got != "MITRE_cli.log" {
		t.Fatalf("unexpected log name %q", got)
	}
}
