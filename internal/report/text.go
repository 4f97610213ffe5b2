package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// TextReporter renders a human-readable run summary.
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{writer: w}
}

// Generate writes the run summary.
func (r *TextReporter) Generate(s RunSummary) error {
	fmt.Fprintf(r.writer, "Kubescape Scan Summary\n")
	fmt.Fprintf(r.writer, "======================\n\n")
	fmt.Fprintf(r.writer, "Run Time: %s\n", s.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(r.writer, "Region: %s\n", s.Region)
	if s.Account != "" {
		fmt.Fprintf(r.writer, "Account: %s\n", s.Account)
	}
	fmt.Fprintf(r.writer, "Bucket: %s\n", s.Bucket)
	fmt.Fprintf(r.writer, "Format: %s\n\n", s.Format)

	for _, res := range s.Results {
		status := color.GreenString("OK")
		if !res.Succeeded {
			status = color.RedString(fmt.Sprintf("FAILED (exit %d)", res.ExitCode))
		}
		fmt.Fprintf(r.writer, "%s: %s\n", res.Framework.Upper(), status)

		if res.LocalReportPath != "" {
			fmt.Fprintf(r.writer, "  report: %s\n", res.LocalReportPath)
		}
		if res.LocalLogPath != "" {
			fmt.Fprintf(r.writer, "  log:    %s\n", res.LocalLogPath)
		}
		switch {
		case res.ReportUploaded:
			fmt.Fprintf(r.writer, "  remote: s3://%s/%s\n", s.Bucket, res.RemoteReportPath)
		case res.Succeeded:
			fmt.Fprintf(r.writer, "  remote: %s\n", color.RedString("report upload failed"))
		}
		if res.LogUploaded {
			fmt.Fprintf(r.writer, "  remote: s3://%s/%s\n", s.Bucket, res.RemoteLogPath)
		} else if res.LocalLogPath != "" {
			fmt.Fprintf(r.writer, "  remote: %s\n", color.YellowString("log upload failed"))
		}
	}

	if s.InstallLogPath != "" {
		fmt.Fprintf(r.writer, "\nInstall log: %s", s.InstallLogPath)
		if !s.InstallLogSaved {
			fmt.Fprintf(r.writer, " (%s)", color.RedString("upload failed"))
		}
		fmt.Fprintf(r.writer, "\n")
	}

	if len(s.Failures) > 0 {
		fmt.Fprintf(r.writer, "\n%s\n", color.RedString("Failures"))
		for _, f := range s.Failures {
			fmt.Fprintf(r.writer, "  - %s\n", f)
		}
	}

	fmt.Fprintf(r.writer, "\nLocal artifacts: %s\n", s.LocalDir)
	fmt.Fprintf(r.writer, "Remote location: s3://%s/%s\n\n", s.Bucket, s.RemotePrefix)

	if s.Succeeded() {
		fmt.Fprintf(r.writer, "%s\n", color.GreenString("All frameworks scanned and archived."))
	} else {
		fmt.Fprintf(r.writer, "%s\n", color.RedString("Run finished with failures."))
	}

	return nil
}
