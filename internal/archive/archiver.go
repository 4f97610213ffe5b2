package archive

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/musheer090/kubescape-automator/internal/report"
	"github.com/musheer090/kubescape-automator/internal/scanner"
)

// Uploader copies a local file to the report bucket.
type Uploader interface {
	UploadFile(ctx context.Context, bucket, key, path string) error
}

// Archiver owns the local run directory and mirrors artifacts to the bucket.
type Archiver struct {
	uploader Uploader
	bucket   string
	localDir string
	runPath  RunPath
}

// NewArchiver creates an Archiver rooted at home for the given run.
func NewArchiver(uploader Uploader, bucket, home string, rp RunPath) *Archiver {
	return &Archiver{
		uploader: uploader,
		bucket:   bucket,
		localDir: rp.LocalDir(home),
		runPath:  rp,
	}
}

// LocalDir returns the local run directory.
func (a *Archiver) LocalDir() string {
	return a.localDir
}

// RemotePrefix returns the bucket key prefix for the run.
func (a *Archiver) RemotePrefix() string {
	return a.runPath.RemotePrefix()
}

// ReportPath returns the local report path for a framework.
func (a *Archiver) ReportPath(fw scanner.Framework, format string) string {
	return filepath.Join(a.localDir, ReportFileName(fw, format))
}

// LogPath returns the local scanner log path for a framework.
func (a *Archiver) LogPath(fw scanner.Framework) string {
	return filepath.Join(a.localDir, LogFileName(fw))
}

// EnsureLocalDir creates the run directory. Everything downstream writes
// into it, so failure here is fatal to the run.
func (a *Archiver) EnsureLocalDir() error {
	if err := os.MkdirAll(a.localDir, 0755); err != nil {
		return fmt.Errorf("creating local report directory %s: %w", a.localDir, err)
	}
	return nil
}

// ArchiveResult uploads a framework's artifacts, annotating res with remote
// locations. The report is only uploaded for a succeeded scan and its upload
// failure is returned to the caller; the log is always attempted and its
// failure only warns.
func (a *Archiver) ArchiveResult(ctx context.Context, res *report.ScanResult) error {
	var reportErr error
	if res.Succeeded {
		key := a.runPath.RemoteKey(filepath.Base(res.LocalReportPath))
		if err := a.uploader.UploadFile(ctx, a.bucket, key, res.LocalReportPath); err != nil {
			reportErr = fmt.Errorf("archiving %s report: %w", res.Framework, err)
		} else {
			res.ReportUploaded = true
			res.RemoteReportPath = key
		}
	}

	if res.LocalLogPath != "" {
		key := a.runPath.RemoteKey(filepath.Base(res.LocalLogPath))
		if err := a.uploader.UploadFile(ctx, a.bucket, key, res.LocalLogPath); err != nil {
			slog.Warn("Scan log upload failed",
				slog.String("framework", string(res.Framework)),
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		} else {
			res.LogUploaded = true
			res.RemoteLogPath = key
		}
	}

	return reportErr
}

// ArchiveFile copies one standalone artifact, the installer log or the run
// summary, into the run prefix.
func (a *Archiver) ArchiveFile(ctx context.Context, localPath string) (string, error) {
	key := a.runPath.RemoteKey(filepath.Base(localPath))
	if err := a.uploader.UploadFile(ctx, a.bucket, key, localPath); err != nil {
		return "", fmt.Errorf("archiving %s: %w", filepath.Base(localPath), err)
	}
	return key, nil
}
