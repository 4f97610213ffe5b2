package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/musheer090/kubescape-automator/internal/config"
	"github.com/musheer090/kubescape-automator/internal/prober"
	"github.com/musheer090/kubescape-automator/internal/report"
	s3client "github.com/musheer090/kubescape-automator/internal/s3"
	"github.com/musheer090/kubescape-automator/internal/scanner"
)

// scanRunner runs one framework scan.
type scanRunner interface {
	Run(ctx context.Context, fw scanner.Framework, reportPath, logPath string) (scanner.Result, error)
}

// artifactArchiver stages and mirrors run artifacts.
type artifactArchiver interface {
	EnsureLocalDir() error
	LocalDir() string
	RemotePrefix() string
	ReportPath(fw scanner.Framework, format string) string
	LogPath(fw scanner.Framework) string
	ArchiveResult(ctx context.Context, res *report.ScanResult) error
	ArchiveFile(ctx context.Context, localPath string) (string, error)
}

// bucketEnsurer guarantees the destination bucket before uploads start.
type bucketEnsurer interface {
	Ensure(ctx context.Context, bucket string, authorize func() bool) error
}

// identityResolver checks that the run has usable cloud credentials.
type identityResolver interface {
	Identity(ctx context.Context) (s3client.Identity, error)
}

// scannerEnsurer locates or installs the scanner binary.
type scannerEnsurer interface {
	EnsureScanner(ctx context.Context, logPath string) (prober.ScannerInstall, error)
}

// pipeline wires one run end to end. Every collaborator sits behind a small
// interface so the sequencing and failure semantics are testable without a
// cluster or a bucket.
type pipeline struct {
	cfg        config.RunConfig
	frameworks []scanner.Framework
	probe      func() error
	installer  scannerEnsurer // nil skips the install step
	identity   identityResolver
	buckets    bucketEnsurer
	runner     scanRunner
	archiver   artifactArchiver
	authorize  func() bool
}

// run executes the pipeline. Fatal conditions (missing tools, credentials,
// bucket denied, unusable run directory) return an error immediately;
// per-framework failures are recorded in the summary and the remaining
// frameworks still run.
func (p *pipeline) run(ctx context.Context) (report.RunSummary, error) {
	summary := report.RunSummary{
		Timestamp: p.cfg.Started,
		Region:    p.cfg.Region,
		Bucket:    p.cfg.Bucket,
		Format:    p.cfg.Format,
	}

	printStatus("Checking required tools")
	if err := p.probe(); err != nil {
		return summary, enhanceError("environment check", err)
	}

	if err := p.archiver.EnsureLocalDir(); err != nil {
		return summary, err
	}
	summary.LocalDir = p.archiver.LocalDir()
	summary.RemotePrefix = p.archiver.RemotePrefix()

	var installLog string
	if p.installer != nil {
		inst, err := p.installer.EnsureScanner(ctx, filepath.Join(p.archiver.LocalDir(), prober.InstallLogName))
		if err != nil {
			return summary, enhanceError("scanner setup", err)
		}
		if inst.Installed {
			installLog = inst.LogPath
			summary.InstallLogPath = installLog
		}
	}

	printStatus("Resolving AWS identity")
	id, err := p.identity.Identity(ctx)
	if err != nil {
		return summary, enhanceError("credential check", err)
	}
	summary.Account = id.Account
	slog.Debug("Authenticated", slog.String("account", id.Account), slog.String("arn", id.ARN))

	printStatus("Checking bucket %s", p.cfg.Bucket)
	if err := p.buckets.Ensure(ctx, p.cfg.Bucket, p.authorize); err != nil {
		return summary, enhanceError("bucket provisioning", err)
	}

	for _, fw := range p.frameworks {
		res := report.ScanResult{
			Framework:       fw,
			LocalReportPath: p.archiver.ReportPath(fw, p.cfg.Format),
			LocalLogPath:    p.archiver.LogPath(fw),
		}

		printStatus("Scanning framework %s", fw)
		scanRes, err := p.runner.Run(ctx, fw, res.LocalReportPath, res.LocalLogPath)
		if err != nil {
			if ctx.Err() != nil {
				return summary, err
			}
			// Could not even launch the scanner for this framework. Record
			// it and keep going; the remaining frameworks must still run.
			summary.AddFailure(fmt.Sprintf("%s scan did not run: %v", fw, err))
			res.ExitCode = scanRes.ExitCode
		} else {
			res.ExitCode = scanRes.ExitCode
			res.Succeeded = scanRes.Succeeded
		}

		if err := p.archiver.ArchiveResult(ctx, &res); err != nil {
			summary.AddFailure(err.Error())
		}
		summary.Results = append(summary.Results, res)
	}

	if installLog != "" {
		if _, err := p.archiver.ArchiveFile(ctx, installLog); err != nil {
			summary.AddFailure(err.Error())
		} else {
			summary.InstallLogSaved = true
		}
	}

	return summary, nil
}
