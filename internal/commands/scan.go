package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/musheer090/kubescape-automator/internal/archive"
	"github.com/musheer090/kubescape-automator/internal/config"
	"github.com/musheer090/kubescape-automator/internal/prober"
	"github.com/musheer090/kubescape-automator/internal/report"
	s3client "github.com/musheer090/kubescape-automator/internal/s3"
	"github.com/musheer090/kubescape-automator/internal/scanner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var scanFlags struct {
	awsProfile    string
	region        string
	bucket        string
	outputFormat  string
	createBucket  bool
	skipInstall   bool
	summaryFormat string
	timeout       time.Duration
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the cluster per framework and archive the reports",
	Long: `Runs kubescape once per security framework against the current cluster,
captures each scanner invocation's output to a log file, and copies reports
and logs to a timestamped folder locally and in the S3 bucket.

With no flags on an interactive terminal the run parameters are collected
through prompts.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFlags.awsProfile, "aws-profile", "", "AWS profile to use")
	scanCmd.Flags().StringVarP(&scanFlags.region, "region", "r", "", "AWS region for the bucket (e.g. us-east-1)")
	scanCmd.Flags().StringVarP(&scanFlags.bucket, "bucket", "b", "", "S3 bucket for the reports (default: "+config.DefaultBucket+")")
	scanCmd.Flags().StringVarP(&scanFlags.outputFormat, "format", "f", "", "Report format: html, json, or pdf (default: "+config.DefaultFormat+")")
	scanCmd.Flags().BoolVarP(&scanFlags.createBucket, "create-bucket", "c", false, "Create the bucket if it does not exist")
	scanCmd.Flags().BoolVar(&scanFlags.skipInstall, "skip-install", false, "Never install kubescape, fail if it is missing")
	scanCmd.Flags().StringVar(&scanFlags.summaryFormat, "summary-format", "text", "Summary output format: text or json")
	scanCmd.Flags().DurationVar(&scanFlags.timeout, "timeout", 0, "Total run timeout (e.g. 30m). 0 means no timeout")
}

func runScan(cmd *cobra.Command, args []string) error {
	applyConfigToScanFlags(cmd)

	started := time.Now()
	collector := config.NewCollector(os.Stdin, os.Stderr)

	var (
		runCfg config.RunConfig
		err    error
	)
	interactive := interactiveMode(cmd)
	if interactive {
		runCfg, err = collector.Collect(cfg, started)
	} else {
		runCfg, err = config.NewRunConfig(scanFlags.region, scanFlags.bucket, scanFlags.outputFormat,
			scanFlags.createBucket, scanFlags.timeout, started)
	}
	if err != nil {
		return err
	}

	ctx := context.Background()
	if runCfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, runCfg.Timeout)
		defer cancel()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	printStatus("Initializing AWS clients (region %s)", runCfg.Region)
	client, err := s3client.NewClient(ctx, scanFlags.awsProfile, runCfg.Region)
	if err != nil {
		return enhanceError("AWS client initialization", err)
	}

	runner := scanner.NewRunner(runCfg.Format)
	runner.SetProgress(func(msg string) { printStatus("%s", msg) })

	archiver := archive.NewArchiver(client, runCfg.Bucket, home, archive.NewRunPath(runCfg.Started))

	authorize := func() bool { return runCfg.CreateBucket }
	if interactive {
		authorize = func() bool {
			return collector.Confirm(fmt.Sprintf("Bucket %s does not exist. Create it in %s?", runCfg.Bucket, runCfg.Region))
		}
	}

	p := &pipeline{
		cfg:        runCfg,
		frameworks: scanner.ParseFrameworks(cfg.Frameworks),
		probe:      prober.Probe,
		identity:   client,
		buckets:    s3client.NewProvisioner(client),
		runner:     runner,
		archiver:   archiver,
		authorize:  authorize,
	}
	if !scanFlags.skipInstall {
		p.installer = prober.NewInstaller()
	}

	summary, err := p.run(ctx)
	if err != nil {
		return err
	}

	saveSummary(ctx, archiver, summary)

	reporter, err := selectReporter(scanFlags.summaryFormat, os.Stdout)
	if err != nil {
		return err
	}
	if err := reporter.Generate(summary); err != nil {
		return err
	}

	if !summary.Succeeded() {
		return fmt.Errorf("run finished with failures")
	}
	return nil
}

// saveSummary writes summary.json next to the artifacts and mirrors it.
// Best effort: a run never fails over its own summary file.
func saveSummary(ctx context.Context, archiver *archive.Archiver, summary report.RunSummary) {
	path := filepath.Join(archiver.LocalDir(), "summary.json")
	f, err := os.Create(path)
	if err != nil {
		slog.Warn("Could not write run summary", "error", err)
		return
	}
	defer func() { _ = f.Close() }()
	if err := report.NewJSONReporter(f).Generate(summary); err != nil {
		slog.Warn("Could not write run summary", "error", err)
		return
	}
	if _, err := archiver.ArchiveFile(ctx, path); err != nil {
		slog.Warn("Could not upload run summary", "error", err)
	}
}

// interactiveMode is on only when the user supplied no run flags and stdin
// is a terminal to prompt on.
func interactiveMode(cmd *cobra.Command) bool {
	for _, name := range []string{"region", "bucket", "format", "create-bucket"} {
		if cmd.Flags().Lookup(name).Changed {
			return false
		}
	}
	if scanFlags.region != "" {
		// Region arrived from the config file; treat the run as flag-driven.
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func applyConfigToScanFlags(cmd *cobra.Command) {
	if !cmd.Flags().Lookup("region").Changed && cfg.Region != "" {
		scanFlags.region = cfg.Region
	}
	if !cmd.Flags().Lookup("bucket").Changed && cfg.Bucket != "" {
		scanFlags.bucket = cfg.Bucket
	}
	if !cmd.Flags().Lookup("format").Changed && cfg.Format != "" {
		scanFlags.outputFormat = cfg.Format
	}
	if !cmd.Flags().Lookup("create-bucket").Changed && cfg.CreateBucket {
		scanFlags.createBucket = true
	}
	if !cmd.Flags().Lookup("timeout").Changed {
		if d := cfg.TimeoutDuration(); d > 0 {
			scanFlags.timeout = d
		}
	}
}
