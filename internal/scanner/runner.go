package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// DefaultBinary is the scanner executable looked up on PATH.
const DefaultBinary = "kubescape"

// ProgressFunc receives status messages while a scan is in flight. Progress
// is a side channel only; it never affects control flow.
type ProgressFunc func(message string)

// Runner invokes the external kubescape binary once per framework.
type Runner struct {
	binary   string
	format   string
	progress ProgressFunc
}

// NewRunner creates a Runner producing reports in the given format.
func NewRunner(format string) *Runner {
	return &Runner{binary: DefaultBinary, format: format}
}

// SetBinary overrides the scanner executable. Used by tests and by the
// prober when the binary was installed outside PATH.
func (r *Runner) SetBinary(path string) {
	r.binary = path
}

// SetProgress registers a status callback.
func (r *Runner) SetProgress(fn ProgressFunc) {
	r.progress = fn
}

// Run executes one framework scan, writing the report to reportPath and the
// combined scanner output to logPath. A non-zero scanner exit is returned in
// the Result, not as an error; errors are reserved for failures to launch or
// to capture output.
func (r *Runner) Run(ctx context.Context, fw Framework, reportPath, logPath string) (Result, error) {
	res := Result{Framework: fw}

	logFile, err := os.Create(logPath)
	if err != nil {
		return res, fmt.Errorf("creating scan log %s: %w", logPath, err)
	}
	defer func() { _ = logFile.Close() }()

	args := []string{"scan", "framework", string(fw), "--format", r.format, "--output", reportPath, "--verbose"}
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	r.report(fmt.Sprintf("Running %s framework scan", fw))
	start := time.Now()
	err = cmd.Run()
	duration := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return res, fmt.Errorf("running %s %v: %w", r.binary, args, err)
		}
		res.ExitCode = exitErr.ExitCode()
		if ctx.Err() != nil {
			return res, fmt.Errorf("%s framework scan interrupted: %w", fw, ctx.Err())
		}
		slog.Warn("Framework scan failed",
			slog.String("framework", string(fw)),
			slog.Int("exit_code", res.ExitCode),
			slog.Duration("duration", duration),
		)
		return res, nil
	}

	res.Succeeded = true
	slog.Debug("Framework scan finished",
		slog.String("framework", string(fw)),
		slog.Duration("duration", duration),
	)
	return res, nil
}

func (r *Runner) report(msg string) {
	if r.progress != nil {
		r.progress(msg)
	}
}
