package prober

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
)

// InstallerURL is the upstream kubescape install script.
const InstallerURL = "https://raw.githubusercontent.com/kubescape/kubescape/master/install.sh"

// InstallLogName is the filename the installer output is captured under.
const InstallLogName = "kubescape_install.log"

// ScannerInstall reports how the scanner binary was located.
type ScannerInstall struct {
	Path      string
	Installed bool   // true when the installer had to run
	LogPath   string // installer output, set only when Installed
}

// Installer locates the kubescape binary, fetching and running the upstream
// install script when it is absent. The installer's combined output is
// written to logPath so the run can archive it.
type Installer struct {
	httpClient   *http.Client
	installerURL string
	binary       string
}

// NewInstaller creates an Installer for the default binary and script URL.
func NewInstaller() *Installer {
	return &Installer{
		httpClient:   http.DefaultClient,
		installerURL: InstallerURL,
		binary:       "kubescape",
	}
}

// EnsureScanner returns the scanner path, installing it first if needed.
// After a successful install the kubescape bin directory is appended to the
// process PATH so the rest of the run can exec the binary by name.
func (i *Installer) EnsureScanner(ctx context.Context, logPath string) (ScannerInstall, error) {
	if path, err := lookPath(i.binary); err == nil {
		return ScannerInstall{Path: path}, nil
	}

	slog.Info("Scanner not found, installing", slog.String("binary", i.binary), slog.String("log", logPath))
	if err := i.runInstaller(ctx, logPath); err != nil {
		return ScannerInstall{}, fmt.Errorf("installing %s: %w (see %s)", i.binary, err, logPath)
	}

	appendInstallDirToPath()

	path, err := lookPath(i.binary)
	if err != nil {
		return ScannerInstall{}, fmt.Errorf("%s still not found after install, see %s", i.binary, logPath)
	}
	return ScannerInstall{Path: path, Installed: true, LogPath: logPath}, nil
}

func (i *Installer) runInstaller(ctx context.Context, logPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.installerURL, nil)
	if err != nil {
		return err
	}
	resp, err := i.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching installer: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching installer: unexpected status %s", resp.Status)
	}

	script, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading installer: %w", err)
	}

	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("creating install log: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	cmd := exec.CommandContext(ctx, "sh", "-s")
	cmd.Stdin = bytes.NewReader(script)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running installer: %w", err)
	}
	return nil
}

// appendInstallDirToPath adds the default kubescape install location to the
// process PATH for the rest of the run.
func appendInstallDirToPath() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".kubescape", "bin")
	current := os.Getenv("PATH")
	if current == "" {
		_ = os.Setenv("PATH", dir)
		return
	}
	_ = os.Setenv("PATH", current+string(os.PathListSeparator)+dir)
}
